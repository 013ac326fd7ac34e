package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// PermissionError is returned when the acting user's team may not perform an operation
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	return e.Message
}

// InvalidStateError is returned when an assembly is not in a state that allows the operation
type InvalidStateError struct {
	Status string
	Action string
}

func (e *InvalidStateError) Error() string {
	if e.Action == "" {
		return fmt.Sprintf("assembly is %s", e.Status)
	}
	return fmt.Sprintf("cannot %s an assembly that is %s", e.Action, e.Status)
}

// IncompatiblePartError is returned when a part was built for a different aircraft type
type IncompatiblePartError struct {
	PartAircraftType     string
	AssemblyAircraftType string
}

func (e *IncompatiblePartError) Error() string {
	return fmt.Sprintf("part is for %s, assembly is for %s", e.PartAircraftType, e.AssemblyAircraftType)
}

// AlreadyUsedError is returned when a part is already linked to an assembly or built into an aircraft
type AlreadyUsedError struct {
	Message string
}

func (e *AlreadyUsedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "part is already in use"
}

// DuplicatePartTypeError is returned when the assembly already holds a part of the same type
type DuplicatePartTypeError struct {
	PartType string
}

func (e *DuplicatePartTypeError) Error() string {
	return fmt.Sprintf("assembly already has a %s part", e.PartType)
}

// IncompleteAssemblyError is returned when completion is attempted with part types missing.
// Missing is in canonical order.
type IncompleteAssemblyError struct {
	Missing []string
}

func (e *IncompleteAssemblyError) Error() string {
	return fmt.Sprintf("assembly is missing parts: %s", strings.Join(e.Missing, ", "))
}

// ConflictError represents a state conflict on a resource other than an assembly
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrPartNotFound         = &NotFoundError{Entity: "part"}
	ErrAssemblyNotFound     = &NotFoundError{Entity: "assembly"}
	ErrAssemblyPartNotFound = &NotFoundError{Entity: "assembly part"}
	ErrAircraftNotFound     = &NotFoundError{Entity: "aircraft"}
)

// Already Exists Errors
var (
	ErrTeamExists = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrUserExists = &AlreadyExistsError{Entity: "user", Context: "with this username"}
)

// Permission Errors
var (
	ErrUserNotAssignedToTeam = &PermissionError{Message: "user is not assigned to any team"}
	ErrAssemblyTeamRequired  = &PermissionError{Message: "only assembly team members can perform this action"}
	ErrCannotProducePart     = &PermissionError{Message: "team cannot produce this part type"}
	ErrNotPartOwner          = &PermissionError{Message: "only the producing team can modify this part"}
)

// Part State Errors
var (
	ErrPartInUse       = &ConflictError{Message: "part is in use and cannot be recycled"}
	ErrPartAlreadyUsed = &AlreadyUsedError{Message: "part is already used in an assembly or aircraft"}
)

// Authentication Errors
var (
	ErrMissingToken = &AuthenticationError{Message: "authorization header required"}
	ErrInvalidToken = &AuthenticationError{Message: "invalid or expired token"}
)

var (
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrEmptyPartList           = &ValidationError{Field: "part_ids", Message: "at least one part id is required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsPermission checks if an error is a PermissionError
func IsPermission(err error) bool {
	var permErr *PermissionError
	return errors.As(err, &permErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// IsIncompatiblePart checks if an error is an IncompatiblePartError
func IsIncompatiblePart(err error) bool {
	var incompatibleErr *IncompatiblePartError
	return errors.As(err, &incompatibleErr)
}

// IsAlreadyUsed checks if an error is an AlreadyUsedError
func IsAlreadyUsed(err error) bool {
	var usedErr *AlreadyUsedError
	return errors.As(err, &usedErr)
}

// IsDuplicatePartType checks if an error is a DuplicatePartTypeError
func IsDuplicatePartType(err error) bool {
	var dupErr *DuplicatePartTypeError
	return errors.As(err, &dupErr)
}

// IsIncompleteAssembly checks if an error is an IncompleteAssemblyError
func IsIncompleteAssembly(err error) bool {
	var incompleteErr *IncompleteAssemblyError
	return errors.As(err, &incompleteErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsDomain reports whether err belongs to the domain taxonomy, as opposed to an
// infrastructure failure such as a lost database connection.
func IsDomain(err error) bool {
	return Code(err) != CodeInternal
}

// Machine-readable error codes returned to API clients
const (
	CodePermissionDenied   = "permission_denied"
	CodeInvalidState       = "invalid_state"
	CodeNotFound           = "not_found"
	CodeIncompatiblePart   = "incompatible_part"
	CodeAlreadyUsed        = "already_used"
	CodeDuplicatePartType  = "duplicate_part_type"
	CodeIncompleteAssembly = "incomplete_assembly"
	CodeConflict           = "conflict"
	CodeValidation         = "validation_error"
	CodeAlreadyExists      = "already_exists"
	CodeUnauthenticated    = "unauthenticated"
	CodeInternal           = "internal_error"
)

// Code returns the stable machine code for err
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case IsPermission(err):
		return CodePermissionDenied
	case IsInvalidState(err):
		return CodeInvalidState
	case IsNotFound(err):
		return CodeNotFound
	case IsIncompatiblePart(err):
		return CodeIncompatiblePart
	case IsAlreadyUsed(err):
		return CodeAlreadyUsed
	case IsDuplicatePartType(err):
		return CodeDuplicatePartType
	case IsIncompleteAssembly(err):
		return CodeIncompleteAssembly
	case IsConflict(err):
		return CodeConflict
	case IsValidation(err):
		return CodeValidation
	case IsAlreadyExists(err):
		return CodeAlreadyExists
	case IsAuthentication(err):
		return CodeUnauthenticated
	}
	return CodeInternal
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewPermissionError creates a new PermissionError
func NewPermissionError(message string) error {
	return &PermissionError{Message: message}
}

// NewInvalidStateError creates an InvalidStateError for an assembly in the given status
func NewInvalidStateError(status, action string) error {
	return &InvalidStateError{Status: status, Action: action}
}

// NewIncompatiblePartError creates a new IncompatiblePartError
func NewIncompatiblePartError(partAircraftType, assemblyAircraftType string) error {
	return &IncompatiblePartError{PartAircraftType: partAircraftType, AssemblyAircraftType: assemblyAircraftType}
}

// NewDuplicatePartTypeError creates a new DuplicatePartTypeError
func NewDuplicatePartTypeError(partType string) error {
	return &DuplicatePartTypeError{PartType: partType}
}

// NewIncompleteAssemblyError creates a new IncompleteAssemblyError
func NewIncompleteAssemblyError(missing []string) error {
	return &IncompleteAssemblyError{Missing: missing}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
