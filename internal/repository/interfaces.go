package repository

import (
	"context"
	"time"

	"aircraft-factory-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// Store bundles every repository over a single database handle.
// Transaction runs fn with a Store bound to one transaction; nested calls become savepoints.
type Store interface {
	Teams() TeamRepositoryInterface
	Users() UserRepositoryInterface
	Parts() PartRepositoryInterface
	Assemblies() AssemblyRepositoryInterface
	AssemblyLogs() AssemblyLogRepositoryInterface
	Aircraft() AircraftRepositoryInterface
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetByName(ctx context.Context, name string) (*models.Team, error)
	GetAll(ctx context.Context) ([]models.Team, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetWithTeam(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.User, int64, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, teamID *uuid.UUID) error
}

// PartRepositoryInterface defines the interface for part repository operations.
// Every read fills Part.IsInAssembly from assembly_parts.
type PartRepositoryInterface interface {
	Create(ctx context.Context, part *models.Part) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Part, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Part, error)
	List(ctx context.Context, filter PartFilter, limit, offset int) ([]models.Part, int64, error)
	ListAvailable(ctx context.Context, aircraftType models.AircraftType, partType *models.PartType) ([]models.Part, error)
	CountAvailableByType(ctx context.Context, aircraftType models.AircraftType) (map[models.PartType]int64, error)
	MarkRecycled(ctx context.Context, id uuid.UUID, recycledBy uuid.UUID, at time.Time) error
	MarkUsedInAircraft(ctx context.Context, ids []uuid.UUID, aircraftID uuid.UUID) (int64, error)
}

// AssemblyRepositoryInterface defines the interface for assembly process and link operations
type AssemblyRepositoryInterface interface {
	Create(ctx context.Context, process *models.AssemblyProcess) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AssemblyProcess, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*models.AssemblyProcess, error)
	List(ctx context.Context, filter AssemblyFilter, limit, offset int) ([]models.AssemblyProcess, int64, error)
	Transition(ctx context.Context, process *models.AssemblyProcess, from models.AssemblyStatus) error
	ListParts(ctx context.Context, assemblyID uuid.UUID) ([]models.AssemblyPart, error)
	GetPart(ctx context.Context, assemblyID, partID uuid.UUID) (*models.AssemblyPart, error)
	AddPart(ctx context.Context, link *models.AssemblyPart) error
	RemovePart(ctx context.Context, assemblyID, partID uuid.UUID) (int64, error)
	RemoveAllParts(ctx context.Context, assemblyID uuid.UUID) (int64, error)
}

// AssemblyLogRepositoryInterface is append-only: there is no update or delete
type AssemblyLogRepositoryInterface interface {
	Append(ctx context.Context, entry *models.AssemblyLog) error
	ListByAssembly(ctx context.Context, assemblyID uuid.UUID, ascending bool) ([]models.AssemblyLog, error)
}

// AircraftRepositoryInterface defines the interface for aircraft repository operations
type AircraftRepositoryInterface interface {
	Create(ctx context.Context, aircraft *models.Aircraft) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Aircraft, error)
	List(ctx context.Context, aircraftType *models.AircraftType, limit, offset int) ([]models.Aircraft, int64, error)
}

// PartFilter narrows part listings. Nil fields are not applied.
type PartFilter struct {
	TeamID       *uuid.UUID
	AircraftType *models.AircraftType
	PartType     *models.PartType
	Recycled     *bool
}

// AssemblyFilter narrows assembly listings. Nil fields are not applied.
type AssemblyFilter struct {
	Status       *models.AssemblyStatus
	AircraftType *models.AircraftType
}
