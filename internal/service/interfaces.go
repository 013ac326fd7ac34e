package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PartServiceInterface defines the interface for part service
type PartServiceInterface interface {
	CreatePart(ctx context.Context, actorID uuid.UUID, req *CreatePartRequest) (*PartResponse, error)
	GetPart(ctx context.Context, actorID, id uuid.UUID) (*PartResponse, error)
	ListParts(ctx context.Context, actorID uuid.UUID, req *ListPartsRequest) (*PartListResponse, error)
	RecyclePart(ctx context.Context, actorID, id uuid.UUID) (*PartResponse, error)
	ListAvailable(ctx context.Context, actorID uuid.UUID, aircraftType, partType string) ([]PartResponse, error)
	AvailableSummary(ctx context.Context, actorID uuid.UUID, aircraftType string) (*AvailablePartsResponse, error)
}

// AssemblyServiceInterface defines the interface for the assembly process engine
type AssemblyServiceInterface interface {
	Start(ctx context.Context, actorID uuid.UUID, req *StartAssemblyRequest) (*AssemblyResponse, error)
	Get(ctx context.Context, actorID, assemblyID uuid.UUID) (*AssemblyResponse, error)
	List(ctx context.Context, actorID uuid.UUID, req *ListAssembliesRequest) (*AssemblyListResponse, error)
	AddParts(ctx context.Context, actorID, assemblyID uuid.UUID, partIDs []uuid.UUID) (*AddPartsResult, error)
	RemovePart(ctx context.Context, actorID, assemblyID, partID uuid.UUID) (*AssemblyResponse, error)
	Complete(ctx context.Context, actorID, assemblyID uuid.UUID) (*AircraftResponse, error)
	Cancel(ctx context.Context, actorID, assemblyID uuid.UUID, reason string) (*AssemblyResponse, error)
}

// AuditServiceInterface defines the read side of the assembly audit log
type AuditServiceInterface interface {
	ListLogs(ctx context.Context, actorID, assemblyID uuid.UUID, order string) ([]AssemblyLogResponse, error)
}

// AircraftServiceInterface defines the interface for aircraft service
type AircraftServiceInterface interface {
	GetAircraft(ctx context.Context, actorID, id uuid.UUID) (*AircraftResponse, error)
	ListAircraft(ctx context.Context, actorID uuid.UUID, aircraftType string, page, pageSize int) (*AircraftListResponse, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*TeamResponse, error)
	ListTeams(ctx context.Context) ([]TeamResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*UserResponse, error)
	ListUsers(ctx context.Context, page, pageSize int) (*UserListResponse, error)
	AssignTeam(ctx context.Context, id uuid.UUID, teamID *uuid.UUID) (*UserResponse, error)
}

var (
	_ PartServiceInterface     = (*PartService)(nil)
	_ AssemblyServiceInterface = (*AssemblyService)(nil)
	_ AuditServiceInterface    = (*AuditService)(nil)
	_ AircraftServiceInterface = (*AircraftService)(nil)
	_ TeamServiceInterface     = (*TeamService)(nil)
	_ UserServiceInterface     = (*UserService)(nil)
)
