package service

import (
	"sort"
	"time"

	"aircraft-factory-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	TeamType    models.TeamType  `json:"team_type"`
	PartType    *models.PartType `json:"part_type,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID        uuid.UUID     `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	FullName  string        `json:"full_name"`
	TeamID    *uuid.UUID    `json:"team_id,omitempty"`
	Team      *TeamResponse `json:"team,omitempty"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// PartResponse represents a part with its derived usage state
type PartResponse struct {
	ID               uuid.UUID           `json:"id"`
	PartType         models.PartType     `json:"part_type"`
	AircraftType     models.AircraftType `json:"aircraft_type"`
	TeamID           uuid.UUID           `json:"team_id"`
	CreatorID        *uuid.UUID          `json:"creator_id,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UsedInAircraftID *uuid.UUID          `json:"used_in_aircraft_id,omitempty"`
	IsRecycled       bool                `json:"is_recycled"`
	RecycledAt       *time.Time          `json:"recycled_at,omitempty"`
	RecycledByID     *uuid.UUID          `json:"recycled_by_id,omitempty"`
	IsInAssembly     bool                `json:"is_in_assembly"`
	IsInUse          bool                `json:"is_in_use"`
}

// PartListResponse represents a paginated list of parts
type PartListResponse struct {
	Parts    []PartResponse `json:"parts"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// PartTypeCount is the number of available parts of one type
type PartTypeCount struct {
	PartType models.PartType `json:"part_type"`
	Count    int64           `json:"count"`
}

// AvailablePartsResponse groups the available parts of an aircraft type by part type
type AvailablePartsResponse struct {
	AircraftType models.AircraftType `json:"aircraft_type"`
	Parts        []PartTypeCount     `json:"parts"`
	Total        int64               `json:"total"`
}

// AssemblyPartResponse describes a part attached to an assembly
type AssemblyPartResponse struct {
	PartID    uuid.UUID       `json:"part_id"`
	PartType  models.PartType `json:"part_type"`
	AddedByID uuid.UUID       `json:"added_by_id"`
	AddedAt   time.Time       `json:"added_at"`
}

// AssemblyResponse represents an assembly process with its attached and missing parts
type AssemblyResponse struct {
	ID             uuid.UUID              `json:"id"`
	AircraftType   models.AircraftType    `json:"aircraft_type"`
	Status         models.AssemblyStatus  `json:"status"`
	StartedByID    uuid.UUID              `json:"started_by_id"`
	StartDate      time.Time              `json:"start_date"`
	CompletedByID  *uuid.UUID             `json:"completed_by_id,omitempty"`
	CompletionDate *time.Time             `json:"completion_date,omitempty"`
	AircraftID     *uuid.UUID             `json:"aircraft_id,omitempty"`
	Parts          []AssemblyPartResponse `json:"parts"`
	MissingParts   []models.PartType      `json:"missing_parts"`
}

// AssemblyListResponse represents a paginated list of assemblies
type AssemblyListResponse struct {
	Assemblies []AssemblyResponse `json:"assemblies"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
}

// PartError reports why a single part could not be attached
type PartError struct {
	PartID uuid.UUID `json:"part_id"`
	Code   string    `json:"code"`
	Error  string    `json:"error"`
}

// AddPartsResult partitions a batch attach into attached parts and per-part failures
type AddPartsResult struct {
	Added  []AssemblyPartResponse `json:"added"`
	Errors []PartError            `json:"errors"`
}

// AssemblyLogResponse represents one audit entry
type AssemblyLogResponse struct {
	ID         int64                 `json:"id"`
	AssemblyID uuid.UUID             `json:"assembly_id"`
	ActionByID *uuid.UUID            `json:"action_by_id,omitempty"`
	ActionBy   string                `json:"action_by,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
	Action     models.AssemblyAction `json:"action"`
	PartID     *uuid.UUID            `json:"part_id,omitempty"`
	Notes      string                `json:"notes"`
}

// AircraftResponse represents a finished aircraft and its part manifest
type AircraftResponse struct {
	ID           uuid.UUID           `json:"id"`
	AircraftType models.AircraftType `json:"aircraft_type"`
	AssembledAt  time.Time           `json:"assembled_at"`
	Parts        []PartResponse      `json:"parts"`
}

// AircraftListResponse represents a paginated list of aircraft
type AircraftListResponse struct {
	Aircraft []AircraftResponse `json:"aircraft"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

func toTeamResponse(team *models.Team) *TeamResponse {
	resp := &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Title:       team.Title,
		Description: team.Description,
		TeamType:    team.TeamType,
		CreatedAt:   team.CreatedAt,
	}
	if pt, ok := team.TeamType.ProducedPartType(); ok {
		resp.PartType = &pt
	}
	return resp
}

func toUserResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  user.FullName(),
		TeamID:    user.TeamID,
	}
	if user.Team != nil {
		resp.Team = toTeamResponse(user.Team)
	}
	return resp
}

func toPartResponse(part *models.Part) PartResponse {
	return PartResponse{
		ID:               part.ID,
		PartType:         part.PartType,
		AircraftType:     part.AircraftType,
		TeamID:           part.TeamID,
		CreatorID:        part.CreatorID,
		CreatedAt:        part.CreatedAt,
		UsedInAircraftID: part.UsedInAircraftID,
		IsRecycled:       part.IsRecycled,
		RecycledAt:       part.RecycledAt,
		RecycledByID:     part.RecycledByID,
		IsInAssembly:     part.IsInAssembly,
		IsInUse:          part.IsInUse(),
	}
}

func toPartResponses(parts []models.Part) []PartResponse {
	return lo.Map(parts, func(p models.Part, _ int) PartResponse {
		return toPartResponse(&p)
	})
}

func toAssemblyPartResponse(link *models.AssemblyPart) AssemblyPartResponse {
	return AssemblyPartResponse{
		PartID:    link.PartID,
		PartType:  link.PartType,
		AddedByID: link.AddedByID,
		AddedAt:   link.AddedAt,
	}
}

func toAssemblyResponse(process *models.AssemblyProcess) *AssemblyResponse {
	links := make([]models.AssemblyPart, len(process.Parts))
	copy(links, process.Parts)
	sort.SliceStable(links, func(i, j int) bool {
		return partTypeRank(links[i].PartType) < partTypeRank(links[j].PartType)
	})

	return &AssemblyResponse{
		ID:             process.ID,
		AircraftType:   process.AircraftType,
		Status:         process.Status,
		StartedByID:    process.StartedByID,
		StartDate:      process.StartDate,
		CompletedByID:  process.CompletedByID,
		CompletionDate: process.CompletionDate,
		AircraftID:     process.AircraftID,
		Parts: lo.Map(links, func(l models.AssemblyPart, _ int) AssemblyPartResponse {
			return toAssemblyPartResponse(&l)
		}),
		MissingParts: MissingPartTypes(process.AttachedPartTypes()),
	}
}

func toAssemblyLogResponse(entry *models.AssemblyLog) AssemblyLogResponse {
	resp := AssemblyLogResponse{
		ID:         entry.ID,
		AssemblyID: entry.AssemblyID,
		ActionByID: entry.ActionByID,
		Timestamp:  entry.Timestamp,
		Action:     entry.Action,
		PartID:     entry.PartID,
		Notes:      entry.Notes,
	}
	if entry.ActionBy != nil {
		resp.ActionBy = entry.ActionBy.Username
	}
	return resp
}

func toAircraftResponse(aircraft *models.Aircraft) *AircraftResponse {
	parts := make([]models.Part, len(aircraft.Parts))
	copy(parts, aircraft.Parts)
	sort.SliceStable(parts, func(i, j int) bool {
		return partTypeRank(parts[i].PartType) < partTypeRank(parts[j].PartType)
	})
	return &AircraftResponse{
		ID:           aircraft.ID,
		AircraftType: aircraft.AircraftType,
		AssembledAt:  aircraft.AssembledAt,
		Parts:        toPartResponses(parts),
	}
}

// partTypeRank orders part types canonically; unknown types sort last
func partTypeRank(pt models.PartType) int {
	if idx := lo.IndexOf(models.RequiredPartTypes, pt); idx >= 0 {
		return idx
	}
	return len(models.RequiredPartTypes)
}

// MissingPartTypes returns the required part types absent from attached, in canonical order
func MissingPartTypes(attached []models.PartType) []models.PartType {
	return lo.Filter(models.RequiredPartTypes, func(pt models.PartType, _ int) bool {
		return !lo.Contains(attached, pt)
	})
}
