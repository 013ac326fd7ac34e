package service

import (
	"context"
	"errors"
	"fmt"

	"aircraft-factory-backend/internal/database/models"
	apperrors "aircraft-factory-backend/internal/errors"
	"aircraft-factory-backend/internal/logger"
	"aircraft-factory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// PartService handles business logic for parts
type PartService struct {
	store     repository.Store
	clock     Clock
	validator *validator.Validate
}

// NewPartService creates a new part service
func NewPartService(store repository.Store, clock Clock, validator *validator.Validate) *PartService {
	return &PartService{
		store:     store,
		clock:     clock,
		validator: validator,
	}
}

// CreatePartRequest represents the request to manufacture a part
type CreatePartRequest struct {
	PartType     string `json:"part_type" validate:"required,oneof=wing body tail avionics"`
	AircraftType string `json:"aircraft_type" validate:"required,oneof=TB2 TB3 AKINCI KIZILELMA"`
}

// ListPartsRequest filters the part listing
type ListPartsRequest struct {
	PartType     string `json:"part_type" validate:"omitempty,oneof=wing body tail avionics"`
	AircraftType string `json:"aircraft_type" validate:"omitempty,oneof=TB2 TB3 AKINCI KIZILELMA"`
	Recycled     *bool  `json:"recycled"`
	Page         int    `json:"page"`
	PageSize     int    `json:"page_size"`
}

// CreatePart records a new part produced by the actor's team
func (s *PartService) CreatePart(ctx context.Context, actorID uuid.UUID, req *CreatePartRequest) (*PartResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	actor, err := resolveActor(ctx, s.store.Users(), actorID)
	if err != nil {
		return nil, err
	}

	partType := models.PartType(req.PartType)
	if !actor.Team.CanProducePart(partType) {
		return nil, apperrors.ErrCannotProducePart
	}

	part := &models.Part{
		PartType:     partType,
		AircraftType: models.AircraftType(req.AircraftType),
		TeamID:       actor.Team.ID,
		CreatorID:    &actor.ID,
	}
	if err := s.store.Parts().Create(ctx, part); err != nil {
		return nil, fmt.Errorf("failed to create part: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"part_id":       part.ID,
		"part_type":     part.PartType,
		"aircraft_type": part.AircraftType,
	}).Info("part created")

	resp := toPartResponse(part)
	return &resp, nil
}

// GetPart returns a part visible to the actor. Producing teams only see their own parts.
func (s *PartService) GetPart(ctx context.Context, actorID, id uuid.UUID) (*PartResponse, error) {
	actor, err := resolveActor(ctx, s.store.Users(), actorID)
	if err != nil {
		return nil, err
	}

	part, err := s.store.Parts().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartNotFound
		}
		return nil, fmt.Errorf("failed to get part: %w", err)
	}
	if !actor.Team.IsAssembly() && part.TeamID != actor.Team.ID {
		return nil, apperrors.ErrPartNotFound
	}

	resp := toPartResponse(part)
	return &resp, nil
}

// ListParts returns the parts visible to the actor, newest first
func (s *PartService) ListParts(ctx context.Context, actorID uuid.UUID, req *ListPartsRequest) (*PartListResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	actor, err := resolveActor(ctx, s.store.Users(), actorID)
	if err != nil {
		return nil, err
	}

	filter := repository.PartFilter{Recycled: req.Recycled}
	if !actor.Team.IsAssembly() {
		filter.TeamID = &actor.Team.ID
	}
	if req.PartType != "" {
		partType := models.PartType(req.PartType)
		filter.PartType = &partType
	}
	if req.AircraftType != "" {
		aircraftType := models.AircraftType(req.AircraftType)
		filter.AircraftType = &aircraftType
	}

	page, pageSize, limit, offset := paginate(req.Page, req.PageSize)
	parts, total, err := s.store.Parts().List(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}

	return &PartListResponse{
		Parts:    toPartResponses(parts),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// RecyclePart flags a part as recycled. Only the producing team may recycle, parts in use
// cannot be recycled, and recycling an already recycled part changes nothing.
func (s *PartService) RecyclePart(ctx context.Context, actorID, id uuid.UUID) (*PartResponse, error) {
	actor, err := resolveActor(ctx, s.store.Users(), actorID)
	if err != nil {
		return nil, err
	}

	var part *models.Part
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		part, err = tx.Parts().GetForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrPartNotFound
			}
			return fmt.Errorf("failed to lock part: %w", err)
		}
		if part.TeamID != actor.Team.ID {
			return apperrors.ErrNotPartOwner
		}
		if part.IsRecycled {
			return nil
		}
		if part.IsInUse() {
			return apperrors.ErrPartInUse
		}

		now := s.clock.Now()
		if err := tx.Parts().MarkRecycled(ctx, part.ID, actor.ID, now); err != nil {
			if errors.Is(err, repository.ErrStaleState) {
				return apperrors.ErrPartInUse
			}
			return fmt.Errorf("failed to recycle part: %w", err)
		}
		part.IsRecycled = true
		part.RecycledAt = &now
		part.RecycledByID = &actor.ID

		logger.WithContext(ctx).WithField("part_id", part.ID).Info("part recycled")
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toPartResponse(part)
	return &resp, nil
}

// ListAvailable returns the parts that can still be attached to an assembly of the
// aircraft type, oldest first
func (s *PartService) ListAvailable(ctx context.Context, actorID uuid.UUID, aircraftType, partType string) ([]PartResponse, error) {
	at, pt, err := s.parseAvailabilityQuery(aircraftType, partType)
	if err != nil {
		return nil, err
	}
	if _, err := requireAssemblyActor(ctx, s.store.Users(), actorID); err != nil {
		return nil, err
	}

	parts, err := s.store.Parts().ListAvailable(ctx, at, pt)
	if err != nil {
		return nil, fmt.Errorf("failed to list available parts: %w", err)
	}
	return toPartResponses(parts), nil
}

// AvailableSummary counts the available parts of the aircraft type per part type
func (s *PartService) AvailableSummary(ctx context.Context, actorID uuid.UUID, aircraftType string) (*AvailablePartsResponse, error) {
	at, _, err := s.parseAvailabilityQuery(aircraftType, "")
	if err != nil {
		return nil, err
	}
	if _, err := requireAssemblyActor(ctx, s.store.Users(), actorID); err != nil {
		return nil, err
	}

	counts, err := s.store.Parts().CountAvailableByType(ctx, at)
	if err != nil {
		return nil, fmt.Errorf("failed to count available parts: %w", err)
	}

	summary := lo.Map(models.RequiredPartTypes, func(pt models.PartType, _ int) PartTypeCount {
		return PartTypeCount{PartType: pt, Count: counts[pt]}
	})
	return &AvailablePartsResponse{
		AircraftType: at,
		Parts:        summary,
		Total:        lo.SumBy(summary, func(c PartTypeCount) int64 { return c.Count }),
	}, nil
}

func (s *PartService) parseAvailabilityQuery(aircraftType, partType string) (models.AircraftType, *models.PartType, error) {
	at := models.AircraftType(aircraftType)
	if !at.IsValid() {
		return "", nil, apperrors.NewValidationError("aircraft_type", "must be one of [TB2 TB3 AKINCI KIZILELMA]")
	}
	if partType == "" {
		return at, nil, nil
	}
	pt := models.PartType(partType)
	if !pt.IsValid() {
		return "", nil, apperrors.NewValidationError("part_type", "must be one of [wing body tail avionics]")
	}
	return at, &pt, nil
}
