package service

import (
	"context"
	"errors"
	"fmt"

	"aircraft-factory-backend/internal/database/models"
	apperrors "aircraft-factory-backend/internal/errors"
	"aircraft-factory-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// AircraftService exposes the read side of finished aircraft; aircraft are only written
// by AssemblyService.Complete
type AircraftService struct {
	store repository.Store
}

// NewAircraftService creates a new aircraft service
func NewAircraftService(store repository.Store) *AircraftService {
	return &AircraftService{store: store}
}

// GetAircraft returns an aircraft with its part manifest
func (s *AircraftService) GetAircraft(ctx context.Context, actorID, id uuid.UUID) (*AircraftResponse, error) {
	if _, err := requireAssemblyActor(ctx, s.store.Users(), actorID); err != nil {
		return nil, err
	}

	aircraft, err := s.store.Aircraft().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAircraftNotFound
		}
		return nil, fmt.Errorf("failed to get aircraft: %w", err)
	}
	return toAircraftResponse(aircraft), nil
}

// ListAircraft returns finished aircraft, most recently assembled first
func (s *AircraftService) ListAircraft(ctx context.Context, actorID uuid.UUID, aircraftType string, page, pageSize int) (*AircraftListResponse, error) {
	var filter *models.AircraftType
	if aircraftType != "" {
		at := models.AircraftType(aircraftType)
		if !at.IsValid() {
			return nil, apperrors.NewValidationError("aircraft_type", "must be one of [TB2 TB3 AKINCI KIZILELMA]")
		}
		filter = &at
	}
	if _, err := requireAssemblyActor(ctx, s.store.Users(), actorID); err != nil {
		return nil, err
	}

	page, pageSize, limit, offset := paginate(page, pageSize)
	aircraft, total, err := s.store.Aircraft().List(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list aircraft: %w", err)
	}

	return &AircraftListResponse{
		Aircraft: lo.Map(aircraft, func(a models.Aircraft, _ int) AircraftResponse {
			return *toAircraftResponse(&a)
		}),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
