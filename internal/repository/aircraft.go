package repository

import (
	"context"

	"aircraft-factory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AircraftRepository handles database operations for finished aircraft
type AircraftRepository struct {
	db *gorm.DB
}

// NewAircraftRepository creates a new aircraft repository
func NewAircraftRepository(db *gorm.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

// Create creates a new aircraft
func (r *AircraftRepository) Create(ctx context.Context, aircraft *models.Aircraft) error {
	return r.db.WithContext(ctx).Omit("Parts").Create(aircraft).Error
}

// GetByID retrieves an aircraft with its part manifest
func (r *AircraftRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Aircraft, error) {
	var aircraft models.Aircraft
	err := r.db.WithContext(ctx).Preload("Parts").First(&aircraft, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &aircraft, nil
}

// List retrieves aircraft with their part manifests, most recently assembled first
func (r *AircraftRepository) List(ctx context.Context, aircraftType *models.AircraftType, limit, offset int) ([]models.Aircraft, int64, error) {
	var aircraft []models.Aircraft
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Aircraft{})
	if aircraftType != nil {
		query = query.Where("aircraft_type = ?", *aircraftType)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	find := r.db.WithContext(ctx).Preload("Parts")
	if aircraftType != nil {
		find = find.Where("aircraft_type = ?", *aircraftType)
	}
	err := find.Order("assembled_at DESC, id ASC").Limit(limit).Offset(offset).Find(&aircraft).Error
	if err != nil {
		return nil, 0, err
	}

	return aircraft, total, nil
}
