package repository

import (
	"context"
	"time"

	"aircraft-factory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	partColumns = "parts.*, EXISTS (SELECT 1 FROM assembly_parts ap WHERE ap.part_id = parts.id) AS is_in_assembly"

	availableCondition = "parts.used_in_aircraft_id IS NULL AND parts.is_recycled = false AND " +
		"NOT EXISTS (SELECT 1 FROM assembly_parts ap WHERE ap.part_id = parts.id)"
)

// PartRepository handles database operations for parts
type PartRepository struct {
	db *gorm.DB
}

// NewPartRepository creates a new part repository
func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

// Create creates a new part
func (r *PartRepository) Create(ctx context.Context, part *models.Part) error {
	return r.db.WithContext(ctx).Create(part).Error
}

// GetByID retrieves a part by ID
func (r *PartRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Part, error) {
	var part models.Part
	err := r.db.WithContext(ctx).Select(partColumns).First(&part, "parts.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

// GetForUpdate retrieves a part by ID and locks its row until the surrounding transaction ends
func (r *PartRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Part, error) {
	var part models.Part
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "parts"}}).
		Select(partColumns).
		First(&part, "parts.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

// List retrieves parts matching the filter with pagination, newest first
func (r *PartRepository) List(ctx context.Context, filter PartFilter, limit, offset int) ([]models.Part, int64, error) {
	var parts []models.Part
	var total int64

	query := applyPartFilter(r.db.WithContext(ctx).Model(&models.Part{}), filter)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := applyPartFilter(r.db.WithContext(ctx), filter).
		Select(partColumns).
		Order("parts.created_at DESC, parts.id ASC").
		Limit(limit).Offset(offset).
		Find(&parts).Error
	if err != nil {
		return nil, 0, err
	}

	return parts, total, nil
}

func applyPartFilter(db *gorm.DB, filter PartFilter) *gorm.DB {
	if filter.TeamID != nil {
		db = db.Where("parts.team_id = ?", *filter.TeamID)
	}
	if filter.AircraftType != nil {
		db = db.Where("parts.aircraft_type = ?", *filter.AircraftType)
	}
	if filter.PartType != nil {
		db = db.Where("parts.part_type = ?", *filter.PartType)
	}
	if filter.Recycled != nil {
		db = db.Where("parts.is_recycled = ?", *filter.Recycled)
	}
	return db
}

// ListAvailable retrieves parts for the aircraft type that are unused, unlinked and not
// recycled, oldest first
func (r *PartRepository) ListAvailable(ctx context.Context, aircraftType models.AircraftType, partType *models.PartType) ([]models.Part, error) {
	var parts []models.Part

	query := r.db.WithContext(ctx).
		Where("parts.aircraft_type = ?", aircraftType).
		Where(availableCondition)
	if partType != nil {
		query = query.Where("parts.part_type = ?", *partType)
	}

	err := query.Order("parts.created_at ASC, parts.id ASC").Find(&parts).Error
	if err != nil {
		return nil, err
	}
	return parts, nil
}

// CountAvailableByType counts available parts for the aircraft type grouped by part type
func (r *PartRepository) CountAvailableByType(ctx context.Context, aircraftType models.AircraftType) (map[models.PartType]int64, error) {
	type row struct {
		PartType models.PartType
		Count    int64
	}
	var rows []row

	err := r.db.WithContext(ctx).Model(&models.Part{}).
		Select("parts.part_type AS part_type, COUNT(*) AS count").
		Where("parts.aircraft_type = ?", aircraftType).
		Where(availableCondition).
		Group("parts.part_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.PartType]int64, len(rows))
	for _, r := range rows {
		counts[r.PartType] = r.Count
	}
	return counts, nil
}

// MarkRecycled flags a part as recycled. The update re-reads availability, so a part
// linked by a transaction that committed after the caller's row lock is left untouched
// and ErrStaleState is returned.
func (r *PartRepository) MarkRecycled(ctx context.Context, id uuid.UUID, recycledBy uuid.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.Part{}).
		Where("parts.id = ? AND "+availableCondition, id).
		Updates(map[string]interface{}{
			"is_recycled":    true,
			"recycled_at":    at,
			"recycled_by_id": recycledBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaleState
	}
	return nil
}

// MarkUsedInAircraft records that the parts were built into the aircraft.
// Parts already used elsewhere or recycled are left untouched; the affected row count is returned.
func (r *PartRepository) MarkUsedInAircraft(ctx context.Context, ids []uuid.UUID, aircraftID uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Model(&models.Part{}).
		Where("id IN ? AND used_in_aircraft_id IS NULL AND is_recycled = false", ids).
		Update("used_in_aircraft_id", aircraftID)
	return result.RowsAffected, result.Error
}
