package repository

import (
	"context"

	"aircraft-factory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssemblyRepository handles database operations for assembly processes and their part links
type AssemblyRepository struct {
	db *gorm.DB
}

// NewAssemblyRepository creates a new assembly repository
func NewAssemblyRepository(db *gorm.DB) *AssemblyRepository {
	return &AssemblyRepository{db: db}
}

func preloadLinkedParts(db *gorm.DB) *gorm.DB {
	return db.Preload("Parts", func(db *gorm.DB) *gorm.DB {
		return db.Order("assembly_parts.added_at ASC")
	}).Preload("Parts.Part", func(db *gorm.DB) *gorm.DB {
		return db.Select(partColumns)
	})
}

// Create creates a new assembly process
func (r *AssemblyRepository) Create(ctx context.Context, process *models.AssemblyProcess) error {
	return r.db.WithContext(ctx).Create(process).Error
}

// GetByID retrieves an assembly process with its linked parts
func (r *AssemblyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AssemblyProcess, error) {
	var process models.AssemblyProcess
	err := preloadLinkedParts(r.db.WithContext(ctx)).First(&process, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &process, nil
}

// GetForUpdate retrieves an assembly process and locks its row until the surrounding
// transaction ends. Linked parts are not loaded.
func (r *AssemblyRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.AssemblyProcess, error) {
	var process models.AssemblyProcess
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&process, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &process, nil
}

// List retrieves assembly processes matching the filter, most recently started first
func (r *AssemblyRepository) List(ctx context.Context, filter AssemblyFilter, limit, offset int) ([]models.AssemblyProcess, int64, error) {
	var processes []models.AssemblyProcess
	var total int64

	apply := func(db *gorm.DB) *gorm.DB {
		if filter.Status != nil {
			db = db.Where("status = ?", *filter.Status)
		}
		if filter.AircraftType != nil {
			db = db.Where("aircraft_type = ?", *filter.AircraftType)
		}
		return db
	}

	if err := apply(r.db.WithContext(ctx).Model(&models.AssemblyProcess{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := preloadLinkedParts(apply(r.db.WithContext(ctx))).
		Order("start_date DESC, id ASC").
		Limit(limit).Offset(offset).
		Find(&processes).Error
	if err != nil {
		return nil, 0, err
	}

	return processes, total, nil
}

// Transition persists the status fields of process, guarded on the row still being in
// status from. ErrStaleState is returned when another writer moved it first.
func (r *AssemblyRepository) Transition(ctx context.Context, process *models.AssemblyProcess, from models.AssemblyStatus) error {
	result := r.db.WithContext(ctx).Model(&models.AssemblyProcess{}).
		Where("id = ? AND status = ?", process.ID, from).
		Updates(map[string]interface{}{
			"status":          process.Status,
			"completed_by_id": process.CompletedByID,
			"completion_date": process.CompletionDate,
			"aircraft_id":     process.AircraftID,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStaleState
	}
	return nil
}

// ListParts retrieves the links of an assembly with their parts, in the order they were added
func (r *AssemblyRepository) ListParts(ctx context.Context, assemblyID uuid.UUID) ([]models.AssemblyPart, error) {
	var links []models.AssemblyPart
	err := r.db.WithContext(ctx).
		Preload("Part", func(db *gorm.DB) *gorm.DB {
			return db.Select(partColumns)
		}).
		Where("assembly_id = ?", assemblyID).
		Order("added_at ASC, id ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// GetPart retrieves the link between an assembly and a part
func (r *AssemblyRepository) GetPart(ctx context.Context, assemblyID, partID uuid.UUID) (*models.AssemblyPart, error) {
	var link models.AssemblyPart
	err := r.db.WithContext(ctx).First(&link, "assembly_id = ? AND part_id = ?", assemblyID, partID).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// AddPart links a part to an assembly. Unique index violations come back as
// ErrPartAlreadyLinked or ErrPartTypeAlreadyFilled.
func (r *AssemblyRepository) AddPart(ctx context.Context, link *models.AssemblyPart) error {
	return translateError(r.db.WithContext(ctx).Create(link).Error)
}

// RemovePart deletes the link between an assembly and a part
func (r *AssemblyRepository) RemovePart(ctx context.Context, assemblyID, partID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("assembly_id = ? AND part_id = ?", assemblyID, partID).
		Delete(&models.AssemblyPart{})
	return result.RowsAffected, result.Error
}

// RemoveAllParts deletes every link of an assembly
func (r *AssemblyRepository) RemoveAllParts(ctx context.Context, assemblyID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("assembly_id = ?", assemblyID).
		Delete(&models.AssemblyPart{})
	return result.RowsAffected, result.Error
}
