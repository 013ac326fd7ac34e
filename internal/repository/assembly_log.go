package repository

import (
	"context"

	"aircraft-factory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssemblyLogRepository appends and reads assembly audit entries
type AssemblyLogRepository struct {
	db *gorm.DB
}

// NewAssemblyLogRepository creates a new assembly log repository
func NewAssemblyLogRepository(db *gorm.DB) *AssemblyLogRepository {
	return &AssemblyLogRepository{db: db}
}

// Append inserts a new audit entry
func (r *AssemblyLogRepository) Append(ctx context.Context, entry *models.AssemblyLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListByAssembly retrieves the entries of an assembly ordered by timestamp, with the
// serial id breaking ties so entries written in one instant keep their insertion order
func (r *AssemblyLogRepository) ListByAssembly(ctx context.Context, assemblyID uuid.UUID, ascending bool) ([]models.AssemblyLog, error) {
	order := "timestamp DESC, id DESC"
	if ascending {
		order = "timestamp ASC, id ASC"
	}

	var entries []models.AssemblyLog
	err := r.db.WithContext(ctx).
		Preload("ActionBy").
		Where("assembly_id = ?", assemblyID).
		Order(order).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
