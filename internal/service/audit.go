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

// Log orders accepted by ListLogs
const (
	LogOrderAsc  = "asc"
	LogOrderDesc = "desc"
)

// AuditService appends and reads the assembly audit trail
type AuditService struct {
	store repository.Store
	clock Clock
}

// NewAuditService creates a new audit service
func NewAuditService(store repository.Store, clock Clock) *AuditService {
	return &AuditService{store: store, clock: clock}
}

// Record appends an entry through tx, the caller's transaction, so the entry commits or
// rolls back with the change it describes.
func (s *AuditService) Record(ctx context.Context, tx repository.Store, assemblyID, actorID uuid.UUID, action models.AssemblyAction, partID *uuid.UUID, notes string) error {
	entry := &models.AssemblyLog{
		AssemblyID: assemblyID,
		ActionByID: &actorID,
		Timestamp:  s.clock.Now(),
		Action:     action,
		PartID:     partID,
		Notes:      notes,
	}
	if err := tx.AssemblyLogs().Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to record %s: %w", action, err)
	}
	return nil
}

// ListLogs returns the audit trail of an assembly, most recent first unless order is "asc"
func (s *AuditService) ListLogs(ctx context.Context, actorID, assemblyID uuid.UUID, order string) ([]AssemblyLogResponse, error) {
	ascending := false
	switch order {
	case "", LogOrderDesc:
	case LogOrderAsc:
		ascending = true
	default:
		return nil, apperrors.NewValidationError("order", "must be one of [asc desc]")
	}

	if _, err := requireAssemblyActor(ctx, s.store.Users(), actorID); err != nil {
		return nil, err
	}

	if _, err := s.store.Assemblies().GetByID(ctx, assemblyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssemblyNotFound
		}
		return nil, fmt.Errorf("failed to get assembly: %w", err)
	}

	entries, err := s.store.AssemblyLogs().ListByAssembly(ctx, assemblyID, ascending)
	if err != nil {
		return nil, fmt.Errorf("failed to list assembly logs: %w", err)
	}

	return lo.Map(entries, func(e models.AssemblyLog, _ int) AssemblyLogResponse {
		return toAssemblyLogResponse(&e)
	}), nil
}
