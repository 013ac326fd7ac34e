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

// errNothingAttached rolls back an add-parts batch in which every part was rejected
var errNothingAttached = errors.New("no part could be attached")

// AssemblyService runs the assembly process state machine
type AssemblyService struct {
	store     repository.Store
	audit     *AuditService
	clock     Clock
	validator *validator.Validate
}

// NewAssemblyService creates a new assembly service
func NewAssemblyService(store repository.Store, audit *AuditService, clock Clock, validator *validator.Validate) *AssemblyService {
	return &AssemblyService{
		store:     store,
		audit:     audit,
		clock:     clock,
		validator: validator,
	}
}

// StartAssemblyRequest represents the request to start an assembly
type StartAssemblyRequest struct {
	AircraftType string `json:"aircraft_type" validate:"required,oneof=TB2 TB3 AKINCI KIZILELMA"`
}

// ListAssembliesRequest filters the assembly listing
type ListAssembliesRequest struct {
	Status       string `json:"status" validate:"omitempty,oneof=in_progress completed cancelled"`
	AircraftType string `json:"aircraft_type" validate:"omitempty,oneof=TB2 TB3 AKINCI KIZILELMA"`
	Page         int    `json:"page"`
	PageSize     int    `json:"page_size"`
}

// Start opens a new assembly process for an aircraft type
func (s *AssemblyService) Start(ctx context.Context, actorID uuid.UUID, req *StartAssemblyRequest) (*AssemblyResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	actor, err := requireAssemblyActor(ctx, s.store.Users(), actorID)
	if err != nil {
		return nil, err
	}

	process := &models.AssemblyProcess{
		AircraftType: models.AircraftType(req.AircraftType),
		Status:       models.AssemblyStatusInProgress,
		StartedByID:  actor.ID,
		StartDate:    s.clock.Now(),
	}

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		if err := tx.Assemblies().Create(ctx, process); err != nil {
			return fmt.Errorf("failed to create assembly: %w", err)
		}
		notes := fmt.Sprintf("assembly started for %s", process.AircraftType)
		return s.audit.Record(ctx, tx, process.ID, actor.ID, models.AssemblyActionStarted, nil, notes)
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"assembly_id":   process.ID,
		"aircraft_type": process.AircraftType,
	}).Info("assembly started")

	return toAssemblyResponse(process), nil
}

// Get returns an assembly with its attached and missing parts
func (s *AssemblyService) Get(ctx context.Context, actorID, assemblyID uuid.UUID) (*AssemblyResponse, error) {
	if _, err := requireAssemblyActor(ctx, s.store.Users(), actorID); err != nil {
		return nil, err
	}

	process, err := s.store.Assemblies().GetByID(ctx, assemblyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssemblyNotFound
		}
		return nil, fmt.Errorf("failed to get assembly: %w", err)
	}
	return toAssemblyResponse(process), nil
}

// List returns assemblies, most recently started first
func (s *AssemblyService) List(ctx context.Context, actorID uuid.UUID, req *ListAssembliesRequest) (*AssemblyListResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := requireAssemblyActor(ctx, s.store.Users(), actorID); err != nil {
		return nil, err
	}

	var filter repository.AssemblyFilter
	if req.Status != "" {
		status := models.AssemblyStatus(req.Status)
		filter.Status = &status
	}
	if req.AircraftType != "" {
		aircraftType := models.AircraftType(req.AircraftType)
		filter.AircraftType = &aircraftType
	}

	page, pageSize, limit, offset := paginate(req.Page, req.PageSize)
	processes, total, err := s.store.Assemblies().List(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list assemblies: %w", err)
	}

	return &AssemblyListResponse{
		Assemblies: lo.Map(processes, func(p models.AssemblyProcess, _ int) AssemblyResponse {
			return *toAssemblyResponse(&p)
		}),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// AddParts attaches each part to the assembly independently. Rejected parts are reported
// per id; the batch commits if at least one part was attached and rolls back otherwise.
// Infrastructure failures abort the whole call.
func (s *AssemblyService) AddParts(ctx context.Context, actorID, assemblyID uuid.UUID, partIDs []uuid.UUID) (*AddPartsResult, error) {
	if len(partIDs) == 0 {
		return nil, apperrors.ErrEmptyPartList
	}

	actor, err := requireAssemblyActor(ctx, s.store.Users(), actorID)
	if err != nil {
		return nil, err
	}

	log := logger.WithContext(ctx).WithField("assembly_id", assemblyID)

	var result *AddPartsResult
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		result = &AddPartsResult{Added: []AssemblyPartResponse{}, Errors: []PartError{}}

		process, err := s.lockInProgress(ctx, tx, assemblyID, "add parts to")
		if err != nil {
			return err
		}

		links, err := tx.Assemblies().ListParts(ctx, process.ID)
		if err != nil {
			return fmt.Errorf("failed to list assembly parts: %w", err)
		}
		filled := lo.SliceToMap(links, func(l models.AssemblyPart) (models.PartType, bool) {
			return l.PartType, true
		})

		for _, partID := range partIDs {
			var link *models.AssemblyPart
			err := tx.Transaction(ctx, func(sp repository.Store) error {
				var err error
				link, err = s.attachPart(ctx, sp, process, actor, partID, filled)
				return err
			})
			if err != nil {
				if !apperrors.IsDomain(err) {
					return err
				}
				log.WithFields(map[string]interface{}{"part_id": partID, "reason": err.Error()}).Debug("part rejected")
				result.Errors = append(result.Errors, PartError{
					PartID: partID,
					Code:   apperrors.Code(err),
					Error:  err.Error(),
				})
				continue
			}
			filled[link.PartType] = true
			result.Added = append(result.Added, toAssemblyPartResponse(link))
		}

		if len(result.Added) == 0 {
			return errNothingAttached
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errNothingAttached) {
			return result, nil
		}
		return nil, err
	}

	log.WithField("added", len(result.Added)).Info("parts added to assembly")
	return result, nil
}

// attachPart validates and links one part. The checks run in order: existence,
// aircraft type, prior use, then type already filled.
func (s *AssemblyService) attachPart(ctx context.Context, tx repository.Store, process *models.AssemblyProcess, actor *models.User, partID uuid.UUID, filled map[models.PartType]bool) (*models.AssemblyPart, error) {
	part, err := tx.Parts().GetForUpdate(ctx, partID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartNotFound
		}
		return nil, fmt.Errorf("failed to lock part: %w", err)
	}
	if part.IsRecycled {
		return nil, apperrors.ErrPartNotFound
	}
	if part.AircraftType != process.AircraftType {
		return nil, apperrors.NewIncompatiblePartError(string(part.AircraftType), string(process.AircraftType))
	}
	if part.IsInUse() {
		return nil, apperrors.ErrPartAlreadyUsed
	}
	if filled[part.PartType] {
		return nil, apperrors.NewDuplicatePartTypeError(string(part.PartType))
	}

	link := &models.AssemblyPart{
		AssemblyID: process.ID,
		PartID:     part.ID,
		PartType:   part.PartType,
		AddedByID:  actor.ID,
		AddedAt:    s.clock.Now(),
	}
	if err := tx.Assemblies().AddPart(ctx, link); err != nil {
		switch {
		case errors.Is(err, repository.ErrPartAlreadyLinked):
			return nil, apperrors.ErrPartAlreadyUsed
		case errors.Is(err, repository.ErrPartTypeAlreadyFilled):
			return nil, apperrors.NewDuplicatePartTypeError(string(part.PartType))
		}
		return nil, fmt.Errorf("failed to attach part: %w", err)
	}

	notes := fmt.Sprintf("added %s part", part.PartType)
	if err := s.audit.Record(ctx, tx, process.ID, actor.ID, models.AssemblyActionAddedPart, &part.ID, notes); err != nil {
		return nil, err
	}
	return link, nil
}

// RemovePart detaches a part from an in-progress assembly
func (s *AssemblyService) RemovePart(ctx context.Context, actorID, assemblyID, partID uuid.UUID) (*AssemblyResponse, error) {
	actor, err := requireAssemblyActor(ctx, s.store.Users(), actorID)
	if err != nil {
		return nil, err
	}

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		process, err := s.lockInProgress(ctx, tx, assemblyID, "remove parts from")
		if err != nil {
			return err
		}

		link, err := tx.Assemblies().GetPart(ctx, process.ID, partID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAssemblyPartNotFound
			}
			return fmt.Errorf("failed to get assembly part: %w", err)
		}

		removed, err := tx.Assemblies().RemovePart(ctx, process.ID, partID)
		if err != nil {
			return fmt.Errorf("failed to remove assembly part: %w", err)
		}
		if removed == 0 {
			return apperrors.ErrAssemblyPartNotFound
		}

		notes := fmt.Sprintf("removed %s part", link.PartType)
		return s.audit.Record(ctx, tx, process.ID, actor.ID, models.AssemblyActionRemovedPart, &partID, notes)
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"assembly_id": assemblyID,
		"part_id":     partID,
	}).Info("part removed from assembly")

	return s.reload(ctx, assemblyID)
}

// Complete builds the aircraft once every required part type is attached
func (s *AssemblyService) Complete(ctx context.Context, actorID, assemblyID uuid.UUID) (*AircraftResponse, error) {
	actor, err := requireAssemblyActor(ctx, s.store.Users(), actorID)
	if err != nil {
		return nil, err
	}

	var aircraft *models.Aircraft
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		process, err := s.lockInProgress(ctx, tx, assemblyID, "complete")
		if err != nil {
			return err
		}

		links, err := tx.Assemblies().ListParts(ctx, process.ID)
		if err != nil {
			return fmt.Errorf("failed to list assembly parts: %w", err)
		}

		attached := lo.Map(links, func(l models.AssemblyPart, _ int) models.PartType { return l.PartType })
		if missing := MissingPartTypes(attached); len(missing) > 0 {
			return apperrors.NewIncompleteAssemblyError(lo.Map(missing, func(pt models.PartType, _ int) string {
				return string(pt)
			}))
		}

		now := s.clock.Now()
		aircraft = &models.Aircraft{
			BaseModel:    models.BaseModel{ID: uuid.New()},
			AircraftType: process.AircraftType,
			AssembledAt:  now,
		}
		if err := tx.Aircraft().Create(ctx, aircraft); err != nil {
			return fmt.Errorf("failed to create aircraft: %w", err)
		}

		partIDs := lo.Map(links, func(l models.AssemblyPart, _ int) uuid.UUID { return l.PartID })
		marked, err := tx.Parts().MarkUsedInAircraft(ctx, partIDs, aircraft.ID)
		if err != nil {
			return fmt.Errorf("failed to mark parts used: %w", err)
		}
		if marked != int64(len(partIDs)) {
			return apperrors.ErrPartAlreadyUsed
		}

		process.Status = models.AssemblyStatusCompleted
		process.CompletedByID = &actor.ID
		process.CompletionDate = &now
		process.AircraftID = &aircraft.ID
		if err := s.transition(ctx, tx, process, "complete"); err != nil {
			return err
		}

		notes := fmt.Sprintf("aircraft %s assembled", aircraft.ID)
		if err := s.audit.Record(ctx, tx, process.ID, actor.ID, models.AssemblyActionCompleted, nil, notes); err != nil {
			return err
		}

		aircraft.Parts = lo.Map(links, func(l models.AssemblyPart, _ int) models.Part {
			var part models.Part
			if l.Part != nil {
				part = *l.Part
			} else {
				part = models.Part{BaseModel: models.BaseModel{ID: l.PartID}, PartType: l.PartType, AircraftType: process.AircraftType}
			}
			part.UsedInAircraftID = &aircraft.ID
			part.IsInAssembly = true
			return part
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"assembly_id": assemblyID,
		"aircraft_id": aircraft.ID,
	}).Info("assembly completed")

	return toAircraftResponse(aircraft), nil
}

// Cancel releases every attached part and closes the assembly
func (s *AssemblyService) Cancel(ctx context.Context, actorID, assemblyID uuid.UUID, reason string) (*AssemblyResponse, error) {
	actor, err := requireAssemblyActor(ctx, s.store.Users(), actorID)
	if err != nil {
		return nil, err
	}

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		process, err := s.lockInProgress(ctx, tx, assemblyID, "cancel")
		if err != nil {
			return err
		}

		links, err := tx.Assemblies().ListParts(ctx, process.ID)
		if err != nil {
			return fmt.Errorf("failed to list assembly parts: %w", err)
		}
		for _, link := range links {
			partID := link.PartID
			notes := fmt.Sprintf("removed %s part (assembly cancelled)", link.PartType)
			if err := s.audit.Record(ctx, tx, process.ID, actor.ID, models.AssemblyActionRemovedPart, &partID, notes); err != nil {
				return err
			}
		}
		if _, err := tx.Assemblies().RemoveAllParts(ctx, process.ID); err != nil {
			return fmt.Errorf("failed to release assembly parts: %w", err)
		}

		now := s.clock.Now()
		process.Status = models.AssemblyStatusCancelled
		process.CompletedByID = &actor.ID
		process.CompletionDate = &now
		if err := s.transition(ctx, tx, process, "cancel"); err != nil {
			return err
		}

		notes := reason
		if notes == "" {
			notes = "assembly cancelled"
		}
		return s.audit.Record(ctx, tx, process.ID, actor.ID, models.AssemblyActionCancelled, nil, notes)
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("assembly_id", assemblyID).Info("assembly cancelled")

	return s.reload(ctx, assemblyID)
}

// lockInProgress loads the assembly with a row lock and requires it to be in progress
func (s *AssemblyService) lockInProgress(ctx context.Context, tx repository.Store, assemblyID uuid.UUID, action string) (*models.AssemblyProcess, error) {
	process, err := tx.Assemblies().GetForUpdate(ctx, assemblyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssemblyNotFound
		}
		return nil, fmt.Errorf("failed to lock assembly: %w", err)
	}
	if process.Status != models.AssemblyStatusInProgress {
		return nil, apperrors.NewInvalidStateError(string(process.Status), action)
	}
	return process, nil
}

// transition persists a terminal status change guarded on the row still being in progress
func (s *AssemblyService) transition(ctx context.Context, tx repository.Store, process *models.AssemblyProcess, action string) error {
	if !models.AssemblyStatusInProgress.CanTransitionTo(process.Status) {
		return apperrors.NewInvalidStateError(string(models.AssemblyStatusInProgress), action)
	}
	if err := tx.Assemblies().Transition(ctx, process, models.AssemblyStatusInProgress); err != nil {
		if errors.Is(err, repository.ErrStaleState) {
			return apperrors.NewInvalidStateError("no longer in progress", action)
		}
		return fmt.Errorf("failed to update assembly status: %w", err)
	}
	return nil
}

func (s *AssemblyService) reload(ctx context.Context, assemblyID uuid.UUID) (*AssemblyResponse, error) {
	process, err := s.store.Assemblies().GetByID(ctx, assemblyID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload assembly: %w", err)
	}
	return toAssemblyResponse(process), nil
}
