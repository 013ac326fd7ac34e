package service

import (
	"context"
	"errors"
	"fmt"

	"aircraft-factory-backend/internal/database/models"
	apperrors "aircraft-factory-backend/internal/errors"
	"aircraft-factory-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// resolveActor loads the acting user with their team. Users without a team may not act.
func resolveActor(ctx context.Context, users repository.UserRepositoryInterface, actorID uuid.UUID) (*models.User, error) {
	user, err := users.GetWithTeam(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load acting user: %w", err)
	}
	if user.TeamID == nil || user.Team == nil {
		return nil, apperrors.ErrUserNotAssignedToTeam
	}
	return user, nil
}

// requireAssemblyActor resolves the actor and requires membership in an assembly team
func requireAssemblyActor(ctx context.Context, users repository.UserRepositoryInterface, actorID uuid.UUID) (*models.User, error) {
	user, err := resolveActor(ctx, users, actorID)
	if err != nil {
		return nil, err
	}
	if !user.Team.IsAssembly() {
		return nil, apperrors.ErrAssemblyTeamRequired
	}
	return user, nil
}
