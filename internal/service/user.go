package service

import (
	"context"
	"errors"
	"fmt"

	"aircraft-factory-backend/internal/database/models"
	apperrors "aircraft-factory-backend/internal/errors"
	"aircraft-factory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Username  string     `json:"username" validate:"required,min=1,max=150"`
	Email     string     `json:"email" validate:"omitempty,email"`
	FirstName string     `json:"first_name" validate:"max=100"`
	LastName  string     `json:"last_name" validate:"max=100"`
	TeamID    *uuid.UUID `json:"team_id,omitempty"`
}

// AssignTeamRequest sets or clears a user's team
type AssignTeamRequest struct {
	TeamID *uuid.UUID `json:"team_id"`
}

// CreateUser creates a new user, optionally assigned to a team
func (s *UserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	var team *models.Team
	if req.TeamID != nil {
		if team, err = s.loadTeam(ctx, *req.TeamID); err != nil {
			return nil, err
		}
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		TeamID:    req.TeamID,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.Team = team

	return toUserResponse(user), nil
}

// GetUser retrieves a user with their team
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetWithTeam(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toUserResponse(user), nil
}

// ListUsers retrieves users with pagination
func (s *UserService) ListUsers(ctx context.Context, page, pageSize int) (*UserListResponse, error) {
	page, pageSize, limit, offset := paginate(page, pageSize)
	users, total, err := s.repo.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return &UserListResponse{
		Users: lo.Map(users, func(u models.User, _ int) UserResponse {
			return *toUserResponse(&u)
		}),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// AssignTeam moves a user to a team, or removes them from their team when teamID is nil
func (s *UserService) AssignTeam(ctx context.Context, id uuid.UUID, teamID *uuid.UUID) (*UserResponse, error) {
	if teamID != nil {
		if _, err := s.loadTeam(ctx, *teamID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateTeam(ctx, id, teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to assign team: %w", err)
	}

	return s.GetUser(ctx, id)
}

func (s *UserService) loadTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}
