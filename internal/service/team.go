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

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Title       string `json:"title" validate:"max=200"`
	Description string `json:"description" validate:"max=500"`
	TeamType    string `json:"team_type" validate:"required,oneof=wing body tail avionics assembly"`
}

// CreateTeam creates a new team
func (s *TeamService) CreateTeam(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing team by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTeamExists
	}

	team := &models.Team{
		Name:        req.Name,
		Title:       req.Title,
		Description: req.Description,
		TeamType:    models.TeamType(req.TeamType),
	}
	if err := s.repo.Create(ctx, team); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return toTeamResponse(team), nil
}

// GetTeam retrieves a team by ID
func (s *TeamService) GetTeam(ctx context.Context, id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return toTeamResponse(team), nil
}

// ListTeams retrieves every team ordered by name
func (s *TeamService) ListTeams(ctx context.Context) ([]TeamResponse, error) {
	teams, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return lo.Map(teams, func(t models.Team, _ int) TeamResponse {
		return *toTeamResponse(&t)
	}), nil
}
