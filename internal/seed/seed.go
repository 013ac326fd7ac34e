package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	apperrors "aircraft-factory-backend/internal/errors"
	"aircraft-factory-backend/internal/logger"
	"aircraft-factory-backend/internal/repository"
	"aircraft-factory-backend/internal/service"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// File is the layout of a seed YAML file
type File struct {
	Teams []TeamData `yaml:"teams"`
	Parts []PartData `yaml:"parts,omitempty"`
}

// TeamData describes a team and its members
type TeamData struct {
	Name        string     `yaml:"name"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	TeamType    string     `yaml:"team_type"`
	Users       []UserData `yaml:"users,omitempty"`
}

// UserData describes a user
type UserData struct {
	Username  string `yaml:"username"`
	Email     string `yaml:"email"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

// PartData asks for Count parts produced by Creator
type PartData struct {
	Creator      string `yaml:"creator"`
	PartType     string `yaml:"part_type"`
	AircraftType string `yaml:"aircraft_type"`
	Count        int    `yaml:"count"`
}

// Summary reports what a seed run did
type Summary struct {
	TeamsCreated  int
	TeamsExisting int
	UsersCreated  int
	UsersExisting int
	PartsCreated  int
}

// Load reads and parses a seed file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes seed YAML
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	for i, p := range file.Parts {
		if p.Count == 0 {
			file.Parts[i].Count = 1
		}
		if p.Count < 0 {
			return nil, fmt.Errorf("parts[%d]: count must not be negative", i)
		}
	}
	return &file, nil
}

// Seeder applies seed files through the directory and part services
type Seeder struct {
	teams    service.TeamServiceInterface
	users    service.UserServiceInterface
	parts    service.PartServiceInterface
	teamRepo repository.TeamRepositoryInterface
	userRepo repository.UserRepositoryInterface
}

// NewSeeder creates a new seeder
func NewSeeder(
	teams service.TeamServiceInterface,
	users service.UserServiceInterface,
	parts service.PartServiceInterface,
	teamRepo repository.TeamRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
) *Seeder {
	return &Seeder{teams: teams, users: users, parts: parts, teamRepo: teamRepo, userRepo: userRepo}
}

// Apply creates missing teams and users and then produces the requested parts.
// Teams and users are matched by name so reruns are idempotent; parts are produced on every run.
func (s *Seeder) Apply(ctx context.Context, file *File) (*Summary, error) {
	log := logger.WithContext(ctx)
	summary := &Summary{}
	usernames := make(map[string]uuid.UUID)

	for _, td := range file.Teams {
		teamID, created, err := s.ensureTeam(ctx, td)
		if err != nil {
			return summary, fmt.Errorf("team %s: %w", td.Name, err)
		}
		if created {
			summary.TeamsCreated++
		} else {
			summary.TeamsExisting++
		}

		for _, ud := range td.Users {
			userID, created, err := s.ensureUser(ctx, ud, teamID)
			if err != nil {
				return summary, fmt.Errorf("user %s: %w", ud.Username, err)
			}
			if created {
				summary.UsersCreated++
			} else {
				summary.UsersExisting++
			}
			usernames[ud.Username] = userID
		}
	}

	for _, pd := range file.Parts {
		creatorID, ok := usernames[pd.Creator]
		if !ok {
			user, err := s.userRepo.GetByUsername(ctx, pd.Creator)
			if err != nil {
				return summary, fmt.Errorf("part creator %s: %w", pd.Creator, err)
			}
			creatorID = user.ID
		}
		for i := 0; i < pd.Count; i++ {
			_, err := s.parts.CreatePart(ctx, creatorID, &service.CreatePartRequest{
				PartType:     pd.PartType,
				AircraftType: pd.AircraftType,
			})
			if err != nil {
				return summary, fmt.Errorf("part %s/%s by %s: %w", pd.AircraftType, pd.PartType, pd.Creator, err)
			}
			summary.PartsCreated++
		}
	}

	log.WithFields(map[string]interface{}{
		"teams_created": summary.TeamsCreated,
		"users_created": summary.UsersCreated,
		"parts_created": summary.PartsCreated,
	}).Info("Seed applied")
	return summary, nil
}

func (s *Seeder) ensureTeam(ctx context.Context, td TeamData) (uuid.UUID, bool, error) {
	team, err := s.teams.CreateTeam(ctx, &service.CreateTeamRequest{
		Name:        td.Name,
		Title:       td.Title,
		Description: td.Description,
		TeamType:    td.TeamType,
	})
	if err == nil {
		return team.ID, true, nil
	}
	if !errors.Is(err, apperrors.ErrTeamExists) {
		return uuid.Nil, false, err
	}

	existing, err := s.teamRepo.GetByName(ctx, td.Name)
	if err != nil {
		return uuid.Nil, false, err
	}
	if string(existing.TeamType) != td.TeamType {
		return uuid.Nil, false, fmt.Errorf("exists with team type %s, seed wants %s", existing.TeamType, td.TeamType)
	}
	return existing.ID, false, nil
}

func (s *Seeder) ensureUser(ctx context.Context, ud UserData, teamID uuid.UUID) (uuid.UUID, bool, error) {
	user, err := s.users.CreateUser(ctx, &service.CreateUserRequest{
		Username:  ud.Username,
		Email:     ud.Email,
		FirstName: ud.FirstName,
		LastName:  ud.LastName,
		TeamID:    &teamID,
	})
	if err == nil {
		return user.ID, true, nil
	}
	if !errors.Is(err, apperrors.ErrUserExists) {
		return uuid.Nil, false, err
	}

	existing, err := s.userRepo.GetByUsername(ctx, ud.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, false, apperrors.ErrUserNotFound
		}
		return uuid.Nil, false, err
	}
	if existing.TeamID == nil || *existing.TeamID != teamID {
		if _, err := s.users.AssignTeam(ctx, existing.ID, &teamID); err != nil {
			return uuid.Nil, false, err
		}
	}
	return existing.ID, false, nil
}
