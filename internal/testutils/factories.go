package testutils

import (
	"time"

	"aircraft-factory-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test assembly Team with default values
func (f *TeamFactory) Create() *models.Team {
	return f.WithType(models.TeamTypeAssembly)
}

// WithType creates a team of the given type with a unique name
func (f *TeamFactory) WithType(teamType models.TeamType) *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        string(teamType) + "-" + id.String()[:8],
		Title:       "Test " + string(teamType) + " team",
		Description: "A test team for testing purposes",
		TeamType:    teamType,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User without a team
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	username := "user-" + id.String()[:8]
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:  username,
		Email:     username + "@factory.test",
		FirstName: "John",
		LastName:  "Doe",
	}
}

// WithTeam creates a user belonging to the team
func (f *UserFactory) WithTeam(team *models.Team) *models.User {
	user := f.Create()
	user.TeamID = &team.ID
	user.Team = team
	return user
}

// PartFactory provides methods to create test Part data
type PartFactory struct{}

// NewPartFactory creates a new PartFactory
func NewPartFactory() *PartFactory {
	return &PartFactory{}
}

// Create creates an available part produced by the given team and user
func (f *PartFactory) Create(team *models.Team, creator *models.User, aircraftType models.AircraftType) *models.Part {
	partType, _ := team.TeamType.ProducedPartType()
	return &models.Part{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PartType:     partType,
		AircraftType: aircraftType,
		TeamID:       team.ID,
		CreatorID:    &creator.ID,
	}
}

// Recycled creates a part that has already been recycled
func (f *PartFactory) Recycled(team *models.Team, creator *models.User, aircraftType models.AircraftType) *models.Part {
	part := f.Create(team, creator, aircraftType)
	now := time.Now()
	part.IsRecycled = true
	part.RecycledAt = &now
	part.RecycledByID = &creator.ID
	return part
}

// AssemblyFactory provides methods to create test AssemblyProcess data
type AssemblyFactory struct{}

// NewAssemblyFactory creates a new AssemblyFactory
func NewAssemblyFactory() *AssemblyFactory {
	return &AssemblyFactory{}
}

// Create creates an in-progress assembly started by the user
func (f *AssemblyFactory) Create(startedBy *models.User, aircraftType models.AircraftType) *models.AssemblyProcess {
	return &models.AssemblyProcess{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AircraftType: aircraftType,
		Status:       models.AssemblyStatusInProgress,
		StartedByID:  startedBy.ID,
		StartDate:    time.Now(),
	}
}

// Link creates the join row attaching part to the assembly
func (f *AssemblyFactory) Link(process *models.AssemblyProcess, part *models.Part, addedBy *models.User) *models.AssemblyPart {
	return &models.AssemblyPart{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		AssemblyID: process.ID,
		PartID:     part.ID,
		PartType:   part.PartType,
		AddedByID:  addedBy.ID,
		AddedAt:    time.Now(),
	}
}

// FactorySet contains all factories for easy access
type FactorySet struct {
	Team     *TeamFactory
	User     *UserFactory
	Part     *PartFactory
	Assembly *AssemblyFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:     NewTeamFactory(),
		User:     NewUserFactory(),
		Part:     NewPartFactory(),
		Assembly: NewAssemblyFactory(),
	}
}

// Floor is one team per team type with one member each
type Floor struct {
	Teams map[models.TeamType]*models.Team
	Users map[models.TeamType]*models.User
}

// CreateFloor builds, without persisting, a team and a member for every team type
func (fs *FactorySet) CreateFloor() *Floor {
	floor := &Floor{
		Teams: make(map[models.TeamType]*models.Team),
		Users: make(map[models.TeamType]*models.User),
	}
	for _, teamType := range []models.TeamType{
		models.TeamTypeWing, models.TeamTypeBody, models.TeamTypeTail,
		models.TeamTypeAvionics, models.TeamTypeAssembly,
	} {
		team := fs.Team.WithType(teamType)
		user := fs.User.WithTeam(team)
		user.Team = nil
		floor.Teams[teamType] = team
		floor.Users[teamType] = user
	}
	return floor
}

// PartsFor builds one available part of each required type for the aircraft type
func (fs *FactorySet) PartsFor(floor *Floor, aircraftType models.AircraftType) []*models.Part {
	parts := make([]*models.Part, 0, len(models.RequiredPartTypes))
	for _, partType := range models.RequiredPartTypes {
		teamType := models.TeamType(partType)
		parts = append(parts, fs.Part.Create(floor.Teams[teamType], floor.Users[teamType], aircraftType))
	}
	return parts
}
