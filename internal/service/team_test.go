package service_test

import (
	"context"
	"testing"

	"aircraft-factory-backend/internal/database/models"
	apperrors "aircraft-factory-backend/internal/errors"
	"aircraft-factory-backend/internal/mocks"
	"aircraft-factory-backend/internal/repository"
	"aircraft-factory-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockTeamRepo *mocks.MockTeamRepositoryInterface
	teamService  *service.TeamService
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.teamService = service.NewTeamService(suite.mockTeamRepo, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) TestCreateTeam() {
	suite.mockTeamRepo.EXPECT().GetByName(gomock.Any(), "wing-1").Return(nil, errRecordNotFound)
	suite.mockTeamRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, team *models.Team) error {
			team.ID = uuid.New()
			return nil
		})

	resp, err := suite.teamService.CreateTeam(context.Background(), &service.CreateTeamRequest{
		Name: "wing-1", Title: "Wing Team", TeamType: "wing",
	})

	suite.Require().NoError(err)
	suite.Equal(models.TeamTypeWing, resp.TeamType)
	suite.Require().NotNil(resp.PartType)
	suite.Equal(models.PartTypeWing, *resp.PartType)
}

func (suite *TeamServiceTestSuite) TestCreateTeam_AssemblyHasNoPartType() {
	suite.mockTeamRepo.EXPECT().GetByName(gomock.Any(), "final-line").Return(nil, errRecordNotFound)
	suite.mockTeamRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := suite.teamService.CreateTeam(context.Background(), &service.CreateTeamRequest{
		Name: "final-line", TeamType: "assembly",
	})

	suite.Require().NoError(err)
	suite.Nil(resp.PartType)
}

func (suite *TeamServiceTestSuite) TestCreateTeamValidation() {
	testCases := []struct {
		name    string
		request *service.CreateTeamRequest
		field   string
	}{
		{"Empty name", &service.CreateTeamRequest{TeamType: "wing"}, "name"},
		{"Missing type", &service.CreateTeamRequest{Name: "x"}, "team_type"},
		{"Unknown type", &service.CreateTeamRequest{Name: "x", TeamType: "engine"}, "team_type"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.teamService.CreateTeam(context.Background(), tc.request)
			var validationErr *apperrors.ValidationError
			suite.Require().ErrorAs(err, &validationErr)
			suite.Equal(tc.field, validationErr.Field)
		})
	}
}

func (suite *TeamServiceTestSuite) TestCreateTeam_Duplicate() {
	suite.mockTeamRepo.EXPECT().GetByName(gomock.Any(), "tail-1").Return(&models.Team{Name: "tail-1"}, nil)

	_, err := suite.teamService.CreateTeam(context.Background(), &service.CreateTeamRequest{Name: "tail-1", TeamType: "tail"})
	suite.ErrorIs(err, apperrors.ErrTeamExists)

	suite.mockTeamRepo.EXPECT().GetByName(gomock.Any(), "tail-2").Return(nil, errRecordNotFound)
	suite.mockTeamRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicateKey)

	_, err = suite.teamService.CreateTeam(context.Background(), &service.CreateTeamRequest{Name: "tail-2", TeamType: "tail"})
	suite.ErrorIs(err, apperrors.ErrTeamExists)
}

func (suite *TeamServiceTestSuite) TestGetTeam_NotFound() {
	id := uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, errRecordNotFound)

	_, err := suite.teamService.GetTeam(context.Background(), id)

	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func (suite *TeamServiceTestSuite) TestListTeams() {
	suite.mockTeamRepo.EXPECT().GetAll(gomock.Any()).Return([]models.Team{
		{Name: "avionics-1", TeamType: models.TeamTypeAvionics},
		{Name: "body-1", TeamType: models.TeamTypeBody},
	}, nil)

	teams, err := suite.teamService.ListTeams(context.Background())

	suite.Require().NoError(err)
	suite.Len(teams, 2)
	suite.Equal("avionics-1", teams[0].Name)
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
