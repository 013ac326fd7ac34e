package service_test

import (
	"context"
	"testing"
	"time"

	"aircraft-factory-backend/internal/database/models"
	apperrors "aircraft-factory-backend/internal/errors"
	"aircraft-factory-backend/internal/repository"
	"aircraft-factory-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PartServiceTestSuite defines the test suite for PartService
type PartServiceTestSuite struct {
	suite.Suite
	m        *engineMocks
	clock    fixedClock
	wingUser *models.User
	asmUser  *models.User
	service  *service.PartService
}

func (suite *PartServiceTestSuite) SetupTest() {
	suite.m = newEngineMocks(suite.T())
	suite.clock = fixedClock{now: time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)}
	suite.wingUser = newTeamUser(models.TeamTypeWing)
	suite.asmUser = newTeamUser(models.TeamTypeAssembly)

	suite.m.users.EXPECT().GetWithTeam(gomock.Any(), suite.wingUser.ID).Return(suite.wingUser, nil).AnyTimes()
	suite.m.users.EXPECT().GetWithTeam(gomock.Any(), suite.asmUser.ID).Return(suite.asmUser, nil).AnyTimes()

	suite.service = service.NewPartService(suite.m.store, suite.clock, service.NewValidator())
}

func (suite *PartServiceTestSuite) TearDownTest() {
	suite.m.ctrl.Finish()
}

func (suite *PartServiceTestSuite) ownedPart(partType models.PartType) *models.Part {
	part := newPart(partType, models.AircraftTypeTB2)
	part.TeamID = suite.wingUser.Team.ID
	return part
}

func (suite *PartServiceTestSuite) TestCreatePart() {
	suite.m.parts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *models.Part) error {
			p.ID = uuid.New()
			return nil
		})

	resp, err := suite.service.CreatePart(context.Background(), suite.wingUser.ID, &service.CreatePartRequest{
		PartType: "wing", AircraftType: "KIZILELMA",
	})

	suite.Require().NoError(err)
	suite.Equal(models.PartTypeWing, resp.PartType)
	suite.Equal(models.AircraftTypeKizilelma, resp.AircraftType)
	suite.Equal(suite.wingUser.Team.ID, resp.TeamID)
	suite.Equal(&suite.wingUser.ID, resp.CreatorID)
	suite.False(resp.IsRecycled)
	suite.False(resp.IsInUse)
	suite.Nil(resp.UsedInAircraftID)
}

func (suite *PartServiceTestSuite) TestCreatePart_TeamCapability() {
	testCases := []struct {
		name     string
		actor    *models.User
		partType string
	}{
		{"wing team cannot make body", suite.wingUser, "body"},
		{"assembly team cannot make wing", suite.asmUser, "wing"},
		{"assembly team cannot make avionics", suite.asmUser, "avionics"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.service.CreatePart(context.Background(), tc.actor.ID, &service.CreatePartRequest{
				PartType: tc.partType, AircraftType: "TB2",
			})
			suite.ErrorIs(err, apperrors.ErrCannotProducePart)
		})
	}
}

func (suite *PartServiceTestSuite) TestCreatePart_Validation() {
	_, err := suite.service.CreatePart(context.Background(), suite.wingUser.ID, &service.CreatePartRequest{
		PartType: "propeller", AircraftType: "TB2",
	})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.service.CreatePart(context.Background(), suite.wingUser.ID, &service.CreatePartRequest{
		PartType: "wing", AircraftType: "F16",
	})
	suite.True(apperrors.IsValidation(err))
}

func (suite *PartServiceTestSuite) TestCreatePart_UnknownUser() {
	ghost := uuid.New()
	suite.m.users.EXPECT().GetWithTeam(gomock.Any(), ghost).Return(nil, errRecordNotFound)

	_, err := suite.service.CreatePart(context.Background(), ghost, &service.CreatePartRequest{PartType: "wing", AircraftType: "TB2"})

	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *PartServiceTestSuite) TestRecyclePart() {
	part := suite.ownedPart(models.PartTypeWing)
	suite.m.parts.EXPECT().GetForUpdate(gomock.Any(), part.ID).Return(part, nil)
	suite.m.parts.EXPECT().MarkRecycled(gomock.Any(), part.ID, suite.wingUser.ID, suite.clock.now).Return(nil)

	resp, err := suite.service.RecyclePart(context.Background(), suite.wingUser.ID, part.ID)

	suite.Require().NoError(err)
	suite.True(resp.IsRecycled)
	suite.Equal(suite.clock.now, *resp.RecycledAt)
	suite.Equal(&suite.wingUser.ID, resp.RecycledByID)
}

func (suite *PartServiceTestSuite) TestRecyclePart_AlreadyRecycledIsNoop() {
	part := suite.ownedPart(models.PartTypeWing)
	part.IsRecycled = true

	suite.m.parts.EXPECT().GetForUpdate(gomock.Any(), part.ID).Return(part, nil)

	resp, err := suite.service.RecyclePart(context.Background(), suite.wingUser.ID, part.ID)

	suite.Require().NoError(err)
	suite.True(resp.IsRecycled)
	suite.Nil(resp.RecycledAt)
}

func (suite *PartServiceTestSuite) TestRecyclePart_InUse() {
	linked := suite.ownedPart(models.PartTypeWing)
	linked.IsInAssembly = true
	built := suite.ownedPart(models.PartTypeWing)
	aircraftID := uuid.New()
	built.UsedInAircraftID = &aircraftID

	for _, part := range []*models.Part{linked, built} {
		suite.m.parts.EXPECT().GetForUpdate(gomock.Any(), part.ID).Return(part, nil)

		_, err := suite.service.RecyclePart(context.Background(), suite.wingUser.ID, part.ID)

		suite.ErrorIs(err, apperrors.ErrPartInUse)
		suite.False(part.IsRecycled)
	}
}

// A link committed while RecyclePart waited on the row lock is caught by the guarded update
func (suite *PartServiceTestSuite) TestRecyclePart_LinkedWhileLocked() {
	part := suite.ownedPart(models.PartTypeWing)
	suite.m.parts.EXPECT().GetForUpdate(gomock.Any(), part.ID).Return(part, nil)
	suite.m.parts.EXPECT().MarkRecycled(gomock.Any(), part.ID, suite.wingUser.ID, suite.clock.now).Return(repository.ErrStaleState)

	resp, err := suite.service.RecyclePart(context.Background(), suite.wingUser.ID, part.ID)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrPartInUse)
	suite.True(apperrors.IsConflict(err))
	suite.False(part.IsRecycled)
}

func (suite *PartServiceTestSuite) TestRecyclePart_OnlyOwningTeam() {
	foreign := newPart(models.PartTypeBody, models.AircraftTypeTB2)
	suite.m.parts.EXPECT().GetForUpdate(gomock.Any(), foreign.ID).Return(foreign, nil).Times(2)

	_, err := suite.service.RecyclePart(context.Background(), suite.wingUser.ID, foreign.ID)
	suite.ErrorIs(err, apperrors.ErrNotPartOwner)

	_, err = suite.service.RecyclePart(context.Background(), suite.asmUser.ID, foreign.ID)
	suite.ErrorIs(err, apperrors.ErrNotPartOwner)
}

func (suite *PartServiceTestSuite) TestRecyclePart_NotFound() {
	id := uuid.New()
	suite.m.parts.EXPECT().GetForUpdate(gomock.Any(), id).Return(nil, errRecordNotFound)

	_, err := suite.service.RecyclePart(context.Background(), suite.wingUser.ID, id)

	suite.ErrorIs(err, apperrors.ErrPartNotFound)
}

func (suite *PartServiceTestSuite) TestGetPart_TeamScoping() {
	own := suite.ownedPart(models.PartTypeWing)
	foreign := newPart(models.PartTypeTail, models.AircraftTypeTB2)
	foreign.IsInAssembly = true

	suite.m.parts.EXPECT().GetByID(gomock.Any(), own.ID).Return(own, nil)
	suite.m.parts.EXPECT().GetByID(gomock.Any(), foreign.ID).Return(foreign, nil).Times(2)

	_, err := suite.service.GetPart(context.Background(), suite.wingUser.ID, own.ID)
	suite.NoError(err)

	_, err = suite.service.GetPart(context.Background(), suite.wingUser.ID, foreign.ID)
	suite.ErrorIs(err, apperrors.ErrPartNotFound)

	resp, err := suite.service.GetPart(context.Background(), suite.asmUser.ID, foreign.ID)
	suite.Require().NoError(err)
	suite.True(resp.IsInAssembly)
	suite.True(resp.IsInUse)
}

func (suite *PartServiceTestSuite) TestListParts_ScopesProducingTeams() {
	recycled := true
	suite.m.parts.EXPECT().List(gomock.Any(), gomock.Any(), 20, 0).DoAndReturn(
		func(_ context.Context, filter repository.PartFilter, _, _ int) ([]models.Part, int64, error) {
			suite.Require().NotNil(filter.TeamID)
			suite.Equal(suite.wingUser.Team.ID, *filter.TeamID)
			suite.Equal(models.AircraftTypeTB3, *filter.AircraftType)
			suite.Equal(&recycled, filter.Recycled)
			return []models.Part{*suite.ownedPart(models.PartTypeWing)}, 1, nil
		})

	resp, err := suite.service.ListParts(context.Background(), suite.wingUser.ID, &service.ListPartsRequest{
		AircraftType: "TB3", Recycled: &recycled,
	})

	suite.Require().NoError(err)
	suite.Len(resp.Parts, 1)
	suite.Equal(1, resp.Page)
	suite.Equal(20, resp.PageSize)
}

func (suite *PartServiceTestSuite) TestListParts_AssemblySeesAll() {
	suite.m.parts.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter repository.PartFilter, _, _ int) ([]models.Part, int64, error) {
			suite.Nil(filter.TeamID)
			return nil, 0, nil
		})

	resp, err := suite.service.ListParts(context.Background(), suite.asmUser.ID, &service.ListPartsRequest{})

	suite.Require().NoError(err)
	suite.Empty(resp.Parts)
}

func (suite *PartServiceTestSuite) TestAvailableSummary() {
	suite.m.parts.EXPECT().CountAvailableByType(gomock.Any(), models.AircraftTypeAkinci).Return(
		map[models.PartType]int64{models.PartTypeTail: 2, models.PartTypeWing: 5}, nil)

	resp, err := suite.service.AvailableSummary(context.Background(), suite.asmUser.ID, "AKINCI")

	suite.Require().NoError(err)
	suite.Equal(int64(7), resp.Total)
	suite.Equal([]service.PartTypeCount{
		{PartType: models.PartTypeWing, Count: 5},
		{PartType: models.PartTypeBody, Count: 0},
		{PartType: models.PartTypeTail, Count: 2},
		{PartType: models.PartTypeAvionics, Count: 0},
	}, resp.Parts)
}

func (suite *PartServiceTestSuite) TestListAvailable() {
	wing := newPart(models.PartTypeWing, models.AircraftTypeTB2)
	suite.m.parts.EXPECT().ListAvailable(gomock.Any(), models.AircraftTypeTB2, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.AircraftType, pt *models.PartType) ([]models.Part, error) {
			suite.Require().NotNil(pt)
			suite.Equal(models.PartTypeWing, *pt)
			return []models.Part{*wing}, nil
		})

	parts, err := suite.service.ListAvailable(context.Background(), suite.asmUser.ID, "TB2", "wing")

	suite.Require().NoError(err)
	suite.Require().Len(parts, 1)
	suite.Equal(wing.ID, parts[0].ID)
}

func (suite *PartServiceTestSuite) TestListAvailable_Rules() {
	_, err := suite.service.ListAvailable(context.Background(), suite.wingUser.ID, "TB2", "")
	suite.True(apperrors.IsPermission(err))

	_, err = suite.service.ListAvailable(context.Background(), suite.asmUser.ID, "tb2", "")
	suite.True(apperrors.IsValidation(err))

	_, err = suite.service.ListAvailable(context.Background(), suite.asmUser.ID, "TB2", "engine")
	suite.True(apperrors.IsValidation(err))
}

func TestPartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartServiceTestSuite))
}
