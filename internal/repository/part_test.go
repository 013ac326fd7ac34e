//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"aircraft-factory-backend/internal/database/models"
	"aircraft-factory-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PartRepositoryTestSuite tests the PartRepository
type PartRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PartRepository
	assemblies    *AssemblyRepository
	factories     *testutils.FactorySet
	floor         *testutils.Floor
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *PartRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewPartRepository(suite.baseTestSuite.DB)
	suite.assemblies = NewAssemblyRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *PartRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PartRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.floor = suite.factories.CreateFloor()
	persistFloor(suite.T(), suite.baseTestSuite.DB, suite.floor)
}

// TearDownTest runs after each test
func (suite *PartRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PartRepositoryTestSuite) newPart(teamType models.TeamType, aircraftType models.AircraftType) *models.Part {
	return suite.factories.Part.Create(suite.floor.Teams[teamType], suite.floor.Users[teamType], aircraftType)
}

// link attaches part to a fresh assembly of its aircraft type
func (suite *PartRepositoryTestSuite) link(part *models.Part) *models.AssemblyProcess {
	assembler := suite.floor.Users[models.TeamTypeAssembly]
	process := suite.factories.Assembly.Create(assembler, part.AircraftType)
	suite.Require().NoError(suite.assemblies.Create(suite.ctx, process))
	suite.Require().NoError(suite.assemblies.AddPart(suite.ctx, suite.factories.Assembly.Link(process, part, assembler)))
	return process
}

// TestCreateAndGet tests creating a part and reading it back
func (suite *PartRepositoryTestSuite) TestCreateAndGet() {
	part := suite.newPart(models.TeamTypeWing, models.AircraftTypeTB2)
	suite.Require().NoError(suite.repo.Create(suite.ctx, part))

	retrieved, err := suite.repo.GetByID(suite.ctx, part.ID)

	suite.NoError(err)
	suite.Equal(models.PartTypeWing, retrieved.PartType)
	suite.Equal(models.AircraftTypeTB2, retrieved.AircraftType)
	suite.Equal(part.TeamID, retrieved.TeamID)
	suite.False(retrieved.IsRecycled)
	suite.False(retrieved.IsInAssembly)
	suite.True(retrieved.IsAvailable())
}

// TestGetByIDNotFound tests retrieving a non-existent part
func (suite *PartRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestIsInAssemblyFollowsLinks tests that the derived flag tracks assembly_parts
func (suite *PartRepositoryTestSuite) TestIsInAssemblyFollowsLinks() {
	part := suite.newPart(models.TeamTypeBody, models.AircraftTypeTB3)
	persistParts(suite.T(), suite.baseTestSuite.DB, part)

	process := suite.link(part)

	linked, err := suite.repo.GetByID(suite.ctx, part.ID)
	suite.Require().NoError(err)
	suite.True(linked.IsInAssembly)
	suite.True(linked.IsInUse())

	locked, err := suite.repo.GetForUpdate(suite.ctx, part.ID)
	suite.Require().NoError(err)
	suite.True(locked.IsInAssembly)

	removed, err := suite.assemblies.RemovePart(suite.ctx, process.ID, part.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)

	released, err := suite.repo.GetByID(suite.ctx, part.ID)
	suite.Require().NoError(err)
	suite.False(released.IsInAssembly)
	suite.True(released.IsAvailable())
}

// TestListFilters tests the team, type and recycled filters
func (suite *PartRepositoryTestSuite) TestListFilters() {
	wing := suite.newPart(models.TeamTypeWing, models.AircraftTypeTB2)
	tail := suite.newPart(models.TeamTypeTail, models.AircraftTypeTB2)
	recycled := suite.factories.Part.Recycled(suite.floor.Teams[models.TeamTypeWing], suite.floor.Users[models.TeamTypeWing], models.AircraftTypeAkinci)
	persistParts(suite.T(), suite.baseTestSuite.DB, wing, tail, recycled)

	wingTeam := suite.floor.Teams[models.TeamTypeWing].ID
	parts, total, err := suite.repo.List(suite.ctx, PartFilter{TeamID: &wingTeam}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(parts, 2)

	notRecycled := false
	parts, total, err = suite.repo.List(suite.ctx, PartFilter{TeamID: &wingTeam, Recycled: &notRecycled}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(parts, 1)
	suite.Equal(wing.ID, parts[0].ID)

	tb2 := models.AircraftTypeTB2
	tailType := models.PartTypeTail
	parts, total, err = suite.repo.List(suite.ctx, PartFilter{AircraftType: &tb2, PartType: &tailType}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(parts, 1)
	suite.Equal(tail.ID, parts[0].ID)
}

// TestListAvailable tests that unavailable parts are excluded and the rest come oldest first
func (suite *PartRepositoryTestSuite) TestListAvailable() {
	base := time.Now().Add(-time.Hour)
	older := suite.newPart(models.TeamTypeWing, models.AircraftTypeTB2)
	older.CreatedAt = base
	newer := suite.newPart(models.TeamTypeWing, models.AircraftTypeTB2)
	newer.CreatedAt = base.Add(time.Minute)
	body := suite.newPart(models.TeamTypeBody, models.AircraftTypeTB2)
	body.CreatedAt = base.Add(2 * time.Minute)
	otherModel := suite.newPart(models.TeamTypeWing, models.AircraftTypeTB3)
	recycled := suite.factories.Part.Recycled(suite.floor.Teams[models.TeamTypeWing], suite.floor.Users[models.TeamTypeWing], models.AircraftTypeTB2)
	linked := suite.newPart(models.TeamTypeTail, models.AircraftTypeTB2)
	persistParts(suite.T(), suite.baseTestSuite.DB, newer, older, body, otherModel, recycled, linked)
	suite.link(linked)

	parts, err := suite.repo.ListAvailable(suite.ctx, models.AircraftTypeTB2, nil)
	suite.NoError(err)
	suite.Require().Len(parts, 3)
	suite.Equal(older.ID, parts[0].ID)
	suite.Equal(newer.ID, parts[1].ID)
	suite.Equal(body.ID, parts[2].ID)

	wingType := models.PartTypeWing
	parts, err = suite.repo.ListAvailable(suite.ctx, models.AircraftTypeTB2, &wingType)
	suite.NoError(err)
	suite.Len(parts, 2)
}

// TestCountAvailableByType tests per-type counts of available parts
func (suite *PartRepositoryTestSuite) TestCountAvailableByType() {
	persistParts(suite.T(), suite.baseTestSuite.DB,
		suite.newPart(models.TeamTypeWing, models.AircraftTypeKizilelma),
		suite.newPart(models.TeamTypeWing, models.AircraftTypeKizilelma),
		suite.newPart(models.TeamTypeAvionics, models.AircraftTypeKizilelma),
		suite.newPart(models.TeamTypeAvionics, models.AircraftTypeTB2),
	)
	used := suite.newPart(models.TeamTypeAvionics, models.AircraftTypeKizilelma)
	persistParts(suite.T(), suite.baseTestSuite.DB, used)
	suite.link(used)

	counts, err := suite.repo.CountAvailableByType(suite.ctx, models.AircraftTypeKizilelma)

	suite.NoError(err)
	suite.Equal(int64(2), counts[models.PartTypeWing])
	suite.Equal(int64(1), counts[models.PartTypeAvionics])
	suite.NotContains(counts, models.PartTypeBody)
}

// TestMarkRecycled tests flagging a part as recycled
func (suite *PartRepositoryTestSuite) TestMarkRecycled() {
	part := suite.newPart(models.TeamTypeTail, models.AircraftTypeTB3)
	persistParts(suite.T(), suite.baseTestSuite.DB, part)
	recycler := suite.floor.Users[models.TeamTypeTail]

	suite.NoError(suite.repo.MarkRecycled(suite.ctx, part.ID, recycler.ID, time.Now()))

	retrieved, err := suite.repo.GetByID(suite.ctx, part.ID)
	suite.Require().NoError(err)
	suite.True(retrieved.IsRecycled)
	suite.NotNil(retrieved.RecycledAt)
	suite.Require().NotNil(retrieved.RecycledByID)
	suite.Equal(recycler.ID, *retrieved.RecycledByID)
	suite.False(retrieved.IsAvailable())

	err = suite.repo.MarkRecycled(suite.ctx, uuid.New(), recycler.ID, time.Now())
	suite.ErrorIs(err, ErrStaleState)
}

// TestMarkRecycledSkipsPartsInUse tests that linked or built parts are never flagged
func (suite *PartRepositoryTestSuite) TestMarkRecycledSkipsPartsInUse() {
	aircraft := &models.Aircraft{AircraftType: models.AircraftTypeTB3, AssembledAt: time.Now()}
	suite.Require().NoError(NewAircraftRepository(suite.baseTestSuite.DB).Create(suite.ctx, aircraft))

	linked := suite.newPart(models.TeamTypeTail, models.AircraftTypeTB3)
	built := suite.newPart(models.TeamTypeTail, models.AircraftTypeTB3)
	persistParts(suite.T(), suite.baseTestSuite.DB, linked, built)
	suite.link(linked)
	_, err := suite.repo.MarkUsedInAircraft(suite.ctx, []uuid.UUID{built.ID}, aircraft.ID)
	suite.Require().NoError(err)

	recycler := suite.floor.Users[models.TeamTypeTail]
	for _, part := range []*models.Part{linked, built} {
		err := suite.repo.MarkRecycled(suite.ctx, part.ID, recycler.ID, time.Now())
		suite.ErrorIs(err, ErrStaleState)

		retrieved, err := suite.repo.GetByID(suite.ctx, part.ID)
		suite.Require().NoError(err)
		suite.False(retrieved.IsRecycled)
		suite.Nil(retrieved.RecycledByID)
	}
}

// TestMarkUsedInAircraft tests that parts already built into an aircraft or recycled are skipped
func (suite *PartRepositoryTestSuite) TestMarkUsedInAircraft() {
	aircraftRepo := NewAircraftRepository(suite.baseTestSuite.DB)
	first := &models.Aircraft{AircraftType: models.AircraftTypeTB2, AssembledAt: time.Now()}
	second := &models.Aircraft{AircraftType: models.AircraftTypeTB2, AssembledAt: time.Now()}
	suite.Require().NoError(aircraftRepo.Create(suite.ctx, first))
	suite.Require().NoError(aircraftRepo.Create(suite.ctx, second))

	free := suite.newPart(models.TeamTypeWing, models.AircraftTypeTB2)
	taken := suite.newPart(models.TeamTypeBody, models.AircraftTypeTB2)
	persistParts(suite.T(), suite.baseTestSuite.DB, free, taken)

	marked, err := suite.repo.MarkUsedInAircraft(suite.ctx, []uuid.UUID{taken.ID}, first.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), marked)

	marked, err = suite.repo.MarkUsedInAircraft(suite.ctx, []uuid.UUID{free.ID, taken.ID}, second.ID)
	suite.NoError(err)
	suite.Equal(int64(1), marked)

	retrieved, err := suite.repo.GetByID(suite.ctx, taken.ID)
	suite.Require().NoError(err)
	suite.Equal(first.ID, *retrieved.UsedInAircraftID)

	marked, err = suite.repo.MarkUsedInAircraft(suite.ctx, nil, second.ID)
	suite.NoError(err)
	suite.Zero(marked)

	scrapped := suite.newPart(models.TeamTypeTail, models.AircraftTypeTB2)
	persistParts(suite.T(), suite.baseTestSuite.DB, scrapped)
	suite.Require().NoError(suite.repo.MarkRecycled(suite.ctx, scrapped.ID, suite.floor.Users[models.TeamTypeTail].ID, time.Now()))

	marked, err = suite.repo.MarkUsedInAircraft(suite.ctx, []uuid.UUID{scrapped.ID}, second.ID)
	suite.NoError(err)
	suite.Zero(marked)

	retrieved, err = suite.repo.GetByID(suite.ctx, scrapped.ID)
	suite.Require().NoError(err)
	suite.Nil(retrieved.UsedInAircraftID)
}

// TestPartRepositoryTestSuite runs the test suite
func TestPartRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PartRepositoryTestSuite))
}
