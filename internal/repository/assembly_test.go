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

// AssemblyRepositoryTestSuite tests the AssemblyRepository
type AssemblyRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AssemblyRepository
	factories     *testutils.FactorySet
	floor         *testutils.Floor
	assembler     *models.User
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *AssemblyRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAssemblyRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *AssemblyRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AssemblyRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.floor = suite.factories.CreateFloor()
	persistFloor(suite.T(), suite.baseTestSuite.DB, suite.floor)
	suite.assembler = suite.floor.Users[models.TeamTypeAssembly]
}

// TearDownTest runs after each test
func (suite *AssemblyRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AssemblyRepositoryTestSuite) createProcess(aircraftType models.AircraftType) *models.AssemblyProcess {
	process := suite.factories.Assembly.Create(suite.assembler, aircraftType)
	suite.Require().NoError(suite.repo.Create(suite.ctx, process))
	return process
}

func (suite *AssemblyRepositoryTestSuite) createPart(teamType models.TeamType, aircraftType models.AircraftType) *models.Part {
	part := suite.factories.Part.Create(suite.floor.Teams[teamType], suite.floor.Users[teamType], aircraftType)
	persistParts(suite.T(), suite.baseTestSuite.DB, part)
	return part
}

// TestCreateAndGet tests that linked parts are preloaded in insertion order
func (suite *AssemblyRepositoryTestSuite) TestCreateAndGet() {
	process := suite.createProcess(models.AircraftTypeTB2)
	wing := suite.createPart(models.TeamTypeWing, models.AircraftTypeTB2)
	body := suite.createPart(models.TeamTypeBody, models.AircraftTypeTB2)

	first := suite.factories.Assembly.Link(process, body, suite.assembler)
	first.AddedAt = time.Now().Add(-time.Minute)
	suite.Require().NoError(suite.repo.AddPart(suite.ctx, first))
	suite.Require().NoError(suite.repo.AddPart(suite.ctx, suite.factories.Assembly.Link(process, wing, suite.assembler)))

	retrieved, err := suite.repo.GetByID(suite.ctx, process.ID)

	suite.NoError(err)
	suite.Equal(models.AssemblyStatusInProgress, retrieved.Status)
	suite.Equal(suite.assembler.ID, retrieved.StartedByID)
	suite.Require().Len(retrieved.Parts, 2)
	suite.Equal(body.ID, retrieved.Parts[0].PartID)
	suite.Equal(wing.ID, retrieved.Parts[1].PartID)
	suite.Require().NotNil(retrieved.Parts[1].Part)
	suite.True(retrieved.Parts[1].Part.IsInAssembly)
	suite.ElementsMatch([]models.PartType{models.PartTypeBody, models.PartTypeWing}, retrieved.AttachedPartTypes())
}

// TestGetByIDNotFound tests retrieving a non-existent assembly
func (suite *AssemblyRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.GetForUpdate(suite.ctx, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestAddPartAlreadyLinked tests that a part cannot join two assemblies
func (suite *AssemblyRepositoryTestSuite) TestAddPartAlreadyLinked() {
	first := suite.createProcess(models.AircraftTypeTB3)
	second := suite.createProcess(models.AircraftTypeTB3)
	part := suite.createPart(models.TeamTypeTail, models.AircraftTypeTB3)

	suite.Require().NoError(suite.repo.AddPart(suite.ctx, suite.factories.Assembly.Link(first, part, suite.assembler)))

	err := suite.repo.AddPart(suite.ctx, suite.factories.Assembly.Link(second, part, suite.assembler))
	suite.ErrorIs(err, ErrPartAlreadyLinked)
}

// TestAddPartTypeAlreadyFilled tests that an assembly holds one part per type
func (suite *AssemblyRepositoryTestSuite) TestAddPartTypeAlreadyFilled() {
	process := suite.createProcess(models.AircraftTypeAkinci)
	wing1 := suite.createPart(models.TeamTypeWing, models.AircraftTypeAkinci)
	wing2 := suite.createPart(models.TeamTypeWing, models.AircraftTypeAkinci)

	suite.Require().NoError(suite.repo.AddPart(suite.ctx, suite.factories.Assembly.Link(process, wing1, suite.assembler)))

	err := suite.repo.AddPart(suite.ctx, suite.factories.Assembly.Link(process, wing2, suite.assembler))
	suite.ErrorIs(err, ErrPartTypeAlreadyFilled)
}

// TestTransition tests the guarded status update
func (suite *AssemblyRepositoryTestSuite) TestTransition() {
	process := suite.createProcess(models.AircraftTypeTB2)

	now := time.Now()
	process.Status = models.AssemblyStatusCancelled
	process.CompletedByID = &suite.assembler.ID
	process.CompletionDate = &now
	suite.NoError(suite.repo.Transition(suite.ctx, process, models.AssemblyStatusInProgress))

	retrieved, err := suite.repo.GetByID(suite.ctx, process.ID)
	suite.Require().NoError(err)
	suite.Equal(models.AssemblyStatusCancelled, retrieved.Status)
	suite.NotNil(retrieved.CompletionDate)
	suite.Nil(retrieved.AircraftID)

	// a second writer still expecting in_progress loses
	process.Status = models.AssemblyStatusCompleted
	err = suite.repo.Transition(suite.ctx, process, models.AssemblyStatusInProgress)
	suite.ErrorIs(err, ErrStaleState)
}

// TestGetPartAndRemove tests reading and deleting single links
func (suite *AssemblyRepositoryTestSuite) TestGetPartAndRemove() {
	process := suite.createProcess(models.AircraftTypeTB2)
	part := suite.createPart(models.TeamTypeAvionics, models.AircraftTypeTB2)
	suite.Require().NoError(suite.repo.AddPart(suite.ctx, suite.factories.Assembly.Link(process, part, suite.assembler)))

	link, err := suite.repo.GetPart(suite.ctx, process.ID, part.ID)
	suite.NoError(err)
	suite.Equal(models.PartTypeAvionics, link.PartType)

	removed, err := suite.repo.RemovePart(suite.ctx, process.ID, part.ID)
	suite.NoError(err)
	suite.Equal(int64(1), removed)

	removed, err = suite.repo.RemovePart(suite.ctx, process.ID, part.ID)
	suite.NoError(err)
	suite.Zero(removed)

	_, err = suite.repo.GetPart(suite.ctx, process.ID, part.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestRemoveAllParts tests releasing every link of one assembly only
func (suite *AssemblyRepositoryTestSuite) TestRemoveAllParts() {
	process := suite.createProcess(models.AircraftTypeTB2)
	other := suite.createProcess(models.AircraftTypeTB2)
	for _, part := range suite.factories.PartsFor(suite.floor, models.AircraftTypeTB2) {
		persistParts(suite.T(), suite.baseTestSuite.DB, part)
		suite.Require().NoError(suite.repo.AddPart(suite.ctx, suite.factories.Assembly.Link(process, part, suite.assembler)))
	}
	kept := suite.createPart(models.TeamTypeWing, models.AircraftTypeTB2)
	suite.Require().NoError(suite.repo.AddPart(suite.ctx, suite.factories.Assembly.Link(other, kept, suite.assembler)))

	removed, err := suite.repo.RemoveAllParts(suite.ctx, process.ID)
	suite.NoError(err)
	suite.Equal(int64(len(models.RequiredPartTypes)), removed)

	links, err := suite.repo.ListParts(suite.ctx, process.ID)
	suite.NoError(err)
	suite.Empty(links)

	links, err = suite.repo.ListParts(suite.ctx, other.ID)
	suite.NoError(err)
	suite.Len(links, 1)
}

// TestList tests filtering and ordering by start date
func (suite *AssemblyRepositoryTestSuite) TestList() {
	older := suite.factories.Assembly.Create(suite.assembler, models.AircraftTypeTB2)
	older.StartDate = time.Now().Add(-time.Hour)
	suite.Require().NoError(suite.repo.Create(suite.ctx, older))
	newer := suite.createProcess(models.AircraftTypeTB2)
	tb3 := suite.createProcess(models.AircraftTypeTB3)

	now := time.Now()
	tb3.Status = models.AssemblyStatusCancelled
	tb3.CompletionDate = &now
	suite.Require().NoError(suite.repo.Transition(suite.ctx, tb3, models.AssemblyStatusInProgress))

	processes, total, err := suite.repo.List(suite.ctx, AssemblyFilter{}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(processes, 3)

	inProgress := models.AssemblyStatusInProgress
	processes, total, err = suite.repo.List(suite.ctx, AssemblyFilter{Status: &inProgress}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(processes, 2)
	suite.Equal(newer.ID, processes[0].ID)
	suite.Equal(older.ID, processes[1].ID)

	tb3Type := models.AircraftTypeTB3
	processes, total, err = suite.repo.List(suite.ctx, AssemblyFilter{AircraftType: &tb3Type}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(processes, 1)
	suite.Equal(models.AssemblyStatusCancelled, processes[0].Status)
}

// TestAssemblyRepositoryTestSuite runs the test suite
func TestAssemblyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssemblyRepositoryTestSuite))
}
