//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"aircraft-factory-backend/internal/database/models"
	"aircraft-factory-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// AssemblyLogRepositoryTestSuite tests the AssemblyLogRepository
type AssemblyLogRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AssemblyLogRepository
	factories     *testutils.FactorySet
	assembler     *models.User
	process       *models.AssemblyProcess
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *AssemblyLogRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAssemblyLogRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *AssemblyLogRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AssemblyLogRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	floor := suite.factories.CreateFloor()
	persistFloor(suite.T(), suite.baseTestSuite.DB, floor)
	suite.assembler = floor.Users[models.TeamTypeAssembly]

	suite.process = suite.factories.Assembly.Create(suite.assembler, models.AircraftTypeTB2)
	suite.Require().NoError(NewAssemblyRepository(suite.baseTestSuite.DB).Create(suite.ctx, suite.process))
}

// TearDownTest runs after each test
func (suite *AssemblyLogRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AssemblyLogRepositoryTestSuite) appendEntry(action models.AssemblyAction, at time.Time, notes string) *models.AssemblyLog {
	entry := &models.AssemblyLog{
		AssemblyID: suite.process.ID,
		ActionByID: &suite.assembler.ID,
		Timestamp:  at,
		Action:     action,
		Notes:      notes,
	}
	suite.Require().NoError(suite.repo.Append(suite.ctx, entry))
	return entry
}

// TestAppendAssignsSerialIDs tests that entries get increasing ids
func (suite *AssemblyLogRepositoryTestSuite) TestAppendAssignsSerialIDs() {
	now := time.Now()
	first := suite.appendEntry(models.AssemblyActionStarted, now, "started")
	second := suite.appendEntry(models.AssemblyActionCancelled, now, "cancelled")

	suite.NotZero(first.ID)
	suite.Greater(second.ID, first.ID)
}

// TestListByAssemblyOrdering tests both directions, with ties on timestamp keeping insertion order
func (suite *AssemblyLogRepositoryTestSuite) TestListByAssemblyOrdering() {
	t0 := time.Now().Add(-time.Minute).Truncate(time.Microsecond)
	suite.appendEntry(models.AssemblyActionStarted, t0, "started")
	suite.appendEntry(models.AssemblyActionRemovedPart, t0.Add(time.Second), "removed wing part (assembly cancelled)")
	suite.appendEntry(models.AssemblyActionRemovedPart, t0.Add(time.Second), "removed body part (assembly cancelled)")
	suite.appendEntry(models.AssemblyActionCancelled, t0.Add(time.Second), "assembly cancelled")

	ascending, err := suite.repo.ListByAssembly(suite.ctx, suite.process.ID, true)
	suite.NoError(err)
	suite.Require().Len(ascending, 4)
	suite.Equal("started", ascending[0].Notes)
	suite.Equal("removed wing part (assembly cancelled)", ascending[1].Notes)
	suite.Equal("removed body part (assembly cancelled)", ascending[2].Notes)
	suite.Equal(models.AssemblyActionCancelled, ascending[3].Action)
	suite.Require().NotNil(ascending[0].ActionBy)
	suite.Equal(suite.assembler.Username, ascending[0].ActionBy.Username)

	descending, err := suite.repo.ListByAssembly(suite.ctx, suite.process.ID, false)
	suite.NoError(err)
	suite.Require().Len(descending, 4)
	suite.Equal(models.AssemblyActionCancelled, descending[0].Action)
	suite.Equal("removed body part (assembly cancelled)", descending[1].Notes)
	suite.Equal("started", descending[3].Notes)
}

// TestListByAssemblyScopesToAssembly tests that other assemblies' entries are excluded
func (suite *AssemblyLogRepositoryTestSuite) TestListByAssemblyScopesToAssembly() {
	other := suite.factories.Assembly.Create(suite.assembler, models.AircraftTypeTB3)
	suite.Require().NoError(NewAssemblyRepository(suite.baseTestSuite.DB).Create(suite.ctx, other))

	suite.appendEntry(models.AssemblyActionStarted, time.Now(), "started")
	suite.Require().NoError(suite.repo.Append(suite.ctx, &models.AssemblyLog{
		AssemblyID: other.ID,
		Timestamp:  time.Now(),
		Action:     models.AssemblyActionStarted,
	}))

	entries, err := suite.repo.ListByAssembly(suite.ctx, suite.process.ID, true)
	suite.NoError(err)
	suite.Len(entries, 1)
}

// TestAssemblyLogRepositoryTestSuite runs the test suite
func TestAssemblyLogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssemblyLogRepositoryTestSuite))
}
