//go:build integration
// +build integration

package service_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"aircraft-factory-backend/internal/database/models"
	apperrors "aircraft-factory-backend/internal/errors"
	"aircraft-factory-backend/internal/repository"
	"aircraft-factory-backend/internal/service"
	"aircraft-factory-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

// AssemblyWorkflowTestSuite runs the assembly services against a real database
type AssemblyWorkflowTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	store         *repository.GormStore
	assemblies    *service.AssemblyService
	parts         *service.PartService
	audit         *service.AuditService
	factories     *testutils.FactorySet
	floor         *testutils.Floor
	assembler     *models.User
	ctx           context.Context
}

func (suite *AssemblyWorkflowTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.store = repository.NewStore(suite.baseTestSuite.DB)

	clock := service.SystemClock{}
	validator := service.NewValidator()
	suite.audit = service.NewAuditService(suite.store, clock)
	suite.assemblies = service.NewAssemblyService(suite.store, suite.audit, clock, validator)
	suite.parts = service.NewPartService(suite.store, clock, validator)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *AssemblyWorkflowTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *AssemblyWorkflowTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.floor = suite.factories.CreateFloor()
	for _, team := range suite.floor.Teams {
		suite.Require().NoError(suite.store.Teams().Create(suite.ctx, team))
	}
	for _, user := range suite.floor.Users {
		suite.Require().NoError(suite.store.Users().Create(suite.ctx, user))
	}
	suite.assembler = suite.floor.Users[models.TeamTypeAssembly]
}

func (suite *AssemblyWorkflowTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AssemblyWorkflowTestSuite) stockParts(aircraftType models.AircraftType) []*models.Part {
	parts := suite.factories.PartsFor(suite.floor, aircraftType)
	for _, part := range parts {
		suite.Require().NoError(suite.store.Parts().Create(suite.ctx, part))
	}
	return parts
}

func (suite *AssemblyWorkflowTestSuite) start(aircraftType models.AircraftType) *service.AssemblyResponse {
	process, err := suite.assemblies.Start(suite.ctx, suite.assembler.ID, &service.StartAssemblyRequest{
		AircraftType: string(aircraftType),
	})
	suite.Require().NoError(err)
	return process
}

func partIDs(parts []*models.Part) []uuid.UUID {
	return lo.Map(parts, func(p *models.Part, _ int) uuid.UUID { return p.ID })
}

func (suite *AssemblyWorkflowTestSuite) TestBuildAircraft() {
	parts := suite.stockParts(models.AircraftTypeTB2)
	process := suite.start(models.AircraftTypeTB2)

	result, err := suite.assemblies.AddParts(suite.ctx, suite.assembler.ID, process.ID, partIDs(parts))
	suite.Require().NoError(err)
	suite.Len(result.Added, len(models.RequiredPartTypes))
	suite.Empty(result.Errors)

	aircraft, err := suite.assemblies.Complete(suite.ctx, suite.assembler.ID, process.ID)
	suite.Require().NoError(err)

	for _, part := range parts {
		stored, err := suite.store.Parts().GetByID(suite.ctx, part.ID)
		suite.Require().NoError(err)
		suite.Require().NotNil(stored.UsedInAircraftID)
		suite.Equal(aircraft.ID, *stored.UsedInAircraftID)
		suite.False(stored.IsAvailable())
	}

	completed, err := suite.assemblies.Get(suite.ctx, suite.assembler.ID, process.ID)
	suite.Require().NoError(err)
	suite.Equal(models.AssemblyStatusCompleted, completed.Status)
	suite.Require().NotNil(completed.AircraftID)
	suite.Equal(aircraft.ID, *completed.AircraftID)
	suite.Empty(completed.MissingParts)

	logs, err := suite.audit.ListLogs(suite.ctx, suite.assembler.ID, process.ID, service.LogOrderAsc)
	suite.Require().NoError(err)
	suite.Require().Len(logs, 2+len(models.RequiredPartTypes))
	suite.Equal(models.AssemblyActionStarted, logs[0].Action)
	suite.Equal(models.AssemblyActionCompleted, logs[len(logs)-1].Action)

	_, err = suite.assemblies.Cancel(suite.ctx, suite.assembler.ID, process.ID, "")
	suite.True(apperrors.IsInvalidState(err))
}

func (suite *AssemblyWorkflowTestSuite) TestCancelReleasesParts() {
	parts := suite.stockParts(models.AircraftTypeAkinci)
	process := suite.start(models.AircraftTypeAkinci)

	_, err := suite.assemblies.AddParts(suite.ctx, suite.assembler.ID, process.ID, partIDs(parts[:2]))
	suite.Require().NoError(err)

	summary, err := suite.parts.AvailableSummary(suite.ctx, suite.assembler.ID, string(models.AircraftTypeAkinci))
	suite.Require().NoError(err)
	suite.Equal(int64(2), summary.Total)

	cancelled, err := suite.assemblies.Cancel(suite.ctx, suite.assembler.ID, process.ID, "line stopped")
	suite.Require().NoError(err)
	suite.Equal(models.AssemblyStatusCancelled, cancelled.Status)
	suite.Empty(cancelled.Parts)

	summary, err = suite.parts.AvailableSummary(suite.ctx, suite.assembler.ID, string(models.AircraftTypeAkinci))
	suite.Require().NoError(err)
	suite.Equal(int64(len(models.RequiredPartTypes)), summary.Total)

	logs, err := suite.audit.ListLogs(suite.ctx, suite.assembler.ID, process.ID, service.LogOrderDesc)
	suite.Require().NoError(err)
	suite.Require().NotEmpty(logs)
	suite.Equal(models.AssemblyActionCancelled, logs[0].Action)
	suite.Equal("line stopped", logs[0].Notes)
}

func (suite *AssemblyWorkflowTestSuite) TestRejectedBatchLeavesNoTrace() {
	wrongModel := suite.stockParts(models.AircraftTypeTB3)
	process := suite.start(models.AircraftTypeTB2)

	result, err := suite.assemblies.AddParts(suite.ctx, suite.assembler.ID, process.ID, partIDs(wrongModel[:1]))
	suite.Require().NoError(err)
	suite.Empty(result.Added)
	suite.Require().Len(result.Errors, 1)
	suite.Equal(apperrors.CodeIncompatiblePart, result.Errors[0].Code)

	logs, err := suite.audit.ListLogs(suite.ctx, suite.assembler.ID, process.ID, service.LogOrderAsc)
	suite.Require().NoError(err)
	suite.Len(logs, 1)
}

func (suite *AssemblyWorkflowTestSuite) TestRepeatedPartIDReportedAsUsed() {
	parts := suite.stockParts(models.AircraftTypeTB2)
	process := suite.start(models.AircraftTypeTB2)

	result, err := suite.assemblies.AddParts(suite.ctx, suite.assembler.ID, process.ID, []uuid.UUID{parts[0].ID, parts[0].ID})
	suite.Require().NoError(err)
	suite.Require().Len(result.Added, 1)
	suite.Require().Len(result.Errors, 1)
	suite.Equal(parts[0].ID, result.Errors[0].PartID)
	suite.Equal(apperrors.CodeAlreadyUsed, result.Errors[0].Code)
}

// Two assemblies racing for the same part: exactly one attaches it
func (suite *AssemblyWorkflowTestSuite) TestConcurrentAddSamePart() {
	parts := suite.stockParts(models.AircraftTypeTB2)
	contested := parts[0].ID
	first := suite.start(models.AircraftTypeTB2)
	second := suite.start(models.AircraftTypeTB2)

	results := make([]*service.AddPartsResult, 2)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, process := range []*service.AssemblyResponse{first, second} {
		wg.Add(1)
		go func(i int, assemblyID uuid.UUID) {
			defer wg.Done()
			results[i], errs[i] = suite.assemblies.AddParts(suite.ctx, suite.assembler.ID, assemblyID, []uuid.UUID{contested})
		}(i, process.ID)
	}
	wg.Wait()

	suite.Require().NoError(errs[0])
	suite.Require().NoError(errs[1])
	added := len(results[0].Added) + len(results[1].Added)
	suite.Equal(1, added)

	loser := results[0]
	if len(loser.Added) == 1 {
		loser = results[1]
	}
	suite.Require().Len(loser.Errors, 1)
	suite.Equal(apperrors.CodeAlreadyUsed, loser.Errors[0].Code)

	stored, err := suite.store.Parts().GetByID(suite.ctx, contested)
	suite.Require().NoError(err)
	suite.True(stored.IsInAssembly)
}

// Recycling a part while it is being attached: a part never ends up both recycled and in use
func (suite *AssemblyWorkflowTestSuite) TestConcurrentRecycleAndAdd() {
	for round := 0; round < 5; round++ {
		contested := suite.stockParts(models.AircraftTypeTB3)[0]
		owner := suite.floor.Users[models.TeamType(contested.PartType)]
		process := suite.start(models.AircraftTypeTB3)

		var recycleErr, addErr error
		var result *service.AddPartsResult
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, recycleErr = suite.parts.RecyclePart(suite.ctx, owner.ID, contested.ID)
		}()
		go func() {
			defer wg.Done()
			result, addErr = suite.assemblies.AddParts(suite.ctx, suite.assembler.ID, process.ID, []uuid.UUID{contested.ID})
		}()
		wg.Wait()

		suite.Require().NoError(addErr)
		attached := len(result.Added) == 1
		suite.True((recycleErr == nil) != attached, "round %d: recycle=%v added=%d", round, recycleErr, len(result.Added))
		if recycleErr != nil {
			suite.True(apperrors.IsConflict(recycleErr))
		} else {
			suite.Require().Len(result.Errors, 1)
		}

		stored, err := suite.store.Parts().GetByID(suite.ctx, contested.ID)
		suite.Require().NoError(err)
		suite.False(stored.IsRecycled && stored.IsInUse(), "round %d: part is recycled and in use", round)
		suite.Equal(attached, stored.IsInAssembly)
	}
}

// Completing and cancelling the same assembly at once: exactly one wins
func (suite *AssemblyWorkflowTestSuite) TestConcurrentCompleteAndCancel() {
	parts := suite.stockParts(models.AircraftTypeKizilelma)
	process := suite.start(models.AircraftTypeKizilelma)
	_, err := suite.assemblies.AddParts(suite.ctx, suite.assembler.ID, process.ID, partIDs(parts))
	suite.Require().NoError(err)

	var completeErr, cancelErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, completeErr = suite.assemblies.Complete(suite.ctx, suite.assembler.ID, process.ID)
	}()
	go func() {
		defer wg.Done()
		_, cancelErr = suite.assemblies.Cancel(suite.ctx, suite.assembler.ID, process.ID, "")
	}()
	wg.Wait()

	suite.True((completeErr == nil) != (cancelErr == nil), "complete=%v cancel=%v", completeErr, cancelErr)
	if completeErr != nil {
		suite.True(apperrors.IsInvalidState(completeErr))
	} else {
		suite.True(apperrors.IsInvalidState(cancelErr))
	}

	final, err := suite.assemblies.Get(suite.ctx, suite.assembler.ID, process.ID)
	suite.Require().NoError(err)
	suite.True(final.Status.IsTerminal())
}

func TestAssemblyWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(AssemblyWorkflowTestSuite))
}
