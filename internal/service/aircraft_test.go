package service_test

import (
	"context"
	"testing"
	"time"

	"aircraft-factory-backend/internal/database/models"
	apperrors "aircraft-factory-backend/internal/errors"
	"aircraft-factory-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAircraftService_GetAircraft(t *testing.T) {
	m := newEngineMocks(t)
	actor := newTeamUser(models.TeamTypeAssembly)
	svc := service.NewAircraftService(m.store)

	aircraftID := uuid.New()
	parts := []models.Part{
		*newPart(models.PartTypeAvionics, models.AircraftTypeTB3),
		*newPart(models.PartTypeWing, models.AircraftTypeTB3),
		*newPart(models.PartTypeTail, models.AircraftTypeTB3),
		*newPart(models.PartTypeBody, models.AircraftTypeTB3),
	}
	for i := range parts {
		parts[i].UsedInAircraftID = &aircraftID
	}

	m.users.EXPECT().GetWithTeam(gomock.Any(), actor.ID).Return(actor, nil).AnyTimes()
	m.aircraft.EXPECT().GetByID(gomock.Any(), aircraftID).Return(&models.Aircraft{
		BaseModel:    models.BaseModel{ID: aircraftID},
		AircraftType: models.AircraftTypeTB3,
		AssembledAt:  time.Now(),
		Parts:        parts,
	}, nil)

	resp, err := svc.GetAircraft(context.Background(), actor.ID, aircraftID)

	require.NoError(t, err)
	require.Len(t, resp.Parts, 4)
	for i, pt := range models.RequiredPartTypes {
		assert.Equal(t, pt, resp.Parts[i].PartType)
		assert.True(t, resp.Parts[i].IsInUse)
	}
}

func TestAircraftService_Errors(t *testing.T) {
	m := newEngineMocks(t)
	actor := newTeamUser(models.TeamTypeAssembly)
	tailWorker := newTeamUser(models.TeamTypeTail)
	svc := service.NewAircraftService(m.store)
	missing := uuid.New()

	m.users.EXPECT().GetWithTeam(gomock.Any(), actor.ID).Return(actor, nil).AnyTimes()
	m.users.EXPECT().GetWithTeam(gomock.Any(), tailWorker.ID).Return(tailWorker, nil).AnyTimes()
	m.aircraft.EXPECT().GetByID(gomock.Any(), missing).Return(nil, errRecordNotFound)

	_, err := svc.GetAircraft(context.Background(), actor.ID, missing)
	assert.ErrorIs(t, err, apperrors.ErrAircraftNotFound)

	_, err = svc.GetAircraft(context.Background(), tailWorker.ID, missing)
	assert.True(t, apperrors.IsPermission(err))

	_, err = svc.ListAircraft(context.Background(), actor.ID, "B737", 1, 20)
	assert.True(t, apperrors.IsValidation(err))
}

func TestAircraftService_ListAircraft(t *testing.T) {
	m := newEngineMocks(t)
	actor := newTeamUser(models.TeamTypeAssembly)
	svc := service.NewAircraftService(m.store)

	m.users.EXPECT().GetWithTeam(gomock.Any(), actor.ID).Return(actor, nil).AnyTimes()
	m.aircraft.EXPECT().List(gomock.Any(), gomock.Any(), 100, 0).DoAndReturn(
		func(_ context.Context, at *models.AircraftType, _, _ int) ([]models.Aircraft, int64, error) {
			require.NotNil(t, at)
			assert.Equal(t, models.AircraftTypeTB2, *at)
			return []models.Aircraft{{AircraftType: models.AircraftTypeTB2}}, 1, nil
		})

	resp, err := svc.ListAircraft(context.Background(), actor.ID, "TB2", 0, 500)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, 100, resp.PageSize)
	assert.Len(t, resp.Aircraft, 1)
}
