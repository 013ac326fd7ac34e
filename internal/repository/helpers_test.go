//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"aircraft-factory-backend/internal/database/models"
	"aircraft-factory-backend/internal/testutils"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// persistFloor writes every team and user of the floor
func persistFloor(t *testing.T, db *gorm.DB, floor *testutils.Floor) {
	t.Helper()
	ctx := context.Background()
	teams := NewTeamRepository(db)
	users := NewUserRepository(db)
	for _, team := range floor.Teams {
		require.NoError(t, teams.Create(ctx, team))
	}
	for _, user := range floor.Users {
		require.NoError(t, users.Create(ctx, user))
	}
}

// persistParts writes the parts in order
func persistParts(t *testing.T, db *gorm.DB, parts ...*models.Part) {
	t.Helper()
	repo := NewPartRepository(db)
	for _, part := range parts {
		require.NoError(t, repo.Create(context.Background(), part))
	}
}
