package sqlite_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workbench/navstate/internal/domain/entity"
	"github.com/workbench/navstate/internal/infrastructure/persistence/sqlite"
)

func TestNavigationStateRepository_SaveAndGet(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewNavigationStateRepository(openTestDB(t))

	savedAt := time.Date(2025, 12, 24, 12, 0, 0, 0, time.UTC)
	state := &entity.NavigationState{
		Version:   entity.NavigationStateVersion,
		SessionID: "20251224_120000_abcd",
		Token:     "Home|Explorer,~Outline$Search",
		SavedAt:   savedAt,
	}
	require.NoError(t, repo.SaveState(ctx, state))

	got, err := repo.GetState(ctx, state.SessionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, state.Token, got.Token)
	assert.Equal(t, state.Version, got.Version)
	assert.True(t, got.SavedAt.Equal(savedAt))

	state.Token = "Home|Explorer"
	state.SavedAt = savedAt.Add(time.Minute)
	require.NoError(t, repo.SaveState(ctx, state))

	got, err = repo.GetState(ctx, state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Home|Explorer", got.Token)

	missing, err := repo.GetState(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestNavigationStateRepository_LatestListDelete(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewNavigationStateRepository(openTestDB(t))

	latest, err := repo.GetLatest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	base := time.Date(2025, 12, 24, 12, 0, 0, 0, time.UTC)
	for i, id := range []entity.SessionID{"s1", "s2", "s3"} {
		require.NoError(t, repo.SaveState(ctx, &entity.NavigationState{
			Version:   entity.NavigationStateVersion,
			SessionID: id,
			Token:     string(id) + "|",
			SavedAt:   base.Add(time.Duration(i) * time.Second),
		}))
	}

	latest, err = repo.GetLatest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, entity.SessionID("s3"), latest.SessionID)

	states, err := repo.ListStates(ctx, 2)
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, entity.SessionID("s3"), states[0].SessionID)
	assert.Equal(t, entity.SessionID("s2"), states[1].SessionID)

	require.NoError(t, repo.DeleteState(ctx, "s3"))
	latest, err = repo.GetLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionID("s2"), latest.SessionID)
}

func TestNavigationStateRepository_RejectsInvalidState(t *testing.T) {
	repo := sqlite.NewNavigationStateRepository(openTestDB(t))

	err := repo.SaveState(testCtx(), &entity.NavigationState{Version: entity.NavigationStateVersion})
	require.ErrorIs(t, err, entity.ErrInvalidNavigationState)
}
