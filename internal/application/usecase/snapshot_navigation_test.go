package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/workbench/navstate/internal/application/usecase"
	"github.com/workbench/navstate/internal/domain/entity"
	repomocks "github.com/workbench/navstate/internal/domain/repository/mocks"
)

func TestSnapshotNavigationUseCase_Execute_SavesState(t *testing.T) {
	ctx := testContext()
	stateRepo := repomocks.NewMockNavigationStateRepository(t)
	sessionID := entity.SessionID("20251224_120000_test")

	stateRepo.EXPECT().SaveState(mock.Anything, mock.AnythingOfType("*entity.NavigationState")).
		Run(func(_ context.Context, state *entity.NavigationState) {
			require.Equal(t, sessionID, state.SessionID)
			require.Equal(t, "Home|s1$o1", state.Token)
			require.Equal(t, entity.NavigationStateVersion, state.Version)
			require.False(t, state.SavedAt.IsZero())
		}).
		Return(nil)

	uc := usecase.NewSnapshotNavigationUseCase(stateRepo)
	require.NoError(t, uc.Execute(ctx, usecase.SnapshotInput{SessionID: sessionID, Token: "Home|s1$o1"}))
}

func TestSnapshotNavigationUseCase_Execute_EmptyToken(t *testing.T) {
	ctx := testContext()
	stateRepo := repomocks.NewMockNavigationStateRepository(t)

	stateRepo.EXPECT().SaveState(mock.Anything, mock.AnythingOfType("*entity.NavigationState")).
		Run(func(_ context.Context, state *entity.NavigationState) {
			require.Empty(t, state.Token)
		}).
		Return(nil)

	uc := usecase.NewSnapshotNavigationUseCase(stateRepo)
	require.NoError(t, uc.Execute(ctx, usecase.SnapshotInput{SessionID: "20251224_120000_empty"}))
}

func TestSnapshotNavigationUseCase_Execute_RequiresSessionID(t *testing.T) {
	ctx := testContext()
	stateRepo := repomocks.NewMockNavigationStateRepository(t)

	err := usecase.NewSnapshotNavigationUseCase(stateRepo).Execute(ctx, usecase.SnapshotInput{Token: "Home|"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session id required")
}

func TestSnapshotNavigationUseCase_Execute_RepoError(t *testing.T) {
	ctx := testContext()
	stateRepo := repomocks.NewMockNavigationStateRepository(t)
	boom := errors.New("locked")

	stateRepo.EXPECT().SaveState(mock.Anything, mock.Anything).Return(boom)

	err := usecase.NewSnapshotNavigationUseCase(stateRepo).Execute(ctx, usecase.SnapshotInput{SessionID: "x"})
	require.ErrorIs(t, err, boom)
}
