package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/workbench/navstate/internal/application/usecase"
	"github.com/workbench/navstate/internal/domain/entity"
	repomocks "github.com/workbench/navstate/internal/domain/repository/mocks"
)

func TestRestoreNavigationUseCase_Execute_BySession(t *testing.T) {
	ctx := testContext()
	stateRepo := repomocks.NewMockNavigationStateRepository(t)
	sessionID := entity.SessionID("20251224_120000_abcd")

	stateRepo.EXPECT().GetState(mock.Anything, sessionID).Return(&entity.NavigationState{
		Version:   entity.NavigationStateVersion,
		SessionID: sessionID,
		Token:     "Home|s1",
	}, nil)

	out, err := usecase.NewRestoreNavigationUseCase(stateRepo).Execute(ctx, usecase.RestoreInput{SessionID: sessionID})
	require.NoError(t, err)
	assert.Equal(t, "Home|s1", out.State.Token)
}

func TestRestoreNavigationUseCase_Execute_Latest(t *testing.T) {
	ctx := testContext()
	stateRepo := repomocks.NewMockNavigationStateRepository(t)

	stateRepo.EXPECT().GetLatest(mock.Anything).Return(&entity.NavigationState{
		Version:   entity.NavigationStateVersion,
		SessionID: "latest",
		Token:     "Other|",
	}, nil)

	out, err := usecase.NewRestoreNavigationUseCase(stateRepo).Execute(ctx, usecase.RestoreInput{})
	require.NoError(t, err)
	assert.Equal(t, entity.SessionID("latest"), out.State.SessionID)
}

func TestRestoreNavigationUseCase_Execute_NotFound(t *testing.T) {
	ctx := testContext()
	stateRepo := repomocks.NewMockNavigationStateRepository(t)

	stateRepo.EXPECT().GetLatest(mock.Anything).Return(nil, nil)

	_, err := usecase.NewRestoreNavigationUseCase(stateRepo).Execute(ctx, usecase.RestoreInput{})
	require.ErrorIs(t, err, usecase.ErrNavigationStateNotFound)
}

func TestRestoreNavigationUseCase_Execute_NewerVersion(t *testing.T) {
	ctx := testContext()
	stateRepo := repomocks.NewMockNavigationStateRepository(t)

	stateRepo.EXPECT().GetState(mock.Anything, entity.SessionID("future")).Return(&entity.NavigationState{
		Version:   entity.NavigationStateVersion + 1,
		SessionID: "future",
	}, nil)

	_, err := usecase.NewRestoreNavigationUseCase(stateRepo).Execute(ctx, usecase.RestoreInput{SessionID: "future"})
	require.ErrorIs(t, err, usecase.ErrVersionMismatch)
}

func TestRestoreNavigationUseCase_Execute_RepoError(t *testing.T) {
	ctx := testContext()
	stateRepo := repomocks.NewMockNavigationStateRepository(t)
	boom := errors.New("io")

	stateRepo.EXPECT().GetLatest(mock.Anything).Return(nil, boom)

	_, err := usecase.NewRestoreNavigationUseCase(stateRepo).Execute(ctx, usecase.RestoreInput{})
	require.ErrorIs(t, err, boom)
}

func TestRestoreNavigationUseCase_ListAndDelete(t *testing.T) {
	ctx := testContext()
	stateRepo := repomocks.NewMockNavigationStateRepository(t)

	stateRepo.EXPECT().ListStates(mock.Anything, 5).Return([]*entity.NavigationState{{SessionID: "a"}}, nil)
	stateRepo.EXPECT().DeleteState(mock.Anything, entity.SessionID("a")).Return(nil)

	uc := usecase.NewRestoreNavigationUseCase(stateRepo)
	states, err := uc.List(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, states, 1)
	require.NoError(t, uc.DeleteSnapshot(ctx, "a"))
}
