package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/workbench/navstate/internal/application/port/mocks"
	"github.com/workbench/navstate/internal/application/usecase"
	"github.com/workbench/navstate/internal/domain/entity"
	repomocks "github.com/workbench/navstate/internal/domain/repository/mocks"
)

func stateProvider(t *testing.T, sessionID entity.SessionID, token string) *portmocks.MockNavigationStateProvider {
	provider := portmocks.NewMockNavigationStateProvider(t)
	provider.EXPECT().CurrentState().RunAndReturn(func() *entity.NavigationState {
		state := entity.NewNavigationState(sessionID)
		state.Token = token
		return state
	}).Maybe()
	return provider
}

func TestService_SaveSnapshot_RetriesBusyAndSucceeds(t *testing.T) {
	repo := repomocks.NewMockNavigationStateRepository(t)
	calls := 0
	repo.EXPECT().
		SaveState(mock.Anything, mock.AnythingOfType("*entity.NavigationState")).
		RunAndReturn(func(_ context.Context, state *entity.NavigationState) error {
			calls++
			assert.Equal(t, "Home|s1", state.Token)
			if calls == 1 {
				return errors.New("database is locked (5) (SQLITE_BUSY)")
			}
			return nil
		})

	svc := NewService(usecase.NewSnapshotNavigationUseCase(repo), stateProvider(t, "20260207_120000_busy", "Home|s1"), 1)
	svc.retryDelay = time.Millisecond
	svc.dirty = true

	require.NoError(t, svc.saveSnapshot(context.Background()))
	assert.Equal(t, 2, calls)
	assert.False(t, svc.dirty)
}

func TestService_SaveSnapshot_RetriesBusyAndFails(t *testing.T) {
	repo := repomocks.NewMockNavigationStateRepository(t)
	calls := 0
	busy := errors.New("database is locked")
	repo.EXPECT().
		SaveState(mock.Anything, mock.AnythingOfType("*entity.NavigationState")).
		RunAndReturn(func(_ context.Context, _ *entity.NavigationState) error {
			calls++
			return busy
		})

	svc := NewService(usecase.NewSnapshotNavigationUseCase(repo), stateProvider(t, "20260207_120000_fail", "x"), 1)
	svc.retryDelay = time.Millisecond
	svc.dirty = true

	err := svc.saveSnapshot(context.Background())
	require.ErrorIs(t, err, busy)
	assert.Equal(t, svc.retries+1, calls)
	assert.True(t, svc.dirty)
}

func TestService_SaveSnapshot_DoesNotRetryOtherErrors(t *testing.T) {
	repo := repomocks.NewMockNavigationStateRepository(t)
	readOnly := errors.New("attempt to write a readonly database")
	repo.EXPECT().
		SaveState(mock.Anything, mock.Anything).
		Return(readOnly).
		Once()

	svc := NewService(usecase.NewSnapshotNavigationUseCase(repo), stateProvider(t, "20260207_120000_ro", "x"), 1)
	svc.retryDelay = time.Millisecond
	svc.dirty = true

	require.ErrorIs(t, svc.saveSnapshot(context.Background()), readOnly)
	assert.True(t, svc.dirty)
}

func TestService_SaveSnapshot_SkipsWithoutSession(t *testing.T) {
	repo := repomocks.NewMockNavigationStateRepository(t)

	svc := NewService(usecase.NewSnapshotNavigationUseCase(repo), stateProvider(t, "", "x"), 1)
	svc.dirty = true

	require.NoError(t, svc.saveSnapshot(context.Background()))
}

func TestService_MarkDirty_Debounces(t *testing.T) {
	repo := repomocks.NewMockNavigationStateRepository(t)
	saved := make(chan string, 4)
	repo.EXPECT().
		SaveState(mock.Anything, mock.AnythingOfType("*entity.NavigationState")).
		RunAndReturn(func(_ context.Context, state *entity.NavigationState) error {
			saved <- state.Token
			return nil
		})

	svc := NewService(usecase.NewSnapshotNavigationUseCase(repo), stateProvider(t, "20260207_120000_debounce", "Home|"), 20)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	svc.MarkDirty()
	svc.MarkDirty()
	svc.MarkDirty()

	select {
	case token := <-saved:
		assert.Equal(t, "Home|", token)
	case <-time.After(time.Second):
		t.Fatal("expected debounced snapshot to be saved")
	}

	select {
	case <-saved:
		t.Fatal("expected a single save for a burst of changes")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestService_Stop_SavesPendingState(t *testing.T) {
	repo := repomocks.NewMockNavigationStateRepository(t)
	repo.EXPECT().
		SaveState(mock.Anything, mock.AnythingOfType("*entity.NavigationState")).
		Return(nil).
		Once()

	svc := NewService(usecase.NewSnapshotNavigationUseCase(repo), stateProvider(t, "20260207_120000_stop", "Home|"), 60000)
	svc.Start(context.Background())
	svc.MarkDirty()

	require.NoError(t, svc.Stop(context.Background()))
	// nothing left to save
	require.NoError(t, svc.SaveNow(context.Background()))
}

func TestNewService_DefaultInterval(t *testing.T) {
	svc := NewService(nil, nil, 0)
	assert.Equal(t, 5*time.Second, svc.interval)
	require.NoError(t, svc.SaveNow(context.Background()))
}
