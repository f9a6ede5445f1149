package snapshot

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/workbench/navstate/internal/application/port"
	"github.com/workbench/navstate/internal/application/usecase"
	"github.com/workbench/navstate/internal/logging"
)

const (
	defaultIntervalMs = 5000
	defaultRetries    = 2
	defaultRetryDelay = 50 * time.Millisecond
)

// Service handles debounced navigation state snapshots.
// It implements port.DirtyNotifier so a tracker can signal token changes.
type Service struct {
	snapshotUC *usecase.SnapshotNavigationUseCase
	provider   port.NavigationStateProvider
	interval   time.Duration
	retries    int
	retryDelay time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	dirty  bool
	gen    uint64 // bumped by MarkDirty
	ctx    context.Context
	cancel context.CancelFunc
}

var _ port.DirtyNotifier = (*Service)(nil)

// NewService creates a new snapshot service.
func NewService(
	snapshotUC *usecase.SnapshotNavigationUseCase,
	provider port.NavigationStateProvider,
	intervalMs int,
) *Service {
	if intervalMs <= 0 {
		intervalMs = defaultIntervalMs
	}
	return &Service{
		snapshotUC: snapshotUC,
		provider:   provider,
		interval:   time.Duration(intervalMs) * time.Millisecond,
		retries:    defaultRetries,
		retryDelay: defaultRetryDelay,
	}
}

// SetProvider replaces the state provider. The tracker and the service
// reference each other, so one of them is wired after construction.
func (s *Service) SetProvider(provider port.NavigationStateProvider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.provider = provider
}

// Start begins watching for dirty state.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("snapshot service started")
}

// Stop stops the service and saves final state.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// MarkDirty signals that the token changed. Saves are debounced by the
// service interval.
func (s *Service) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty = true
	s.gen++

	if s.timer != nil {
		s.timer.Stop()
	}

	s.timer = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()

		if ctx == nil || ctx.Err() != nil {
			return
		}

		if err := s.saveSnapshot(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to save navigation snapshot")
		}
	})
}

// SaveNow forces an immediate save when there are pending changes.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	dirty := s.dirty
	s.mu.Unlock()

	if !dirty {
		return nil
	}

	return s.saveSnapshot(ctx)
}

func (s *Service) saveSnapshot(ctx context.Context) error {
	s.mu.Lock()
	provider := s.provider
	gen := s.gen
	s.mu.Unlock()
	if provider == nil {
		return nil
	}

	state := provider.CurrentState()
	if state == nil || state.SessionID == "" {
		return nil
	}

	input := usecase.SnapshotInput{SessionID: state.SessionID, Token: state.Token}

	var err error
	for attempt := 0; attempt <= s.retries; attempt++ {
		if attempt > 0 {
			logging.FromContext(ctx).Debug().
				Int("attempt", attempt).
				Err(err).
				Msg("retrying navigation snapshot")
			time.Sleep(s.retryDelay)
		}
		err = s.snapshotUC.Execute(ctx, input)
		if err == nil || !isBusyError(err) {
			break
		}
	}
	if err != nil {
		return err
	}

	// A change that landed while saving keeps the service dirty.
	s.mu.Lock()
	if s.gen == gen {
		s.dirty = false
	}
	s.mu.Unlock()
	return nil
}

// isBusyError reports whether err is SQLite lock contention worth retrying.
func isBusyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "sqlite_busy")
}
