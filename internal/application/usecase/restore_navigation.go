package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/workbench/navstate/internal/domain/entity"
	"github.com/workbench/navstate/internal/domain/repository"
	"github.com/workbench/navstate/internal/logging"
)

// ErrNavigationStateNotFound is returned when no navigation state is saved.
var ErrNavigationStateNotFound = errors.New("navigation state not found")

// ErrVersionMismatch is returned when the navigation state version is incompatible.
var ErrVersionMismatch = errors.New("navigation state version mismatch")

// RestoreNavigationUseCase loads saved navigation state.
type RestoreNavigationUseCase struct {
	stateRepo repository.NavigationStateRepository
}

// NewRestoreNavigationUseCase creates a new RestoreNavigationUseCase.
func NewRestoreNavigationUseCase(stateRepo repository.NavigationStateRepository) *RestoreNavigationUseCase {
	return &RestoreNavigationUseCase{stateRepo: stateRepo}
}

// RestoreInput contains the parameters for restoring navigation state.
// An empty SessionID selects the most recently saved state.
type RestoreInput struct {
	SessionID entity.SessionID
}

// RestoreOutput contains the restored navigation state.
type RestoreOutput struct {
	State *entity.NavigationState
}

// Execute loads and validates a navigation state for restoration.
func (uc *RestoreNavigationUseCase) Execute(ctx context.Context, input RestoreInput) (*RestoreOutput, error) {
	log := logging.FromContext(ctx)

	var (
		state *entity.NavigationState
		err   error
	)
	if input.SessionID == "" {
		state, err = uc.stateRepo.GetLatest(ctx)
	} else {
		state, err = uc.stateRepo.GetState(ctx, input.SessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("get navigation state: %w", err)
	}
	if state == nil {
		return nil, ErrNavigationStateNotFound
	}

	if state.Version > entity.NavigationStateVersion {
		log.Warn().
			Int("state_version", state.Version).
			Int("current_version", entity.NavigationStateVersion).
			Msg("navigation state version is newer than current version")
		return nil, ErrVersionMismatch
	}

	log.Info().
		Str("session_id", string(state.SessionID)).
		Str("token", state.Token).
		Msg("navigation state loaded for restoration")

	return &RestoreOutput{State: state}, nil
}

// List returns saved navigation states, newest first.
func (uc *RestoreNavigationUseCase) List(ctx context.Context, limit int) ([]*entity.NavigationState, error) {
	states, err := uc.stateRepo.ListStates(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list navigation states: %w", err)
	}
	return states, nil
}

// DeleteSnapshot removes a session's saved state.
func (uc *RestoreNavigationUseCase) DeleteSnapshot(ctx context.Context, sessionID entity.SessionID) error {
	if err := uc.stateRepo.DeleteState(ctx, sessionID); err != nil {
		return fmt.Errorf("delete navigation state: %w", err)
	}
	return nil
}
