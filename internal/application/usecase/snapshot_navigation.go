package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/workbench/navstate/internal/domain/entity"
	"github.com/workbench/navstate/internal/domain/repository"
	"github.com/workbench/navstate/internal/logging"
)

// SnapshotNavigationUseCase handles saving navigation state snapshots.
type SnapshotNavigationUseCase struct {
	stateRepo repository.NavigationStateRepository
}

// NewSnapshotNavigationUseCase creates a new SnapshotNavigationUseCase.
func NewSnapshotNavigationUseCase(stateRepo repository.NavigationStateRepository) *SnapshotNavigationUseCase {
	return &SnapshotNavigationUseCase{stateRepo: stateRepo}
}

// SnapshotInput contains the parameters for creating a navigation snapshot.
type SnapshotInput struct {
	SessionID entity.SessionID
	Token     string
}

// Execute saves the session's current token.
func (uc *SnapshotNavigationUseCase) Execute(ctx context.Context, input SnapshotInput) error {
	log := logging.FromContext(ctx)

	if input.SessionID == "" {
		return fmt.Errorf("session id required")
	}

	state := entity.NewNavigationState(input.SessionID)
	state.Token = input.Token
	state.SavedAt = time.Now().UTC()

	log.Debug().
		Str("session_id", string(input.SessionID)).
		Int("token_len", len(input.Token)).
		Msg("creating navigation snapshot")

	if err := uc.stateRepo.SaveState(ctx, state); err != nil {
		return fmt.Errorf("save navigation snapshot: %w", err)
	}

	return nil
}
