package repository

import (
	"context"

	"github.com/workbench/navstate/internal/domain/entity"
)

// NavigationStateRepository persists the latest token of each session.
type NavigationStateRepository interface {
	// SaveState saves or updates a session's navigation state.
	SaveState(ctx context.Context, state *entity.NavigationState) error

	// GetState returns nil (and no error) when the session has no saved state.
	GetState(ctx context.Context, sessionID entity.SessionID) (*entity.NavigationState, error)

	// GetLatest returns the most recently saved state of any session.
	GetLatest(ctx context.Context) (*entity.NavigationState, error)

	// ListStates returns saved states, newest first.
	ListStates(ctx context.Context, limit int) ([]*entity.NavigationState, error)

	DeleteState(ctx context.Context, sessionID entity.SessionID) error
}
