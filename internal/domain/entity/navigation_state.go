package entity

import (
	"errors"
	"time"
)

// NavigationStateVersion is the current schema version for navigation state.
// Increment when making breaking changes to the serialization format.
const NavigationStateVersion = 1

// NavigationState is the bookmark token owned by one workbench session.
// It is passed around explicitly; there is no process-wide token.
type NavigationState struct {
	Version   int       `json:"version"`
	SessionID SessionID `json:"session_id"`
	Token     string    `json:"token"`
	SavedAt   time.Time `json:"saved_at"`
}

// NewNavigationState creates an empty state for a session.
func NewNavigationState(sessionID SessionID) *NavigationState {
	return &NavigationState{
		Version:   NavigationStateVersion,
		SessionID: sessionID,
		SavedAt:   time.Now().UTC(),
	}
}

// Validate checks that the state can be persisted.
func (s *NavigationState) Validate() error {
	if s == nil || s.SessionID == "" {
		return ErrInvalidNavigationState
	}
	if s.Version <= 0 || s.Version > NavigationStateVersion {
		return ErrInvalidNavigationState
	}
	return nil
}

var ErrInvalidNavigationState = errors.New("invalid navigation state")
