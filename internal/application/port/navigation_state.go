package port

import "github.com/workbench/navstate/internal/domain/entity"

// DirtyNotifier is told whenever the navigation token changes.
// Implemented by the snapshot service to debounce persistence.
type DirtyNotifier interface {
	MarkDirty()
}

// NavigationStateProvider exposes the current token of a session.
// Implemented by the navigation tracker so the snapshot service can read it.
type NavigationStateProvider interface {
	// CurrentState returns a copy of the session's navigation state.
	CurrentState() *entity.NavigationState
}
