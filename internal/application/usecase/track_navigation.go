package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/workbench/navstate/internal/application/port"
	"github.com/workbench/navstate/internal/domain/bookmark"
	"github.com/workbench/navstate/internal/domain/entity"
	"github.com/workbench/navstate/internal/logging"
)

// ErrInvalidPlace is returned when a navigation event carries no place.
var ErrInvalidPlace = errors.New("invalid place")

// TrackNavigationConfig configures a navigation tracker.
type TrackNavigationConfig struct {
	SessionID entity.SessionID

	// DefaultPlace, when navigated to, is published as the empty token.
	DefaultPlace entity.PlaceRequest

	// MaxURLSize caps the published token. Values <= 0 or above
	// bookmark.MaxNavURLSize fall back to bookmark.MaxNavURLSize.
	MaxURLSize int

	// Notifier is told about every token change. Optional.
	Notifier port.DirtyNotifier
}

// TrackNavigationUseCase owns the bookmark token of one workbench session.
// Every open or close event updates the token and publishes it to the historian.
// It is safe for concurrent use.
type TrackNavigationUseCase struct {
	historian    port.Historian
	notifier     port.DirtyNotifier
	defaultPlace entity.PlaceRequest
	maxURLSize   int
	sessionID    entity.SessionID

	mu      sync.Mutex
	token   string
	savedAt time.Time
}

// NewTrackNavigationUseCase creates a tracker with an empty token.
func NewTrackNavigationUseCase(historian port.Historian, cfg TrackNavigationConfig) *TrackNavigationUseCase {
	maxURLSize := cfg.MaxURLSize
	if maxURLSize <= 0 || maxURLSize > bookmark.MaxNavURLSize {
		maxURLSize = bookmark.MaxNavURLSize
	}
	return &TrackNavigationUseCase{
		historian:    historian,
		notifier:     cfg.Notifier,
		defaultPlace: cfg.DefaultPlace,
		maxURLSize:   maxURLSize,
		sessionID:    cfg.SessionID,
	}
}

// RegisterOpen records that a part was opened.
//
// A perspective is only recorded when the token has none yet; call Flush
// before switching perspectives. Dock screens are recorded with the '!'
// marker. Path-backed editors get their parameters doubled ("k==v").
func (uc *TrackNavigationUseCase) RegisterOpen(
	ctx context.Context,
	kind entity.PartKind,
	place entity.PlaceRequest,
	isDock bool,
) error {
	if place == nil {
		return fmt.Errorf("register open %s: %w", kind, ErrInvalidPlace)
	}
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	before := uc.token
	switch kind {
	case entity.PartPerspective:
		if !bookmark.IsPerspectiveInURL(uc.token) {
			uc.token = bookmark.RegisterOpenedPerspective(uc.token, place.FullIdentifier())
		}
	case entity.PartScreen:
		id := place.FullIdentifier()
		if isDock {
			id = bookmark.DockPrefix + id
		}
		uc.token = bookmark.RegisterOpenedScreen(uc.token, id)
	case entity.PartEditor:
		if editor, ok := place.(*entity.PathPlaceRequest); ok {
			uc.token = bookmark.RegisterOpenedEditor(uc.token, editor)
		} else {
			uc.token = bookmark.RegisterOpenedScreen(uc.token, place.FullIdentifier())
		}
	}
	changed := before != uc.token
	pushed := uc.publishLocked(place)
	uc.mu.Unlock()

	log.Debug().
		Str("kind", string(kind)).
		Str("place", place.FullIdentifier()).
		Bool("dock", isDock).
		Bool("changed", changed).
		Str("token", pushed).
		Msg("registered open")

	uc.notify()
	return nil
}

// RegisterClose records that a part was closed. Only screens and editors
// affect the token; closing a perspective just republishes it. A place
// without an identifier is rejected.
func (uc *TrackNavigationUseCase) RegisterClose(
	ctx context.Context,
	kind entity.PartKind,
	place entity.PlaceRequest,
	isDock bool,
) error {
	if place == nil || strings.TrimSpace(place.Identifier()) == "" {
		return fmt.Errorf("register close %s: %w", kind, ErrInvalidPlace)
	}
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	switch kind {
	case entity.PartScreen:
		id := place.Identifier()
		if isDock {
			id = bookmark.DockPrefix + id
		}
		entry := bookmark.GetURLToken(uc.token, id)
		uc.token = bookmark.RegisterClosedScreen(uc.token, entry)
	case entity.PartEditor:
		uc.token = bookmark.RegisterCloseEditor(uc.token, place)
	}
	pushed := uc.publishLocked(place)
	uc.mu.Unlock()

	log.Debug().
		Str("kind", string(kind)).
		Str("place", place.FullIdentifier()).
		Bool("dock", isDock).
		Str("token", pushed).
		Msg("registered close")

	uc.notify()
	return nil
}

// OpenDock records a dock opened on a perspective edge.
func (uc *TrackNavigationUseCase) OpenDock(ctx context.Context, dock *entity.Dock) error {
	if dock == nil || dock.Place == nil {
		return fmt.Errorf("open dock: %w", ErrInvalidPlace)
	}

	uc.mu.Lock()
	uc.token = bookmark.RegisterOpenedDock(uc.token, dock)
	pushed := uc.publishLocked(dock.Place)
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("dock", dock.ID()).
		Str("token", pushed).
		Msg("dock opened")

	uc.notify()
	return nil
}

// CloseDock marks a dock closed.
func (uc *TrackNavigationUseCase) CloseDock(ctx context.Context, dock *entity.Dock) error {
	if dock == nil || dock.Place == nil {
		return fmt.Errorf("close dock: %w", ErrInvalidPlace)
	}

	uc.mu.Lock()
	uc.token = bookmark.RegisterClosedDock(uc.token, dock)
	pushed := uc.publishLocked(dock.Place)
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("dock", dock.ID()).
		Str("token", pushed).
		Msg("dock closed")

	uc.notify()
	return nil
}

// Flush resets the token, typically before a perspective switch.
func (uc *TrackNavigationUseCase) Flush(ctx context.Context) {
	uc.mu.Lock()
	uc.token = ""
	uc.savedAt = time.Now().UTC()
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().Msg("navigation token flushed")
	uc.notify()
}

// Load replaces the token, e.g. with one restored from a snapshot.
// It is cut to the size cap and published, but not marked dirty.
func (uc *TrackNavigationUseCase) Load(ctx context.Context, token string) {
	uc.mu.Lock()
	uc.token = bookmark.Truncate(token, uc.maxURLSize)
	uc.savedAt = time.Now().UTC()
	pushed := uc.token
	uc.mu.Unlock()

	uc.historian.NewItem(pushed)
	logging.FromContext(ctx).Debug().Str("token", pushed).Msg("navigation token loaded")
}

// Token returns the current token.
func (uc *TrackNavigationUseCase) Token() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.token
}

// SessionID returns the session this tracker belongs to.
func (uc *TrackNavigationUseCase) SessionID() entity.SessionID {
	return uc.sessionID
}

// CurrentState implements port.NavigationStateProvider.
func (uc *TrackNavigationUseCase) CurrentState() *entity.NavigationState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return &entity.NavigationState{
		Version:   entity.NavigationStateVersion,
		SessionID: uc.sessionID,
		Token:     uc.token,
		SavedAt:   uc.savedAt,
	}
}

// publishLocked pushes the token for place to the historian and returns it.
// The default place publishes the empty token. A token that grew past the
// size cap is truncated in place first. Callers hold uc.mu.
func (uc *TrackNavigationUseCase) publishLocked(place entity.PlaceRequest) string {
	uc.savedAt = time.Now().UTC()

	pushed := ""
	if uc.defaultPlace == nil || !entity.SamePlace(uc.defaultPlace, place) {
		if len(uc.token) >= uc.maxURLSize {
			uc.token = bookmark.Truncate(uc.token, uc.maxURLSize)
		}
		pushed = uc.token
	}
	uc.historian.NewItem(pushed)
	return pushed
}

func (uc *TrackNavigationUseCase) notify() {
	if uc.notifier != nil {
		uc.notifier.MarkDirty()
	}
}
