package script

import (
	"context"
	"fmt"

	"github.com/workbench/navstate/internal/domain/entity"
	"github.com/workbench/navstate/internal/logging"
)

// Tracker receives replayed events.
type Tracker interface {
	RegisterOpen(ctx context.Context, kind entity.PartKind, place entity.PlaceRequest, isDock bool) error
	RegisterClose(ctx context.Context, kind entity.PartKind, place entity.PlaceRequest, isDock bool) error
	OpenDock(ctx context.Context, dock *entity.Dock) error
	CloseDock(ctx context.Context, dock *entity.Dock) error
	Flush(ctx context.Context)
	Load(ctx context.Context, token string)
}

// Replay feeds every event of s to tracker, in order. It stops at the
// first error or when ctx is done.
func Replay(ctx context.Context, tracker Tracker, s *Script) error {
	log := logging.FromContext(ctx)

	for i := range s.Events {
		if err := ctx.Err(); err != nil {
			return err
		}
		e := &s.Events[i]
		if err := apply(ctx, tracker, e); err != nil {
			return fmt.Errorf("event %d (%s %s %s): %w", i+1, e.Action, e.Kind, e.Place, err)
		}
	}

	log.Debug().Int("events", len(s.Events)).Msg("navigation script replayed")
	return nil
}

func apply(ctx context.Context, tracker Tracker, e *Event) error {
	switch e.Action {
	case ActionFlush:
		tracker.Flush(ctx)
		return nil
	case ActionLoad:
		tracker.Load(ctx, e.Token)
		return nil
	}

	if e.Kind == KindDock {
		if e.Action == ActionOpen {
			return tracker.OpenDock(ctx, e.DockRequest())
		}
		return tracker.CloseDock(ctx, e.DockRequest())
	}

	kind := entity.PartKind(e.Kind)
	if e.Action == ActionOpen {
		return tracker.RegisterOpen(ctx, kind, e.PlaceRequest(), e.Dock)
	}
	return tracker.RegisterClose(ctx, kind, e.PlaceRequest(), e.Dock)
}
