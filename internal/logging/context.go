// Package logging builds zerolog loggers and carries them through contexts.
package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx. Without one, logging is a no-op.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithField derives a logger that always writes key=value.
func WithField(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str(key, value).Logger())
}

// WithComponent tags every entry with the emitting component.
func WithComponent(ctx context.Context, component string) context.Context {
	return WithField(ctx, "component", component)
}

// WithSessionID tags every entry with the navigation session.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return WithField(ctx, "session_id", sessionID)
}
