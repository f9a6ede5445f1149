package config

import "github.com/workbench/navstate/internal/domain/bookmark"

// Default configuration constants
const (
	defaultLogLevel           = "info"
	defaultLogFormat          = "console"
	defaultSnapshotIntervalMs = 5000
	defaultMaxStates          = 20
	defaultMaxListed          = 0
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Navigation: NavigationConfig{
			MaxURLSize: bookmark.MaxNavURLSize,
		},
		Snapshot: SnapshotConfig{
			Enabled:    true,
			IntervalMs: defaultSnapshotIntervalMs,
			MaxStates:  defaultMaxStates,
		},
		Bookmarks: BookmarksConfig{
			MaxListed: defaultMaxListed,
		},
	}
}
