package config

// Config represents the complete configuration for navstate.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	// Navigation controls how navigation tokens are built.
	Navigation NavigationConfig `mapstructure:"navigation" yaml:"navigation" toml:"navigation" json:"navigation"`
	// Snapshot controls persistence of the live token of a session.
	Snapshot SnapshotConfig `mapstructure:"snapshot" yaml:"snapshot" toml:"snapshot" json:"snapshot"`
	// Bookmarks controls the bookmark listing.
	Bookmarks BookmarksConfig `mapstructure:"bookmarks" yaml:"bookmarks" toml:"bookmarks" json:"bookmarks"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	// Path of the SQLite file. Empty means $XDG_DATA_HOME/navstate/navstate.sqlite.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path,omitempty"`
}

// NavigationConfig holds token settings.
type NavigationConfig struct {
	// MaxURLSize caps token length. Tokens reaching it are truncated.
	MaxURLSize int `mapstructure:"max_url_size" yaml:"max_url_size" toml:"max_url_size" json:"max_url_size" jsonschema:"minimum=1,maximum=1900"`
	// DefaultPlace is published as the empty token when navigated to.
	DefaultPlace string `mapstructure:"default_place" yaml:"default_place" toml:"default_place" json:"default_place,omitempty"`
}

// SnapshotConfig holds snapshot settings.
type SnapshotConfig struct {
	Enabled    bool `mapstructure:"enabled" yaml:"enabled" toml:"enabled" json:"enabled"`
	IntervalMs int  `mapstructure:"interval_ms" yaml:"interval_ms" toml:"interval_ms" json:"interval_ms" jsonschema:"minimum=0"`
	// MaxStates is how many session snapshots `sessions list` shows.
	MaxStates int `mapstructure:"max_states" yaml:"max_states" toml:"max_states" json:"max_states" jsonschema:"minimum=0"`
}

// BookmarksConfig holds bookmark listing settings.
type BookmarksConfig struct {
	// MaxListed limits bookmark listings. 0 lists everything.
	MaxListed int `mapstructure:"max_listed" yaml:"max_listed" toml:"max_listed" json:"max_listed" jsonschema:"minimum=0"`
}
