package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config describes a logger. The zero value logs debug and above to stderr
// as JSON.
type Config struct {
	Level      zerolog.Level
	Format     string
	TimeFormat string
	Output     io.Writer
}

func DefaultConfig() Config {
	return Config{Level: zerolog.InfoLevel, Format: FormatConsole, TimeFormat: time.RFC3339, Output: os.Stderr}
}

func New(cfg Config) zerolog.Logger {
	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}
	if cfg.Format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.TimeFormat}
	}
	return zerolog.New(w).Level(cfg.Level).With().Timestamp().Logger()
}

// NewFromEnv reads NAVSTATE_LOG_LEVEL and NAVSTATE_LOG_FORMAT. It is used
// before the config file has been loaded.
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("NAVSTATE_LOG_LEVEL"), os.Getenv("NAVSTATE_LOG_FORMAT"))
}

// NewFromConfigValues builds a logger from the [logging] settings. Unknown
// values fall back to DefaultConfig.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if f := strings.ToLower(format); f == FormatJSON || f == FormatConsole {
		cfg.Format = f
	}
	return New(cfg)
}

// ParseLevel accepts zerolog level names plus "warning". Anything else,
// including the empty string, is info.
func ParseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return zerolog.WarnLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
