package config

import (
	"fmt"
	"strings"

	"github.com/workbench/navstate/internal/domain/bookmark"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateNavigation(config)...)
	validationErrors = append(validationErrors, validateSnapshot(config)...)
	validationErrors = append(validationErrors, validateBookmarks(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	validLevels := []string{"trace", "debug", "info", "warn", "warning", "error"}
	for _, level := range validLevels {
		if config.Logging.Level == level {
			return nil
		}
	}
	return []string{fmt.Sprintf("logging.level must be one of %v, got %q", validLevels, config.Logging.Level)}
}

func validateNavigation(config *Config) []string {
	var validationErrors []string
	if config.Navigation.MaxURLSize < 1 || config.Navigation.MaxURLSize > bookmark.MaxNavURLSize {
		validationErrors = append(validationErrors,
			fmt.Sprintf("navigation.max_url_size must be between 1 and %d", bookmark.MaxNavURLSize))
	}
	if place := config.Navigation.DefaultPlace; place != "" && !bookmark.IsValidScreen(place) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("navigation.default_place %q contains reserved characters", place))
	}
	return validationErrors
}

func validateSnapshot(config *Config) []string {
	var validationErrors []string
	if config.Snapshot.IntervalMs < 0 {
		validationErrors = append(validationErrors, "snapshot.interval_ms must be non-negative")
	}
	if config.Snapshot.MaxStates < 0 {
		validationErrors = append(validationErrors, "snapshot.max_states must be non-negative")
	}
	return validationErrors
}

func validateBookmarks(config *Config) []string {
	if config.Bookmarks.MaxListed < 0 {
		return []string{"bookmarks.max_listed must be non-negative"}
	}
	return nil
}
