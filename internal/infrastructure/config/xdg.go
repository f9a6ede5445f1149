package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "navstate"
	databaseName = "navstate.sqlite"
	configName   = "config.toml"
	schemaName   = "config.schema.json"

	dirPerm  = 0o755
	filePerm = 0o644
)

// baseDir resolves an XDG base directory for navstate: $env/navstate, or
// ~/<fallback>/navstate when env is unset. ENV=dev keeps everything under
// ./.dev/navstate instead.
func baseDir(env string, fallback ...string) (string, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, ".dev", appName), nil
	}

	if dir := os.Getenv(env); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append(append([]string{home}, fallback...), appName)...), nil
}

// GetConfigDir returns $XDG_CONFIG_HOME/navstate.
func GetConfigDir() (string, error) {
	return baseDir("XDG_CONFIG_HOME", ".config")
}

// GetDataDir returns $XDG_DATA_HOME/navstate.
func GetDataDir() (string, error) {
	return baseDir("XDG_DATA_HOME", ".local", "share")
}

// GetConfigFile returns the default config file path.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configName), nil
}

// GetDatabaseFile returns the default database path.
func GetDatabaseFile() (string, error) {
	dir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, databaseName), nil
}
