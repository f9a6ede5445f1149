package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXDGPaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "cfg"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))

	cfgFile, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cfg", "navstate", "config.toml"), cfgFile)

	dbFile, err := GetDatabaseFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data", "navstate", "navstate.sqlite"), dbFile)
}

func TestXDGPaths_HomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")

	dir, err := GetDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "navstate"), dir)
}
