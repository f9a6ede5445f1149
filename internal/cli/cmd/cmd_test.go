package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workbench/navstate/internal/domain/build"
	"github.com/workbench/navstate/internal/domain/entity"
)

// testConfig writes a config file whose database lives in a temp dir.
func testConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("NAVSTATE_LOG_LEVEL", "error")

	path := filepath.Join(dir, "config.toml")
	content := fmt.Sprintf("[database]\npath = %q\n\n[snapshot]\nenabled = true\ninterval_ms = 10\nmax_states = 5\n",
		filepath.Join(dir, "navstate.sqlite"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func resetFlags() {
	inspectJSON, inspectYAML = false, false
	buildFile, buildHistory, buildSave, buildNoSnap = "", false, "", false
	bookmarksJSON, bookmarksLimit = false, 0
	sessionsJSON, sessionsLimit, sessionsToken = false, 0, false
	configKeysSection, configKeysJSON = "", false
	versionJSON = false
}

func runCLI(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	app = nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestInspect_JSON(t *testing.T) {
	cfg := testConfig(t)

	out, err := runCLI(t, cfg, "inspect", "--json", "Home%7CExplorer,~Search$Log")
	require.NoError(t, err)

	var plan entity.RestorePlan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, "Home|Explorer,~Search$Log", plan.Token)
	assert.Equal(t, "Home", plan.PerspectiveID)
	assert.Equal(t, []string{"Explorer"}, plan.OpenScreens)
	assert.Equal(t, []string{"Search"}, plan.ClosedScreens)
	assert.Equal(t, []string{"Log"}, plan.OtherScreens)
}

func TestInspect_DoesNotOpenDatabase(t *testing.T) {
	cfg := testConfig(t)

	_, err := runCLI(t, cfg, "inspect", "a,b")
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.False(t, app.DatabaseOpened())
}

func TestBuild_StoresSessionSnapshot(t *testing.T) {
	cfg := testConfig(t)
	scriptPath := filepath.Join(t.TempDir(), "nav.yaml")
	require.NoError(t, os.WriteFile(scriptPath, []byte(`
session: 20251224_120000_cli1
events:
  - {action: open, kind: perspective, place: Home}
  - {action: open, kind: dock, place: Explorer, position: W, perspective: Home}
`), 0o644))

	out, err := runCLI(t, cfg, "build", "-f", scriptPath)
	require.NoError(t, err)
	assert.Equal(t, "Home|[WExplorer,]\n", out)

	out, err = runCLI(t, cfg, "sessions", "show", "--token", "20251224_120000_cli1")
	require.NoError(t, err)
	assert.Equal(t, "Home|[WExplorer,]\n", out)

	out, err = runCLI(t, cfg, "sessions", "list", "--json")
	require.NoError(t, err)
	var states []*entity.NavigationState
	require.NoError(t, json.Unmarshal([]byte(out), &states))
	require.Len(t, states, 1)
	assert.Equal(t, entity.SessionID("20251224_120000_cli1"), states[0].SessionID)

	_, err = runCLI(t, cfg, "sessions", "delete", "20251224_120000_cli1")
	require.NoError(t, err)
	_, err = runCLI(t, cfg, "sessions", "show", "20251224_120000_cli1")
	require.Error(t, err)
}

func TestBuild_History(t *testing.T) {
	cfg := testConfig(t)
	scriptPath := filepath.Join(t.TempDir(), "nav.yaml")
	require.NoError(t, os.WriteFile(scriptPath, []byte(`
events:
  - {action: open, kind: screen, place: a}
  - {action: open, kind: screen, place: b}
  - {action: close, kind: screen, place: a}
`), 0o644))

	out, err := runCLI(t, cfg, "build", "--no-snapshot", "--history", "-f", scriptPath)
	require.NoError(t, err)
	assert.Equal(t, "  1  a\n  2  a,b\n  3  ~a,b\n", out)
}

func TestBookmarks_SaveShowDelete(t *testing.T) {
	cfg := testConfig(t)

	_, err := runCLI(t, cfg, "bookmarks", "save", "work", "Home%7CExplorer")
	require.NoError(t, err)

	out, err := runCLI(t, cfg, "bookmarks", "list", "--json")
	require.NoError(t, err)
	var items []*entity.Bookmark
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Home|Explorer", items[0].Token)
	assert.Equal(t, "Home", items[0].PerspectiveID)

	out, err = runCLI(t, cfg, "bookmarks", "show", "work")
	require.NoError(t, err)
	assert.Contains(t, out, "Explorer")

	_, err = runCLI(t, cfg, "bookmarks", "delete", "work")
	require.NoError(t, err)
	_, err = runCLI(t, cfg, "bookmarks", "show", "work")
	require.Error(t, err)
}

func TestConfigKeys_UnknownSection(t *testing.T) {
	cfg := testConfig(t)

	_, err := runCLI(t, cfg, "config", "keys", "--section", "nope")
	require.Error(t, err)

	out, err := runCLI(t, cfg, "config", "keys", "--json", "--section", "snapshot")
	require.NoError(t, err)
	assert.Contains(t, out, "snapshot.interval_ms")
}

func TestVersion_JSON(t *testing.T) {
	SetBuildInfo(build.Info{Version: "1.2.3", Commit: "abc"})

	out, err := runCLI(t, testConfig(t), "version", "--json")
	require.NoError(t, err)

	var info build.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Nil(t, app)
}

func TestNeedsApp(t *testing.T) {
	assert.False(t, needsApp(versionCmd))
	assert.False(t, needsApp(configSchemaCmd))
	assert.True(t, needsApp(configKeysCmd))
	assert.True(t, needsApp(inspectCmd))
}

func TestConfigSchema_RunsWithoutApp(t *testing.T) {
	out, err := runCLI(t, testConfig(t), "config", "schema")
	require.NoError(t, err)
	assert.Nil(t, app)
	assert.Contains(t, out, "max_url_size")
}
