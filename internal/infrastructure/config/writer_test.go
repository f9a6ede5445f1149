package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionHeaders(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	return sections
}

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"[bookmarks]",
		"[database]",
		"[logging]",
		"[navigation]",
		"[snapshot]",
	}, sectionHeaders(string(content)))
	assert.Contains(t, string(content), "max_url_size = 1900")
}

func TestWriteConfigOrdered_Nil(t *testing.T) {
	require.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml")))
}

func TestSortTOMLSections(t *testing.T) {
	input := `title = 'x'

[snapshot]
interval_ms = 10

[logging]
level = 'info'

[logging.extra]
a = 1
`

	result := sortTOMLSections(input)

	assert.Equal(t, []string{"[logging]", "[logging.extra]", "[snapshot]"}, sectionHeaders(result))
	assert.True(t, strings.HasPrefix(result, "title = 'x'\n\n[logging]"))
	assert.True(t, strings.HasSuffix(result, "interval_ms = 10\n"))
}
