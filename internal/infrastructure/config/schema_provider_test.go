package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaProvider_CoversEveryKey(t *testing.T) {
	keys := NewSchemaProvider().GetSchema()

	got := make(map[string]string, len(keys))
	for _, k := range keys {
		assert.NotEmpty(t, k.Description, k.Key)
		assert.NotEmpty(t, k.Section, k.Key)
		got[k.Key] = k.Default
	}

	assert.Equal(t, "1900", got["navigation.max_url_size"])
	assert.Equal(t, "info", got["logging.level"])
	assert.Equal(t, "true", got["snapshot.enabled"])
	for _, key := range []string{
		"logging.format", "database.path", "navigation.default_place",
		"snapshot.interval_ms", "snapshot.max_states", "bookmarks.max_listed",
	} {
		assert.Contains(t, got, key)
	}
}

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "navstate configuration", doc["title"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "navigation")
	assert.Contains(t, props, "snapshot")
}
