package config

import (
	"fmt"

	"github.com/workbench/navstate/internal/application/port"
	"github.com/workbench/navstate/internal/domain/bookmark"
	"github.com/workbench/navstate/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionLogging    = "Logging"
	SectionDatabase   = "Database"
	SectionNavigation = "Navigation"
	SectionSnapshot   = "Snapshot"
	SectionBookmarks  = "Bookmarks"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

var _ port.ConfigSchemaProvider = (*SchemaProvider)(nil)

func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema lists every configuration key with its default, grouped by
// section in file order.
func (*SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	d := DefaultConfig()
	itoa := func(n int) string { return fmt.Sprintf("%d", n) }

	return []entity.ConfigKeyInfo{
		{Section: SectionLogging, Key: "logging.level", Type: "string", Default: d.Logging.Level,
			Description: "Log verbosity level", Values: []string{"trace", "debug", "info", "warn", "error"}},
		{Section: SectionLogging, Key: "logging.format", Type: "string", Default: d.Logging.Format,
			Description: "Log output format", Values: []string{"console", "json"}},

		{Section: SectionDatabase, Key: "database.path", Type: "string", Default: "$XDG_DATA_HOME/navstate/" + databaseName,
			Description: "SQLite file holding bookmarks and session snapshots"},

		{Section: SectionNavigation, Key: "navigation.max_url_size", Type: "int", Default: itoa(d.Navigation.MaxURLSize),
			Description: "Token length at which the token is truncated", Range: fmt.Sprintf("1-%d", bookmark.MaxNavURLSize)},
		{Section: SectionNavigation, Key: "navigation.default_place", Type: "string", Default: d.Navigation.DefaultPlace,
			Description: "Place published as the empty token"},

		{Section: SectionSnapshot, Key: "snapshot.enabled", Type: "bool", Default: fmt.Sprintf("%t", d.Snapshot.Enabled),
			Description: "Persist the session token while replaying scripts"},
		{Section: SectionSnapshot, Key: "snapshot.interval_ms", Type: "int", Default: itoa(d.Snapshot.IntervalMs),
			Description: "Debounce interval between snapshot writes", Range: ">=0"},
		{Section: SectionSnapshot, Key: "snapshot.max_states", Type: "int", Default: itoa(d.Snapshot.MaxStates),
			Description: "Number of session snapshots listed", Range: ">=0"},

		{Section: SectionBookmarks, Key: "bookmarks.max_listed", Type: "int", Default: itoa(d.Bookmarks.MaxListed),
			Description: "Maximum bookmarks listed (0 for all)", Range: ">=0"},
	}
}
