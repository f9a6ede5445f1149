package port

import "github.com/workbench/navstate/internal/domain/entity"

// ConfigSchemaProvider describes the configuration keys.
type ConfigSchemaProvider interface {
	// GetSchema returns all configuration keys with their metadata.
	GetSchema() []entity.ConfigKeyInfo
}
