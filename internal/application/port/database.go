package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the shared navstate database. Opening may be
// deferred to the first DB call, so callers must not assume the file exists.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
	// IsInitialized reports whether DB has opened the database successfully.
	IsInitialized() bool
}
