package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/workbench/navstate/internal/application/port"
	"github.com/workbench/navstate/internal/logging"
)

// LazyDB opens the database on the first DB call. A failed open is sticky:
// later calls return the same error without retrying.
type LazyDB struct {
	path string

	mu      sync.Mutex
	tried   bool
	db      *sql.DB
	openErr error
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.tried {
		l.tried = true
		logging.FromContext(ctx).Debug().Str("path", l.path).Msg("opening database on first use")
		l.db, l.openErr = NewConnection(ctx, l.path)
		if l.openErr != nil {
			logging.FromContext(ctx).Error().Err(l.openErr).Str("path", l.path).Msg("database open failed")
		}
	}
	if l.openErr != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.openErr)
	}
	return l.db, nil
}

func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Close is a no-op when the database was never opened.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Close(l.db)
}

func (l *LazyDB) Path() string { return l.path }
