package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/workbench/navstate/internal/domain/entity"
	"github.com/workbench/navstate/internal/domain/repository"
	"github.com/workbench/navstate/internal/logging"
)

const (
	upsertNavigationState = `
INSERT INTO navigation_states (session_id, version, token, saved_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(session_id) DO UPDATE SET
    version = excluded.version,
    token = excluded.token,
    saved_at = excluded.saved_at`

	selectNavigationState = `
SELECT session_id, version, token, saved_at
FROM navigation_states WHERE session_id = ?`

	selectLatestNavigationState = `
SELECT session_id, version, token, saved_at
FROM navigation_states ORDER BY saved_at DESC, session_id DESC LIMIT 1`

	listNavigationStates = `
SELECT session_id, version, token, saved_at
FROM navigation_states ORDER BY saved_at DESC, session_id DESC LIMIT ?`

	deleteNavigationState = `DELETE FROM navigation_states WHERE session_id = ?`
)

type navigationStateRepo struct {
	db *sql.DB
}

// NewNavigationStateRepository creates a new SQLite-backed navigation state repository.
func NewNavigationStateRepository(db *sql.DB) repository.NavigationStateRepository {
	return &navigationStateRepo{db: db}
}

func (r *navigationStateRepo) SaveState(ctx context.Context, state *entity.NavigationState) error {
	if err := state.Validate(); err != nil {
		return fmt.Errorf("save navigation state: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Str("session_id", string(state.SessionID)).
		Int("token_len", len(state.Token)).
		Msg("saving navigation state")

	_, err := r.db.ExecContext(ctx, upsertNavigationState,
		string(state.SessionID), state.Version, state.Token, toMillis(state.SavedAt))
	if err != nil {
		return fmt.Errorf("upsert navigation state: %w", err)
	}
	return nil
}

func (r *navigationStateRepo) GetState(ctx context.Context, sessionID entity.SessionID) (*entity.NavigationState, error) {
	return r.getOne(ctx, selectNavigationState, string(sessionID))
}

func (r *navigationStateRepo) GetLatest(ctx context.Context) (*entity.NavigationState, error) {
	return r.getOne(ctx, selectLatestNavigationState)
}

func (r *navigationStateRepo) getOne(ctx context.Context, query string, args ...any) (*entity.NavigationState, error) {
	state, err := scanNavigationState(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get navigation state: %w", err)
	}
	return state, nil
}

func (r *navigationStateRepo) ListStates(ctx context.Context, limit int) ([]*entity.NavigationState, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, listNavigationStates, limit)
	if err != nil {
		return nil, fmt.Errorf("list navigation states: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*entity.NavigationState
	for rows.Next() {
		state, err := scanNavigationState(rows)
		if err != nil {
			return nil, fmt.Errorf("scan navigation state: %w", err)
		}
		out = append(out, state)
	}
	return out, rows.Err()
}

func (r *navigationStateRepo) DeleteState(ctx context.Context, sessionID entity.SessionID) error {
	logging.FromContext(ctx).Debug().Str("session_id", string(sessionID)).Msg("deleting navigation state")
	if _, err := r.db.ExecContext(ctx, deleteNavigationState, string(sessionID)); err != nil {
		return fmt.Errorf("delete navigation state: %w", err)
	}
	return nil
}

func scanNavigationState(row rowScanner) (*entity.NavigationState, error) {
	var (
		state     entity.NavigationState
		sessionID string
		savedAt   int64
	)
	if err := row.Scan(&sessionID, &state.Version, &state.Token, &savedAt); err != nil {
		return nil, err
	}
	state.SessionID = entity.SessionID(sessionID)
	state.SavedAt = fromMillis(savedAt)
	return &state, nil
}
