package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/workbench/navstate/internal/domain/entity"
	"github.com/workbench/navstate/internal/domain/repository"
	"github.com/workbench/navstate/internal/logging"
)

const (
	upsertBookmark = `
INSERT INTO bookmarks (name, token, perspective_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    token = excluded.token,
    perspective_id = excluded.perspective_id,
    updated_at = excluded.updated_at`

	selectBookmark = `
SELECT name, token, perspective_id, created_at, updated_at
FROM bookmarks WHERE name = ?`

	listBookmarks = `
SELECT name, token, perspective_id, created_at, updated_at
FROM bookmarks ORDER BY updated_at DESC, name ASC LIMIT ?`

	deleteBookmark = `DELETE FROM bookmarks WHERE name = ?`
)

type bookmarkRepo struct {
	db *sql.DB
}

// NewBookmarkRepository creates a new SQLite-backed bookmark repository.
func NewBookmarkRepository(db *sql.DB) repository.BookmarkRepository {
	return &bookmarkRepo{db: db}
}

func (r *bookmarkRepo) Save(ctx context.Context, b *entity.Bookmark) error {
	if b == nil {
		return errors.New("bookmark cannot be nil")
	}
	logging.FromContext(ctx).Debug().Str("name", b.Name).Msg("saving bookmark")

	_, err := r.db.ExecContext(ctx, upsertBookmark,
		b.Name, b.Token, b.PerspectiveID, toMillis(b.CreatedAt), toMillis(b.UpdatedAt))
	if err != nil {
		return fmt.Errorf("upsert bookmark %q: %w", b.Name, err)
	}
	return nil
}

func (r *bookmarkRepo) FindByName(ctx context.Context, name string) (*entity.Bookmark, error) {
	b, err := scanBookmark(r.db.QueryRowContext(ctx, selectBookmark, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get bookmark %q: %w", name, err)
	}
	return b, nil
}

func (r *bookmarkRepo) List(ctx context.Context, limit int) ([]*entity.Bookmark, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := r.db.QueryContext(ctx, listBookmarks, limit)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*entity.Bookmark
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *bookmarkRepo) Delete(ctx context.Context, name string) error {
	logging.FromContext(ctx).Debug().Str("name", name).Msg("deleting bookmark")
	if _, err := r.db.ExecContext(ctx, deleteBookmark, name); err != nil {
		return fmt.Errorf("delete bookmark %q: %w", name, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookmark(row rowScanner) (*entity.Bookmark, error) {
	var (
		b                entity.Bookmark
		created, updated int64
	)
	if err := row.Scan(&b.Name, &b.Token, &b.PerspectiveID, &created, &updated); err != nil {
		return nil, err
	}
	b.CreatedAt = fromMillis(created)
	b.UpdatedAt = fromMillis(updated)
	return &b, nil
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return time.Now().UnixMilli()
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
