package repository

import (
	"context"

	"github.com/workbench/navstate/internal/domain/entity"
)

// BookmarkRepository persists named bookmark tokens.
type BookmarkRepository interface {
	// Save inserts a bookmark or replaces the token of an existing one with
	// the same name. CreatedAt of an existing bookmark is preserved.
	Save(ctx context.Context, bookmark *entity.Bookmark) error

	// FindByName returns nil (and no error) when no bookmark has that name.
	FindByName(ctx context.Context, name string) (*entity.Bookmark, error)

	// List returns bookmarks, most recently updated first.
	// A limit <= 0 returns all of them.
	List(ctx context.Context, limit int) ([]*entity.Bookmark, error)

	Delete(ctx context.Context, name string) error
}
