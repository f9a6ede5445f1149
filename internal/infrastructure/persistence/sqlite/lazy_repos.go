// Package sqlite stores bookmarks and navigation snapshots in SQLite.
//
// The Lazy* repositories defer opening the database to their first call, so
// commands that never touch storage never create the file.
package sqlite

import (
	"context"
	"database/sql"
	"sync"

	"github.com/workbench/navstate/internal/application/port"
	"github.com/workbench/navstate/internal/domain/entity"
	"github.com/workbench/navstate/internal/domain/repository"
)

// deferred builds a repository of type R the first time it is needed.
type deferred[R any] struct {
	provider port.DatabaseProvider
	build    func(*sql.DB) R

	once sync.Once
	repo R
	err  error
}

func (d *deferred[R]) get(ctx context.Context) (R, error) {
	d.once.Do(func() {
		var db *sql.DB
		if db, d.err = d.provider.DB(ctx); d.err == nil {
			d.repo = d.build(db)
		}
	})
	return d.repo, d.err
}

type LazyBookmarkRepository struct {
	deferred[repository.BookmarkRepository]
}

func NewLazyBookmarkRepository(provider port.DatabaseProvider) repository.BookmarkRepository {
	return &LazyBookmarkRepository{deferred[repository.BookmarkRepository]{
		provider: provider,
		build:    func(db *sql.DB) repository.BookmarkRepository { return NewBookmarkRepository(db) },
	}}
}

func (r *LazyBookmarkRepository) Save(ctx context.Context, b *entity.Bookmark) error {
	repo, err := r.get(ctx)
	if err != nil {
		return err
	}
	return repo.Save(ctx, b)
}

func (r *LazyBookmarkRepository) FindByName(ctx context.Context, name string) (*entity.Bookmark, error) {
	repo, err := r.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.FindByName(ctx, name)
}

func (r *LazyBookmarkRepository) List(ctx context.Context, limit int) ([]*entity.Bookmark, error) {
	repo, err := r.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.List(ctx, limit)
}

func (r *LazyBookmarkRepository) Delete(ctx context.Context, name string) error {
	repo, err := r.get(ctx)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, name)
}

type LazyNavigationStateRepository struct {
	deferred[repository.NavigationStateRepository]
}

func NewLazyNavigationStateRepository(provider port.DatabaseProvider) repository.NavigationStateRepository {
	return &LazyNavigationStateRepository{deferred[repository.NavigationStateRepository]{
		provider: provider,
		build:    func(db *sql.DB) repository.NavigationStateRepository { return NewNavigationStateRepository(db) },
	}}
}

func (r *LazyNavigationStateRepository) SaveState(ctx context.Context, state *entity.NavigationState) error {
	repo, err := r.get(ctx)
	if err != nil {
		return err
	}
	return repo.SaveState(ctx, state)
}

func (r *LazyNavigationStateRepository) GetState(ctx context.Context, id entity.SessionID) (*entity.NavigationState, error) {
	repo, err := r.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.GetState(ctx, id)
}

func (r *LazyNavigationStateRepository) GetLatest(ctx context.Context) (*entity.NavigationState, error) {
	repo, err := r.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.GetLatest(ctx)
}

func (r *LazyNavigationStateRepository) ListStates(ctx context.Context, limit int) ([]*entity.NavigationState, error) {
	repo, err := r.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.ListStates(ctx, limit)
}

func (r *LazyNavigationStateRepository) DeleteState(ctx context.Context, id entity.SessionID) error {
	repo, err := r.get(ctx)
	if err != nil {
		return err
	}
	return repo.DeleteState(ctx, id)
}
