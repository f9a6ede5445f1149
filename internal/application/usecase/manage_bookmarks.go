package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/workbench/navstate/internal/domain/bookmark"
	"github.com/workbench/navstate/internal/domain/entity"
	"github.com/workbench/navstate/internal/domain/repository"
	"github.com/workbench/navstate/internal/logging"
)

// ErrBookmarkNotFound is returned when no bookmark has the requested name.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// ManageBookmarksUseCase handles named bookmark operations.
type ManageBookmarksUseCase struct {
	bookmarkRepo repository.BookmarkRepository
}

// NewManageBookmarksUseCase creates a new bookmark management use case.
func NewManageBookmarksUseCase(bookmarkRepo repository.BookmarkRepository) *ManageBookmarksUseCase {
	return &ManageBookmarksUseCase{bookmarkRepo: bookmarkRepo}
}

// SaveBookmarkInput contains parameters for saving a bookmark.
type SaveBookmarkInput struct {
	Name  string
	Token string
}

// Save stores a token under a name, replacing the token of an existing
// bookmark with the same name. The token is percent-decoded first.
func (uc *ManageBookmarksUseCase) Save(ctx context.Context, input SaveBookmarkInput) (*entity.Bookmark, error) {
	log := logging.FromContext(ctx)

	token := bookmark.Decode(strings.TrimSpace(input.Token))
	b := entity.NewBookmark(input.Name, token)
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("save bookmark %q: %w", input.Name, err)
	}
	if len(token) >= bookmark.MaxNavURLSize {
		return nil, fmt.Errorf("save bookmark %q: token is %d bytes, limit is %d: %w",
			b.Name, len(token), bookmark.MaxNavURLSize, entity.ErrInvalidBookmark)
	}
	if perspective, ok := bookmark.GetPerspectiveFromURL(token); ok {
		b.PerspectiveID = perspective
	}

	existing, err := uc.bookmarkRepo.FindByName(ctx, b.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing bookmark: %w", err)
	}
	if existing != nil {
		b.CreatedAt = existing.CreatedAt
		b.UpdatedAt = time.Now().UTC()
	}

	if err := uc.bookmarkRepo.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to save bookmark: %w", err)
	}

	log.Info().
		Str("name", b.Name).
		Str("perspective", b.PerspectiveID).
		Bool("replaced", existing != nil).
		Msg("bookmark saved")
	return b, nil
}

// Get returns a bookmark by name.
func (uc *ManageBookmarksUseCase) Get(ctx context.Context, name string) (*entity.Bookmark, error) {
	b, err := uc.bookmarkRepo.FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("failed to find bookmark: %w", err)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: %q", ErrBookmarkNotFound, name)
	}
	return b, nil
}

// List returns bookmarks, most recently updated first.
func (uc *ManageBookmarksUseCase) List(ctx context.Context, limit int) ([]*entity.Bookmark, error) {
	bookmarks, err := uc.bookmarkRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	logging.FromContext(ctx).Debug().Int("count", len(bookmarks)).Msg("bookmarks listed")
	return bookmarks, nil
}

// Delete removes a bookmark by name.
func (uc *ManageBookmarksUseCase) Delete(ctx context.Context, name string) error {
	log := logging.FromContext(ctx)

	b, err := uc.Get(ctx, name)
	if err != nil {
		return err
	}
	if err := uc.bookmarkRepo.Delete(ctx, b.Name); err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	log.Info().Str("name", b.Name).Msg("bookmark deleted")
	return nil
}
