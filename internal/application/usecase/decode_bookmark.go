package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/workbench/navstate/internal/domain/bookmark"
	"github.com/workbench/navstate/internal/domain/entity"
	"github.com/workbench/navstate/internal/logging"
)

// ErrInvalidPerspective is returned when a token names a perspective that
// cannot be a screen identifier.
var ErrInvalidPerspective = errors.New("invalid perspective")

// DecodeBookmarkUseCase turns an address bar value into a restore plan.
type DecodeBookmarkUseCase struct{}

// NewDecodeBookmarkUseCase creates a new DecodeBookmarkUseCase.
func NewDecodeBookmarkUseCase() *DecodeBookmarkUseCase {
	return &DecodeBookmarkUseCase{}
}

// Execute percent-decodes raw and splits the token into what has to be
// opened. A blank value yields an empty plan. Editors are keyed by their
// unescaped path URI.
func (uc *DecodeBookmarkUseCase) Execute(ctx context.Context, raw string) (*entity.RestorePlan, error) {
	token := bookmark.Decode(strings.TrimSpace(raw))
	plan := &entity.RestorePlan{
		Token:         token,
		OpenScreens:   []string{},
		ClosedScreens: []string{},
		OtherScreens:  []string{},
		Docks:         []entity.DockState{},
		Editors:       map[string]map[string]string{},
	}
	if token == "" {
		return plan, nil
	}

	perspective, ok := bookmark.GetPerspectiveFromURL(token)
	if ok {
		// parameters ride along with the perspective; only its name must be a screen id
		if !bookmark.IsValidScreen(bookmark.ParseScreenEntry(perspective).Name()) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPerspective, perspective)
		}
		plan.PerspectiveID = perspective
	}

	// A bare screen id is the perspective itself.
	if ok && !bookmark.IsPerspectiveInURL(token) {
		return plan, nil
	}

	for _, screen := range bookmark.GetOpenedScreensFromURL(token) {
		if strings.Contains(screen, bookmark.PathURIMarker+"=") {
			continue
		}
		if bookmark.IsPerspectiveScreen(token, screen) {
			plan.OpenScreens = append(plan.OpenScreens, screen)
		} else {
			plan.OtherScreens = append(plan.OtherScreens, screen)
		}
	}
	plan.ClosedScreens = append(plan.ClosedScreens, bookmark.GetClosedScreensFromURL(token)...)
	plan.Docks = append(plan.Docks, bookmark.GetDocksFromURL(token)...)
	for uri, args := range bookmark.GetOpenedEditorsFromURL(token) {
		if unescaped, err := url.QueryUnescape(uri); err == nil {
			uri = unescaped
		}
		plan.Editors[uri] = args
	}

	logging.FromContext(ctx).Debug().
		Str("perspective", plan.PerspectiveID).
		Int("open", len(plan.OpenScreens)).
		Int("closed", len(plan.ClosedScreens)).
		Int("other", len(plan.OtherScreens)).
		Int("docks", len(plan.Docks)).
		Int("editors", len(plan.Editors)).
		Msg("bookmark decoded")

	return plan, nil
}
