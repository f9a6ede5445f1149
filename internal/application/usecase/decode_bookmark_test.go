package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workbench/navstate/internal/application/usecase"
	"github.com/workbench/navstate/internal/domain/entity"
)

func TestDecodeBookmarkUseCase_Execute(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewDecodeBookmarkUseCase()

	raw := "Widgets%7CExplorer,~Outline,!Props[WDockScreen,!ELog,]$Search," +
		"Editor?path_uri=default%3A%2F%2Frepo%2Fa.txt&file_name=a.txt&has_version_support=false&name==A"

	plan, err := uc.Execute(ctx, raw)
	require.NoError(t, err)

	assert.Equal(t, "Widgets", plan.PerspectiveID)
	assert.Equal(t, []string{"Explorer", "!Props"}, plan.OpenScreens)
	assert.Equal(t, []string{"Outline"}, plan.ClosedScreens)
	assert.Equal(t, []string{"Search"}, plan.OtherScreens)
	assert.Equal(t, []entity.DockState{
		{Position: entity.DockWest, ScreenID: "DockScreen"},
		{Position: entity.DockEast, ScreenID: "Log", Closed: true},
	}, plan.Docks)
	assert.Equal(t, map[string]map[string]string{
		"default://repo/a.txt": {entity.FileNameMarker: "a.txt", "name": "A"},
	}, plan.Editors)
}

func TestDecodeBookmarkUseCase_SingleScreenIsPerspective(t *testing.T) {
	plan, err := usecase.NewDecodeBookmarkUseCase().Execute(testContext(), "soloPerspective")
	require.NoError(t, err)

	assert.Equal(t, "soloPerspective", plan.PerspectiveID)
	assert.Empty(t, plan.OpenScreens)
	assert.True(t, plan.HasPerspective())
}

func TestDecodeBookmarkUseCase_NoPerspective(t *testing.T) {
	plan, err := usecase.NewDecodeBookmarkUseCase().Execute(testContext(), "a,~b,c")
	require.NoError(t, err)

	assert.False(t, plan.HasPerspective())
	assert.Equal(t, []string{"a", "c"}, plan.OpenScreens)
	assert.Equal(t, []string{"b"}, plan.ClosedScreens)
}

func TestDecodeBookmarkUseCase_Blank(t *testing.T) {
	plan, err := usecase.NewDecodeBookmarkUseCase().Execute(testContext(), "   ")
	require.NoError(t, err)
	assert.True(t, plan.IsEmpty())
}

func TestDecodeBookmarkUseCase_InvalidPerspective(t *testing.T) {
	_, err := usecase.NewDecodeBookmarkUseCase().Execute(testContext(), "a=b|screen1")
	require.ErrorIs(t, err, usecase.ErrInvalidPerspective)
}

func TestDecodeBookmarkUseCase_TrackedEditorWithSeparatorsInURI(t *testing.T) {
	ctx := testContext()
	var pushed []string
	tracker := usecase.NewTrackNavigationUseCase(recordingHistorian(t, &pushed), usecase.TrackNavigationConfig{})

	editor := entity.NewPathPlaceRequest("Editor", entity.Path{URI: "default://repo/a,b$c.txt", FileName: "c.txt"}).
		AddParameter("name", "A")
	require.NoError(t, tracker.RegisterOpen(ctx, entity.PartPerspective, entity.NewPlaceRequest("Home"), false))
	require.NoError(t, tracker.RegisterOpen(ctx, entity.PartEditor, editor, false))

	token := tracker.Token()
	uc := usecase.NewDecodeBookmarkUseCase()
	for _, raw := range []string{token, strings.Replace(token, "|", "%7C", 1)} {
		plan, err := uc.Execute(ctx, raw)
		require.NoError(t, err, raw)

		assert.Equal(t, "Home", plan.PerspectiveID)
		assert.Empty(t, plan.OpenScreens)
		assert.Empty(t, plan.OtherScreens)
		assert.Equal(t, map[string]map[string]string{
			"default://repo/a,b$c.txt": {entity.FileNameMarker: "c.txt", "name": "A"},
		}, plan.Editors)
	}
}

func TestDecodeBookmarkUseCase_PerspectiveWithParameters(t *testing.T) {
	ctx := testContext()
	var pushed []string
	tracker := usecase.NewTrackNavigationUseCase(recordingHistorian(t, &pushed), usecase.TrackNavigationConfig{})

	require.NoError(t, tracker.RegisterOpen(ctx, entity.PartScreen, entity.NewPlaceRequest("Explorer"), false))
	require.NoError(t, tracker.RegisterOpen(ctx, entity.PartPerspective,
		entity.NewPlaceRequest("Home").AddParameter("mode", "edit"), false))
	require.Equal(t, "Home?mode=edit|Explorer", tracker.Token())

	plan, err := usecase.NewDecodeBookmarkUseCase().Execute(ctx, tracker.Token())
	require.NoError(t, err)
	assert.Equal(t, "Home?mode=edit", plan.PerspectiveID)
	assert.Equal(t, []string{"Explorer"}, plan.OpenScreens)
}
