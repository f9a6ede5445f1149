package styles

import (
	"fmt"
	"strings"

	"github.com/workbench/navstate/internal/domain/entity"
)

// BookmarksCLIRenderer renders non-interactive output for the bookmarks subcommands.
type BookmarksCLIRenderer struct {
	theme *Theme
	plans *PlanRenderer
}

// NewBookmarksCLIRenderer creates a new BookmarksCLIRenderer.
func NewBookmarksCLIRenderer(theme *Theme) *BookmarksCLIRenderer {
	return &BookmarksCLIRenderer{theme: theme, plans: NewPlanRenderer(theme)}
}

// RenderList renders one line per bookmark.
func (r *BookmarksCLIRenderer) RenderList(items []*entity.Bookmark) string {
	t := r.theme
	if len(items) == 0 {
		return t.Subtle.Render("No bookmarks saved.")
	}

	width := 0
	for _, b := range items {
		width = max(width, len(b.Name))
	}

	var b strings.Builder
	b.WriteString(t.Highlight.Render(IconBookmark) + " " + t.Title.Render("Bookmarks"))
	b.WriteString(t.Subtle.Render(fmt.Sprintf(" (%d)", len(items))))
	b.WriteString("\n\n")

	for _, bm := range items {
		fmt.Fprintf(&b, "  %s  %s  %s\n",
			t.Highlight.Render(fmt.Sprintf("%-*s", width, bm.Name)),
			t.Normal.Render(bm.Token),
			t.Subtle.Render(RelativeTime(bm.UpdatedAt)),
		)
	}
	return b.String()
}

// RenderBookmark renders a bookmark with its decoded plan.
func (r *BookmarksCLIRenderer) RenderBookmark(bm *entity.Bookmark, plan *entity.RestorePlan) string {
	t := r.theme
	var b strings.Builder

	b.WriteString(t.Highlight.Render(IconBookmark) + " " + t.Title.Render(bm.Name) + "\n")
	b.WriteString("  " + t.Subtle.Render("token   ") + t.Normal.Render(bm.Token) + "\n")
	b.WriteString("  " + t.Subtle.Render("updated ") + t.Normal.Render(RelativeTime(bm.UpdatedAt)) + "\n\n")
	b.WriteString(r.plans.Render(plan, "  "))
	return b.String()
}

// RenderSaved confirms a save.
func (r *BookmarksCLIRenderer) RenderSaved(bm *entity.Bookmark) string {
	return r.theme.SuccessStyle.Render(IconCheck) + " " +
		r.theme.Normal.Render(fmt.Sprintf("Saved bookmark %q (%d bytes)", bm.Name, len(bm.Token)))
}

// RenderDeleted confirms a delete.
func (r *BookmarksCLIRenderer) RenderDeleted(name string) string {
	return r.theme.SuccessStyle.Render(IconCheck) + " " +
		r.theme.Normal.Render(fmt.Sprintf("Deleted bookmark %q", name))
}

// RenderError renders an error line.
func (r *BookmarksCLIRenderer) RenderError(err error) string {
	return r.theme.ErrorStyle.Render(IconX + " " + err.Error())
}
