package styles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/workbench/navstate/internal/domain/entity"
)

// PlanRenderer renders a decoded token as a tree.
type PlanRenderer struct {
	theme *Theme
}

// NewPlanRenderer creates a new PlanRenderer.
func NewPlanRenderer(theme *Theme) *PlanRenderer {
	return &PlanRenderer{theme: theme}
}

// Render renders plan with the given indent prepended to every line.
func (r *PlanRenderer) Render(plan *entity.RestorePlan, indent string) string {
	t := r.theme
	if plan.IsEmpty() {
		return indent + t.Subtle.Render("(empty token)") + "\n"
	}

	var b strings.Builder
	line := func(icon, label, value string) {
		b.WriteString(indent)
		b.WriteString(t.Highlight.Render(icon))
		b.WriteString(" ")
		b.WriteString(t.Subtitle.Render(label))
		if value != "" {
			b.WriteString(" ")
			b.WriteString(value)
		}
		b.WriteString("\n")
	}
	item := func(value string, closed bool) {
		b.WriteString(indent)
		b.WriteString("   ")
		if closed {
			b.WriteString(t.Subtle.Render("○ " + value + " (closed)"))
		} else {
			b.WriteString(t.Normal.Render("● " + value))
		}
		b.WriteString("\n")
	}

	if plan.HasPerspective() {
		line(IconPerspective, "perspective", t.Normal.Render(plan.PerspectiveID))
	}

	if len(plan.OpenScreens)+len(plan.ClosedScreens) > 0 {
		line(IconScreen, "screens", "")
		for _, s := range plan.OpenScreens {
			item(s, false)
		}
		for _, s := range plan.ClosedScreens {
			item(s, true)
		}
	}

	if len(plan.OtherScreens) > 0 {
		line(IconScreen, "other screens", "")
		for _, s := range plan.OtherScreens {
			item(s, false)
		}
	}

	if len(plan.Docks) > 0 {
		line(IconDock, "docks", "")
		for _, d := range plan.Docks {
			item(fmt.Sprintf("[%s] %s", d.Position, d.ScreenID), d.Closed)
		}
	}

	if len(plan.Editors) > 0 {
		line(IconEditor, "editors", "")
		uris := make([]string, 0, len(plan.Editors))
		for uri := range plan.Editors {
			uris = append(uris, uri)
		}
		sort.Strings(uris)
		for _, uri := range uris {
			item(uri, false)
			params := plan.Editors[uri]
			keys := make([]string, 0, len(params))
			for k := range params {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				b.WriteString(indent)
				b.WriteString("       ")
				b.WriteString(t.Subtle.Render(k + "=" + params[k]))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
