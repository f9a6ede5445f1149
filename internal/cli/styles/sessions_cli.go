package styles

import (
	"fmt"
	"strings"

	"github.com/workbench/navstate/internal/domain/entity"
)

// SessionsCLIRenderer renders non-interactive output for the sessions subcommands.
type SessionsCLIRenderer struct {
	theme *Theme
	plans *PlanRenderer
}

// NewSessionsCLIRenderer creates a new SessionsCLIRenderer.
func NewSessionsCLIRenderer(theme *Theme) *SessionsCLIRenderer {
	return &SessionsCLIRenderer{theme: theme, plans: NewPlanRenderer(theme)}
}

// RenderList renders one line per saved session token.
func (r *SessionsCLIRenderer) RenderList(states []*entity.NavigationState, limit int) string {
	t := r.theme
	if len(states) == 0 {
		return t.Subtle.Render("No saved sessions found.")
	}

	var b strings.Builder
	b.WriteString(t.Highlight.Render(IconSession) + " " + t.Title.Render("Sessions"))
	if limit > 0 {
		b.WriteString(t.Subtle.Render(fmt.Sprintf(" (showing up to %d)", limit)))
	}
	b.WriteString("\n\n")

	for _, s := range states {
		token := s.Token
		if token == "" {
			token = t.Subtle.Render("(empty)")
		}
		fmt.Fprintf(&b, "  %s  %s  %s\n",
			t.Highlight.Render(string(s.SessionID)),
			t.Subtle.Render(IconClock+" "+RelativeTime(s.SavedAt)),
			t.Normal.Render(token),
		)
	}
	return b.String()
}

// RenderState renders one session token with its decoded plan.
func (r *SessionsCLIRenderer) RenderState(state *entity.NavigationState, plan *entity.RestorePlan) string {
	t := r.theme
	var b strings.Builder

	b.WriteString(t.Highlight.Render(IconSession) + " " + t.Title.Render(string(state.SessionID)) + "\n")
	b.WriteString("  " + t.Subtle.Render("saved   ") + t.Normal.Render(RelativeTime(state.SavedAt)) + "\n")
	b.WriteString("  " + t.Subtle.Render("version ") + t.Normal.Render(fmt.Sprintf("%d", state.Version)) + "\n")
	b.WriteString("  " + t.Subtle.Render("token   ") + t.Normal.Render(state.Token) + "\n\n")
	b.WriteString(r.plans.Render(plan, "  "))
	return b.String()
}
