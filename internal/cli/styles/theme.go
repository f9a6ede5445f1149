// Package styles renders navstate output with lipgloss.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the set of colors and styles shared by every renderer. Colors
// adapt to the terminal background.
type Theme struct {
	Background     lipgloss.AdaptiveColor
	Surface        lipgloss.AdaptiveColor
	SurfaceVariant lipgloss.AdaptiveColor
	Text           lipgloss.AdaptiveColor
	Muted          lipgloss.AdaptiveColor
	Accent         lipgloss.AdaptiveColor
	Border         lipgloss.AdaptiveColor
	Error          lipgloss.AdaptiveColor
	Warning        lipgloss.AdaptiveColor
	Success        lipgloss.AdaptiveColor

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	ActiveButton   lipgloss.Style
	InactiveButton lipgloss.Style
	Badge          lipgloss.Style
	BadgeMuted     lipgloss.Style
	Box            lipgloss.Style
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func NewTheme() *Theme {
	t := &Theme{
		Background:     adaptive("#fafafa", "#0a0a0b"),
		Surface:        adaptive("#eeeeee", "#1a1a1b"),
		SurfaceVariant: adaptive("#dddddd", "#2d2d2d"),
		Text:           adaptive("#111111", "#ffffff"),
		Muted:          adaptive("#6b6b6b", "#909090"),
		Accent:         adaptive("#15803d", "#4ade80"),
		Border:         adaptive("#c4c4c4", "#333333"),
		Error:          adaptive("#b91c1c", "#ef4444"),
		Warning:        adaptive("#b45309", "#f59e0b"),
	}
	t.Success = t.Accent

	fg := func(c lipgloss.TerminalColor) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	pill := func(f, b lipgloss.TerminalColor, pad int) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(f).Background(b).Padding(0, pad)
	}

	t.Title = fg(t.Text).Bold(true)
	t.Subtitle = fg(t.Muted).Bold(true)
	t.Normal = fg(t.Text)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(t.Error)
	t.WarningStyle = fg(t.Warning)
	t.SuccessStyle = fg(t.Success)

	t.ActiveButton = pill(t.Background, t.Accent, 2).Bold(true)
	t.InactiveButton = pill(t.Muted, t.Surface, 2)
	t.Badge = pill(t.Background, t.Accent, 1)
	t.BadgeMuted = pill(t.Text, t.SurfaceVariant, 1)
	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
	return t
}
