package styles

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestConfirmModel_YesThenEnter(t *testing.T) {
	m := NewConfirm(NewTheme(), "Delete bookmark?")
	assert.False(t, m.Yes)

	m, _ = m.Update(runeKey('y'))
	assert.False(t, m.Done())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Done())
	assert.True(t, m.Result())
}

func TestConfirmModel_Cancel(t *testing.T) {
	m := NewConfirm(NewTheme(), "Delete bookmark?")

	m, _ = m.Update(runeKey('y'))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.Done())
	assert.False(t, m.Result())
}

func TestConfirmModel_ViewShowsMessage(t *testing.T) {
	m := NewConfirm(NewTheme(), "Delete bookmark home?")

	view := m.View()
	assert.Contains(t, view, "Delete bookmark home?")
	assert.Contains(t, view, "Yes")
	assert.Contains(t, view, "No")
}
