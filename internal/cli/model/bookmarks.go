// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/workbench/navstate/internal/application/usecase"
	"github.com/workbench/navstate/internal/cli/styles"
	"github.com/workbench/navstate/internal/domain/entity"
	"github.com/workbench/navstate/internal/logging"
)

// BookmarksModel is the Bubble Tea model for the interactive bookmark browser.
type BookmarksModel struct {
	help    help.Model
	keys    bookmarksKeyMap
	confirm *styles.ConfirmModel

	bookmarks     []*entity.Bookmark
	plans         map[string]*entity.RestorePlan
	selectedIdx   int
	expandedIdx   int // -1 means none expanded
	width         int
	height        int
	err           error
	statusMessage string
	maxListed     int

	// Selected is set when the user picks a bookmark with enter.
	Selected *entity.Bookmark

	ctx         context.Context
	bookmarksUC *usecase.ManageBookmarksUseCase
	decodeUC    *usecase.DecodeBookmarkUseCase
	theme       *styles.Theme
	planView    *styles.PlanRenderer
}

type bookmarksKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Expand  key.Binding
	Select  key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k bookmarksKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Expand, k.Select, k.Delete, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k bookmarksKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Expand},
		{k.Select, k.Delete, k.Refresh},
		{k.Help, k.Quit},
	}
}

func defaultBookmarksKeyMap() bookmarksKeyMap {
	return bookmarksKeyMap{
		Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Expand:  key.NewBinding(key.WithKeys("tab", " "), key.WithHelp("tab", "expand/collapse")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "print token")),
		Delete:  key.NewBinding(key.WithKeys("x", "d"), key.WithHelp("x", "delete")),
		Refresh: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "refresh")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// BookmarksModelConfig holds the dependencies of the bookmarks model.
type BookmarksModelConfig struct {
	BookmarksUC *usecase.ManageBookmarksUseCase
	DecodeUC    *usecase.DecodeBookmarkUseCase
	MaxListed   int
}

// NewBookmarksModel creates a new bookmark browser model.
func NewBookmarksModel(ctx context.Context, theme *styles.Theme, cfg BookmarksModelConfig) BookmarksModel {
	return BookmarksModel{
		help:        help.New(),
		keys:        defaultBookmarksKeyMap(),
		plans:       make(map[string]*entity.RestorePlan),
		expandedIdx: -1,
		width:       80,
		height:      24,
		maxListed:   cfg.MaxListed,
		ctx:         ctx,
		bookmarksUC: cfg.BookmarksUC,
		decodeUC:    cfg.DecodeUC,
		theme:       theme,
		planView:    styles.NewPlanRenderer(theme),
	}
}

// Init implements tea.Model.
func (m BookmarksModel) Init() tea.Cmd {
	return m.loadBookmarks
}

type bookmarksLoadedMsg struct {
	bookmarks []*entity.Bookmark
	err       error
}

// ListLimitMsg changes how many bookmarks are listed, e.g. after the config
// file was edited while the browser is open.
type ListLimitMsg struct {
	Limit int
}

type bookmarkDeletedMsg struct {
	name string
	err  error
}

func (m BookmarksModel) loadBookmarks() tea.Msg {
	if m.bookmarksUC == nil {
		return bookmarksLoadedMsg{err: fmt.Errorf("bookmark storage not available")}
	}

	items, err := m.bookmarksUC.List(m.ctx, m.maxListed)
	if err != nil {
		logging.FromContext(m.ctx).Error().Err(err).Msg("failed to load bookmarks")
		return bookmarksLoadedMsg{err: err}
	}
	return bookmarksLoadedMsg{bookmarks: items}
}

func (m BookmarksModel) deleteBookmark(name string) tea.Cmd {
	return func() tea.Msg {
		logging.FromContext(m.ctx).Info().Str("name", name).Msg("deleting bookmark")
		return bookmarkDeletedMsg{name: name, err: m.bookmarksUC.Delete(m.ctx, name)}
	}
}

// Update implements tea.Model.
func (m BookmarksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirmModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case bookmarksLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.bookmarks = msg.bookmarks
			m.plans = make(map[string]*entity.RestorePlan, len(msg.bookmarks))
			m.clampSelection()
		}
		return m, nil

	case ListLimitMsg:
		if msg.Limit == m.maxListed {
			return m, nil
		}
		m.maxListed = msg.Limit
		return m, m.loadBookmarks

	case bookmarkDeletedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.statusMessage = fmt.Sprintf("Bookmark %s deleted", msg.name)
			m.expandedIdx = -1
		}
		return m, m.loadBookmarks
	}

	return m, nil
}

func (m *BookmarksModel) clampSelection() {
	if m.selectedIdx >= len(m.bookmarks) {
		m.selectedIdx = max(len(m.bookmarks)-1, 0)
	}
}

func (m BookmarksModel) handleConfirmModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if !m.confirm.Done() {
		return m, cmd
	}

	if m.confirm.Result() && m.selectedIdx < len(m.bookmarks) {
		cmd = m.deleteBookmark(m.bookmarks[m.selectedIdx].Name)
	}
	m.confirm = nil
	return m, cmd
}

func (m BookmarksModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.bookmarks)-1 {
			m.selectedIdx++
		}

	case key.Matches(msg, m.keys.Expand):
		if len(m.bookmarks) == 0 {
			break
		}
		if m.expandedIdx == m.selectedIdx {
			m.expandedIdx = -1
			break
		}
		m.expandedIdx = m.selectedIdx
		m.decodeSelected()

	case key.Matches(msg, m.keys.Select):
		if m.selectedIdx < len(m.bookmarks) {
			m.Selected = m.bookmarks[m.selectedIdx]
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Delete):
		if m.selectedIdx < len(m.bookmarks) {
			confirm := styles.NewConfirm(m.theme, fmt.Sprintf("Delete bookmark %s?", m.bookmarks[m.selectedIdx].Name))
			m.confirm = &confirm
		}

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadBookmarks

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// decodeSelected caches the plan of the selected bookmark.
func (m *BookmarksModel) decodeSelected() {
	bm := m.bookmarks[m.selectedIdx]
	if _, ok := m.plans[bm.Name]; ok || m.decodeUC == nil {
		return
	}
	plan, err := m.decodeUC.Execute(m.ctx, bm.Token)
	if err != nil {
		m.statusMessage = fmt.Sprintf("Error: %v", err)
		return
	}
	m.plans[bm.Name] = plan
}

// View implements tea.Model.
func (m BookmarksModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	t := m.theme
	var b strings.Builder

	b.WriteString(t.Highlight.Render(styles.IconBookmark))
	b.WriteString(t.Title.MarginLeft(1).Render("Bookmarks"))
	b.WriteString(t.Subtle.Render(fmt.Sprintf("  %d saved", len(m.bookmarks))))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s Error: %v", styles.IconX, m.err)))
		b.WriteString("\n\n")
	}
	if m.statusMessage != "" {
		b.WriteString(t.Subtle.Render(m.statusMessage))
		b.WriteString("\n\n")
	}

	if len(m.bookmarks) == 0 {
		b.WriteString(t.Subtle.Render("  No bookmarks saved."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m BookmarksModel) renderList() string {
	t := m.theme
	var b strings.Builder

	for i, bm := range m.bookmarks {
		cursor := "  "
		nameStyle := t.Normal
		if i == m.selectedIdx {
			cursor = t.Highlight.Render(styles.IconCursor + " ")
			nameStyle = t.Highlight
		}
		expand := styles.IconExpand
		if i == m.expandedIdx {
			expand = styles.IconCollapse
		}

		perspective := ""
		if bm.PerspectiveID != "" {
			perspective = t.BadgeMuted.Render(bm.PerspectiveID) + "  "
		}

		fmt.Fprintf(&b, "%s%s  %s  %s%s\n",
			cursor,
			nameStyle.Render(bm.Name),
			t.Subtle.Render(expand),
			perspective,
			t.Subtle.Render(styles.IconClock+" "+styles.RelativeTime(bm.UpdatedAt)),
		)

		if i == m.expandedIdx {
			b.WriteString("      " + t.Subtle.Render(bm.Token) + "\n")
			if plan, ok := m.plans[bm.Name]; ok {
				b.WriteString(m.planView.Render(plan, "      "))
			}
		}
	}
	return b.String()
}
