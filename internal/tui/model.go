// Package tui is the interactive dashboard: a header with the active child, a tab bar,
// one screen per tab and the switcher, card detail and image editor overlays.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lumibot/internal/dataset"
	"github.com/julianstephens/lumibot/internal/imagegen"
	"github.com/julianstephens/lumibot/internal/logger"
	"github.com/julianstephens/lumibot/internal/models"
	"github.com/julianstephens/lumibot/internal/selection"
	"github.com/julianstephens/lumibot/internal/tui/components/home"
	"github.com/julianstephens/lumibot/internal/tui/components/imageeditor"
	"github.com/julianstephens/lumibot/internal/tui/components/insights"
	"github.com/julianstephens/lumibot/internal/tui/components/settings"
	"github.com/julianstephens/lumibot/internal/tui/components/shares"
	"github.com/julianstephens/lumibot/internal/tui/components/switcher"
)

type Model struct {
	store       *selection.Store
	children    dataset.Provider
	state       selection.State // last snapshot pushed into the screens
	child       models.Child
	keys        KeyMap
	help        help.Model
	home        home.Model
	shares      shares.Model
	insights    insights.Model
	settings    settings.Model
	switcher    switcher.Model
	editor      imageeditor.Model
	status      string
	errMsg      string
	quitting    bool
	width       int
	height      int
	unsubscribe func()
}

// NewModel builds the dashboard on top of store. gen serves the image editor; requests
// that run longer than timeout fail.
func NewModel(store *selection.Store, children dataset.Provider, gen imagegen.Generator, timeout time.Duration) Model {
	unsubscribe := store.Subscribe(func(prev, next selection.State) {
		logger.Debug("View state changed",
			"tab", next.ActiveTab,
			"child", next.ActiveChildID,
			"switcher", next.SwitcherOpen,
			"card", next.SelectedCard != nil,
			"editor", next.ImageEditorOpen,
		)
	})

	m := Model{
		store:       store,
		children:    children,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		home:        home.New(0, 0),
		shares:      shares.New(0, 0),
		insights:    insights.New(0, 0),
		settings:    settings.New(0, 0),
		switcher:    switcher.New(),
		editor:      imageeditor.New(gen, timeout),
		unsubscribe: unsubscribe,
	}
	m.sync()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// sync pulls the store's snapshot into the screens.
func (m *Model) sync() {
	st := m.store.Snapshot()

	if st.ActiveChildID != m.child.ID {
		child, err := m.children.GetChild(st.ActiveChildID)
		if err != nil {
			logger.Error("Active child missing from dataset", "child", st.ActiveChildID, "error", err)
			m.errMsg = err.Error()
		} else {
			m.child = child
			m.reloadScreens()
		}
	} else if st.ActiveTab != m.state.ActiveTab {
		// a screen left behind starts over: cursor, filter and scroll
		m.reloadScreens()
	}
	if st.SwitcherOpen && !m.state.SwitcherOpen {
		m.switcher.SetEntries(switcherEntries(m.children, st.ActiveChildID))
	}
	if !st.ImageEditorOpen && m.state.ImageEditorOpen {
		m.editor.Close()
	}
	if st.Permissions != m.state.Permissions {
		m.settings.SetPermissions(st.Permissions)
	}

	m.state = st
}

func (m *Model) reloadScreens() {
	m.home.SetChild(m.child)
	m.shares.SetChild(m.child)
	m.insights.SetChild(m.child)
	m.settings.SetChild(m.child)
}

func (m *Model) resize() {
	// header, tabs, status and help lines plus docStyle padding
	h := max(m.height-8, 0)
	w := max(m.width-4, 0)
	m.home.SetSize(w, h)
	m.shares.SetSize(w, h)
	m.insights.SetSize(w, h)
	m.settings.SetSize(w, h)
	m.help.Width = m.width
}

// ShortHelp and FullHelp make Model the help footer's key map, so the footer follows
// whatever currently has focus.
func (m Model) ShortHelp() []key.Binding {
	switch {
	case m.state.ImageEditorOpen:
		return m.editor.KeyBindings()
	case m.state.SwitcherOpen:
		return []key.Binding{m.keys.Back, m.keys.Quit}
	case m.state.SelectedCard != nil:
		return []key.Binding{m.keys.Back, m.keys.Edit, m.keys.Quit}
	}
	return append(m.keys.ShortHelp()[:2:2], append(m.screenKeys(), m.keys.Help, m.keys.Quit)...)
}

func (m Model) FullHelp() [][]key.Binding {
	full := m.keys.FullHelp()
	if screen := m.screenKeys(); len(screen) > 0 {
		full = append(full, screen)
	}
	return full
}

func (m Model) screenKeys() []key.Binding {
	switch m.state.ActiveTab {
	case models.TabShares:
		return m.shares.KeyBindings()
	case models.TabInsights:
		return m.insights.KeyBindings()
	case models.TabSettings:
		return m.settings.KeyBindings()
	default:
		return nil
	}
}

// Close releases the store subscription.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}
