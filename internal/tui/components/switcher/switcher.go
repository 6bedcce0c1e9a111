// Package switcher is the child switcher popover.
package switcher

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lumibot/internal/projection"
)

// SelectChildMsg asks the shell to make ID the active child.
type SelectChildMsg struct {
	ID string
}

// CloseMsg asks the shell to close the switcher without changing child.
type CloseMsg struct{}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "switch"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "c"),
			key.WithHelp("esc", "close"),
		),
	}
}

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(0, 1)

	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	normalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type Model struct {
	entries []projection.SwitcherEntry
	cursor  int
	keys    KeyMap
}

func New() Model {
	return Model{keys: DefaultKeyMap()}
}

// SetEntries replaces the rows and puts the cursor on the active child.
func (m *Model) SetEntries(entries []projection.SwitcherEntry) {
	m.entries = entries
	m.cursor = 0
	for i, e := range entries {
		if e.Active {
			m.cursor = i
			break
		}
	}
}

func (m Model) Cursor() int { return m.cursor }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		if m.cursor < len(m.entries) {
			id := m.entries[m.cursor].ID
			return m, func() tea.Msg { return SelectChildMsg{ID: id} }
		}
	case key.Matches(keyMsg, m.keys.Close):
		return m, func() tea.Msg { return CloseMsg{} }
	}
	return m, nil
}

func (m Model) View() string {
	var rows []string
	for i, e := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("› ")
		}
		name := normalStyle.Render(e.Name)
		if e.Active {
			name = activeStyle.Render(e.Name + " ✓")
		}
		if e.HasPending {
			name += " " + pendingStyle.Render("●")
		}
		rows = append(rows, cursor+name)
	}
	return boxStyle.Render(strings.Join(rows, "\n"))
}
