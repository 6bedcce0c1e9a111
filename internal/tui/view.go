package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lumibot/internal/constants"
	"github.com/julianstephens/lumibot/internal/models"
	"github.com/julianstephens/lumibot/internal/projection"
	"github.com/julianstephens/lumibot/internal/tui/components/shares"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch {
	case m.state.ImageEditorOpen:
		content = m.place(m.editor.View())
	case m.state.SelectedCard != nil:
		content = m.place(shares.DetailView(*m.state.SelectedCard))
	case m.state.SwitcherOpen:
		content = lipgloss.JoinVertical(lipgloss.Left, m.switcher.View(), m.viewScreen())
	default:
		content = m.viewScreen()
	}

	var status string
	switch {
	case m.errMsg != "":
		status = dangerStyle.Render("Error: " + m.errMsg)
	case m.status != "":
		status = statusStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		m.viewTabs(),
		docStyle.Render(content),
		status,
		m.help.View(m),
	)
}

func (m Model) viewHeader() string {
	name := headerStyle.Render(m.child.Name)
	if projection.HasPendingRequests(m.child) {
		name += " " + pendingDotStyle.Render("●")
	}

	header := fmt.Sprintf("%s %s ▾", mutedStyle.Render(constants.HeaderCurrentChild), name)
	if total := projection.PendingRequestTotal(m.children.ListChildren()); total > 0 {
		header += "  " + badgeStyle.Render(fmt.Sprint(total))
	}
	return header + mutedStyle.Render("  · "+string(m.state.ActiveTab))
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, tab := range m.children.Tabs() {
		if tab == m.state.ActiveTab {
			tabs = append(tabs, activeTabStyle.Render(string(tab)))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(string(tab)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// viewScreen renders exactly one screen, chosen by the active tab.
func (m Model) viewScreen() string {
	switch m.state.ActiveTab {
	case models.TabHome:
		return m.home.View()
	case models.TabShares:
		return m.shares.View()
	case models.TabInsights:
		return m.insights.View()
	case models.TabSettings:
		return m.settings.View()
	default:
		return ""
	}
}

func (m Model) place(dialog string) string {
	if m.width == 0 || m.height == 0 {
		return dialog
	}
	return lipgloss.Place(m.width-4, max(m.height-8, lipgloss.Height(dialog)), lipgloss.Center, lipgloss.Center, dialog)
}
