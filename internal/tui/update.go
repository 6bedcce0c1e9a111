package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lumibot/internal/dataset"
	"github.com/julianstephens/lumibot/internal/logger"
	"github.com/julianstephens/lumibot/internal/models"
	"github.com/julianstephens/lumibot/internal/projection"
	"github.com/julianstephens/lumibot/internal/report"
	"github.com/julianstephens/lumibot/internal/tui/components/imageeditor"
	"github.com/julianstephens/lumibot/internal/tui/components/insights"
	"github.com/julianstephens/lumibot/internal/tui/components/settings"
	"github.com/julianstephens/lumibot/internal/tui/components/shares"
	"github.com/julianstephens/lumibot/internal/tui/components/switcher"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		m.errMsg = ""
		return m.handleKey(msg)

	case switcher.SelectChildMsg:
		m.report(m.store.SetActiveChildID(msg.ID))

	case switcher.CloseMsg:
		m.store.CloseChildSwitcher()

	case shares.SelectCardMsg:
		m.report(m.store.SelectCard(&msg.Card))

	case settings.TogglePermissionMsg:
		_, err := m.store.TogglePermission(msg.Kind)
		m.report(err)

	case insights.ExportReportMsg:
		m.exportReport(msg.ChildID)

	case imageeditor.CloseMsg:
		m.store.SetImageEditorOpen(false)

	case imageeditor.GeneratedMsg, spinner.TickMsg:
		// answers for a closed editor still reach it so they can be discarded
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd

	default:
		cmd = m.updateFocused(msg)
	}

	m.sync()
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	var cmd tea.Cmd
	switch {
	case m.state.ImageEditorOpen:
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd

	case m.state.SwitcherOpen:
		m.switcher, cmd = m.switcher.Update(msg)
		return m, cmd

	case m.state.SelectedCard != nil:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.report(m.store.SelectCard(nil))
		case key.Matches(msg, m.keys.Edit):
			card := *m.state.SelectedCard
			if projection.CanEditImage(card) {
				m.store.OpenImageEditor()
				cmd = m.editor.Open(card.Title)
			}
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		}
		m.sync()
		return m, cmd

	case m.state.ActiveTab == models.TabShares && m.shares.Filtering():
		m.shares, cmd = m.shares.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		m.report(m.store.SetActiveTab(m.cycleTab(1)))
	case key.Matches(msg, m.keys.PrevTab):
		m.report(m.store.SetActiveTab(m.cycleTab(-1)))
	case key.Matches(msg, m.keys.Home):
		m.report(m.store.SetActiveTab(models.TabHome))
	case key.Matches(msg, m.keys.Shares):
		m.report(m.store.SetActiveTab(models.TabShares))
	case key.Matches(msg, m.keys.Insights):
		m.report(m.store.SetActiveTab(models.TabInsights))
	case key.Matches(msg, m.keys.Settings):
		m.report(m.store.SetActiveTab(models.TabSettings))
	case key.Matches(msg, m.keys.Switcher):
		m.store.ToggleChildSwitcher()
	default:
		cmd = m.updateScreen(msg)
	}

	m.sync()
	return m, cmd
}

// updateFocused hands non-key messages (cursor blinks, form internals) to whatever has focus.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.state.ImageEditorOpen:
		m.editor, cmd = m.editor.Update(msg)
	case m.state.SwitcherOpen, m.state.SelectedCard != nil:
	default:
		cmd = m.updateScreen(msg)
	}
	return cmd
}

func (m *Model) updateScreen(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.state.ActiveTab {
	case models.TabHome:
		m.home, cmd = m.home.Update(msg)
	case models.TabShares:
		m.shares, cmd = m.shares.Update(msg)
	case models.TabInsights:
		m.insights, cmd = m.insights.Update(msg)
	case models.TabSettings:
		m.settings, cmd = m.settings.Update(msg)
	}
	return cmd
}

func (m Model) cycleTab(step int) models.Tab {
	tabs := m.children.Tabs()
	i := slices.Index(tabs, m.state.ActiveTab)
	if i < 0 {
		return tabs[0]
	}
	return tabs[(i+step+len(tabs))%len(tabs)]
}

func (m *Model) exportReport(childID string) {
	child, err := m.children.GetChild(childID)
	if err != nil {
		m.report(err)
		return
	}
	dir, err := os.Getwd()
	if err != nil {
		m.report(err)
		return
	}
	path := filepath.Join(dir, report.DefaultFilename(child))
	if err := report.WriteFile(path, child); err != nil {
		m.report(err)
		return
	}
	logger.Info("Weekly report exported", "child", child.ID, "path", path)
	m.status = fmt.Sprintf("✓ Weekly report written to %s", path)
}

// report shows a rejected transition in the status line. The store has already logged it.
func (m *Model) report(err error) {
	if err != nil {
		m.errMsg = err.Error()
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.editor.Close()
	m.Close()
	return m, tea.Quit
}

func switcherEntries(children dataset.Provider, activeID string) []projection.SwitcherEntry {
	return projection.SwitcherEntries(children.ListChildren(), activeID)
}
