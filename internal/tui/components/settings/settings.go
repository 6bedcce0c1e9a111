package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lumibot/internal/constants"
	"github.com/julianstephens/lumibot/internal/models"
)

// TogglePermissionMsg asks the shell to flip a visibility permission.
type TogglePermissionMsg struct {
	Kind models.PermissionKind
}

type KeyMap struct {
	ToggleSummary key.Binding
	ToggleSnippet key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		ToggleSummary: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle summary"),
		),
		ToggleSnippet: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle snippet"),
		),
	}
}

type Model struct {
	child       models.Child
	permissions models.Permissions
	viewport    viewport.Model
	keys        KeyMap
	width       int
	height      int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("141"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Width(25)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	onStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	offStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			MarginTop(1)
)

func New(width, height int) Model {
	return Model{
		viewport:    viewport.New(width, height),
		keys:        DefaultKeyMap(),
		permissions: models.DefaultPermissions(),
		width:       width,
		height:      height,
	}
}

func (m *Model) SetChild(child models.Child) {
	m.child = child
	m.viewport.SetContent(m.content())
	m.viewport.GotoTop()
}

func (m *Model) SetPermissions(p models.Permissions) {
	m.permissions = p
	m.viewport.SetContent(m.content())
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.viewport.SetContent(m.content())
}

func (m Model) KeyBindings() []key.Binding {
	return []key.Binding{m.keys.ToggleSummary, m.keys.ToggleSnippet}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.ToggleSummary):
			return m, func() tea.Msg { return TogglePermissionMsg{Kind: models.PermissionSummary} }
		case key.Matches(keyMsg, m.keys.ToggleSnippet):
			return m, func() tea.Msg { return TogglePermissionMsg{Kind: models.PermissionSnippet} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	return m.viewport.View()
}

func (m Model) content() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(constants.SettingsTitle))
	s.WriteString("\n")

	s.WriteString(headingStyle.Render(constants.SettingsDevice))
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render(constants.DeviceNamePrefix+m.child.Name),
		onStyle.Render(constants.SettingsDeviceConnected)))
	s.WriteString(descStyle.Render(constants.SettingsLastSync))
	s.WriteString("\n")

	var perms strings.Builder
	perms.WriteString(headingStyle.Render(constants.SettingsPermissions))
	perms.WriteString("\n")
	perms.WriteString(toggleRow("s", constants.SettingsAllowSummaryLabel, constants.SettingsAllowSummaryDesc, m.permissions.AllowSummary))
	perms.WriteString(toggleRow("p", constants.SettingsAllowSnippetLabel, constants.SettingsAllowSnippetDesc, m.permissions.AllowSnippet))
	perms.WriteString(pendingStyle.Render(constants.SettingsRevokeAll))
	s.WriteString(sectionStyle.Render(perms.String()))
	s.WriteString("\n")

	var guardian strings.Builder
	guardian.WriteString(headingStyle.Render(constants.SettingsGuardian))
	guardian.WriteString("\n")
	guardian.WriteString(labelStyle.Render(constants.SettingsSafetyWord) + "\n")
	guardian.WriteString(labelStyle.Render(constants.SettingsSensitivity))
	s.WriteString(sectionStyle.Render(guardian.String()))
	s.WriteString("\n")

	var safety strings.Builder
	safety.WriteString(headingStyle.Render(constants.SettingsSafetyTitle))
	safety.WriteString("\n")
	safety.WriteString(descStyle.Render(constants.SettingsSafetyNotice))
	safety.WriteString("\n")
	if len(m.child.SafetyReports) == 0 {
		safety.WriteString(constants.SettingsNoSafetyReports)
	}
	for i, r := range m.child.SafetyReports {
		if i > 0 {
			safety.WriteString("\n")
		}
		safety.WriteString(safetyRow(r))
	}
	s.WriteString(sectionStyle.Render(safety.String()))
	s.WriteString("\n")

	var about strings.Builder
	about.WriteString(headingStyle.Render(constants.SettingsAbout))
	about.WriteString("\n")
	about.WriteString(labelStyle.Render(constants.SettingsFAQ) + "\n")
	about.WriteString(labelStyle.Render(constants.SettingsFeedback) + "\n")
	about.WriteString(descStyle.Render(constants.AppName + " " + constants.Version))
	s.WriteString(sectionStyle.Render(about.String()))

	return s.String()
}

func toggleRow(keyName, label, desc string, on bool) string {
	state := offStyle.Render("[ ] off")
	if on {
		state = onStyle.Render("[x] on")
	}
	return fmt.Sprintf("%s %s  %s\n%s\n", labelStyle.Render(label), state, descStyle.Render("("+keyName+")"), descStyle.Render(desc))
}

func safetyRow(r models.SafetyReport) string {
	head := fmt.Sprintf("%s · %s", r.Time, r.Category)
	if r.IsPending() {
		head += " " + pendingStyle.Render(constants.SafetyPendingBadge)
	}
	return fmt.Sprintf("%s\n  %s\n  %s: %s", head, r.Summary, constants.SafetySystemAction, r.SystemAction)
}
