// Package insights renders the weekly report screen.
package insights

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lumibot/internal/constants"
	"github.com/julianstephens/lumibot/internal/models"
	"github.com/julianstephens/lumibot/internal/projection"
	"github.com/julianstephens/lumibot/internal/tui/components/chart"
	"github.com/julianstephens/lumibot/internal/tui/components/glyph"
)

const barWidth = 24

// ExportReportMsg asks the shell to write the weekly report for ChildID.
type ExportReportMsg struct {
	ChildID string
}

type KeyMap struct {
	Export key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export report"),
		),
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("141"))

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	noteStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("39")).
			PaddingLeft(1)

	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	sectionStyle = lipgloss.NewStyle().MarginTop(1)
)

type Model struct {
	child    models.Child
	viewport viewport.Model
	keys     KeyMap
	width    int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height), keys: DefaultKeyMap(), width: width}
}

func (m *Model) SetChild(child models.Child) {
	m.child = child
	m.viewport.SetContent(Render(child))
	m.viewport.GotoTop()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = height
	m.viewport.SetContent(Render(m.child))
}

func (m Model) KeyBindings() []key.Binding {
	return []key.Binding{m.keys.Export}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Export) {
		id := m.child.ID
		return m, func() tea.Msg { return ExportReportMsg{ChildID: id} }
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

// Render draws the weekly report for child.
func Render(child models.Child) string {
	r := child.WeeklyReport
	sections := []string{
		titleStyle.Render(constants.InsightsTitle),
		headingStyle.Render(constants.InsightsTotalTitle) + "  " +
			totalStyle.Render(strings.TrimSuffix(fmt.Sprintf("%.1f", r.InteractionTotal), ".0")+" 小时"),
	}

	if len(r.TopTopics) > 0 {
		sections = append(sections, headingStyle.Render(constants.InsightsTopicsTitle)+"\n"+
			chart.Shares(projection.TopicShares(r.TopTopics), barWidth))
	}

	sections = append(sections, fmt.Sprintf("%s  %s    %s  %s",
		headingStyle.Render(constants.LearningTrendTitle), glyph.Trend(projection.TrendLabel(r.LearningTrend)),
		headingStyle.Render(constants.MoodTrendTitle), glyph.Trend(projection.TrendLabel(r.MoodTrend))))

	if len(r.Achievements) > 0 {
		var s strings.Builder
		s.WriteString(headingStyle.Render(constants.InsightsAchievements))
		for _, a := range r.Achievements {
			s.WriteString("\n🏅 " + a)
		}
		sections = append(sections, s.String())
	}

	if r.Highlight.Title != "" || r.Highlight.Text != "" {
		sections = append(sections, headingStyle.Render(constants.InsightsHighlight)+"\n"+
			noteStyle.Render(note(r.Highlight)))
	}

	if len(r.Recommendations) > 0 {
		var s strings.Builder
		s.WriteString(headingStyle.Render(constants.InsightsRecommendations))
		for _, rec := range r.Recommendations {
			s.WriteString("\n" + noteStyle.Render(note(rec)))
		}
		sections = append(sections, s.String())
	}

	sections = append(sections, mutedStyle.Render("x  "+constants.InsightsExport))

	for i := 1; i < len(sections); i++ {
		sections[i] = sectionStyle.Render(sections[i])
	}
	return strings.Join(sections, "\n")
}

func note(n models.Note) string {
	if n.Title == "" {
		return n.Text
	}
	return totalStyle.Render(n.Title) + "\n" + n.Text
}
