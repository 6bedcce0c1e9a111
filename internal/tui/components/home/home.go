// Package home renders the daily summary screen.
package home

import (
	"fmt"
	"strings"

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

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("141"))

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("60")).
			Padding(0, 1)

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	riskStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 1)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Strikethrough(true)

	sectionStyle = lipgloss.NewStyle().MarginTop(1)
)

type Model struct {
	child    models.Child
	viewport viewport.Model
	width    int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height), width: width}
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

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
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

// Render draws the whole home screen for child.
func Render(child models.Child) string {
	today := child.Today
	var sections []string

	var topics []string
	for _, t := range today.Topics {
		topics = append(topics, chipStyle.Render(t))
	}
	sections = append(sections, headingStyle.Render(constants.HomeTopicsTitle)+"\n"+strings.Join(topics, " "))

	if len(today.InteractionDistribution) > 0 {
		sections = append(sections, headingStyle.Render(constants.HomeDistributionTitle)+"\n"+
			chart.Bars(today.InteractionDistribution, barWidth, "%"))
	}

	sections = append(sections, fmt.Sprintf("%s  %s    %s  %s",
		headingStyle.Render(constants.LearningTrendTitle), glyph.Trend(projection.TrendLabel(today.LearningTrend)),
		headingStyle.Render(constants.MoodTrendTitle), glyph.Trend(projection.TrendLabel(today.MoodTrend))))

	sections = append(sections, headingStyle.Render(constants.HomeRulesTitle)+"\n"+fmt.Sprintf("%s %s    %s %s",
		constants.HomeTasksCompleted, statStyle.Render(fmt.Sprint(today.TasksCompleted)),
		constants.HomeBadgesEarned, statStyle.Render(fmt.Sprint(today.BadgesEarned))))

	if alerts := projection.PendingSafetyAlerts(child); len(alerts) > 0 {
		sections = append(sections, riskPanel(alerts))
	}

	sections = append(sections, taskList(child.Tasks))

	for i := 1; i < len(sections); i++ {
		sections[i] = sectionStyle.Render(sections[i])
	}
	return strings.Join(sections, "\n")
}

func riskPanel(alerts []models.SafetyReport) string {
	var s strings.Builder
	s.WriteString(glyph.Badge(projection.VisibilityBadge(models.VisibilityUrgent), constants.HomeRiskTitle))
	s.WriteString(mutedStyle.Render(fmt.Sprintf("  %s (%d)", constants.RiskNeedsAttention, len(alerts))))
	for _, a := range alerts {
		s.WriteString(fmt.Sprintf("\n%s · %s\n  %s", a.Time, a.Category, a.Summary))
		if a.Suggestion != "" {
			s.WriteString(fmt.Sprintf("\n  %s: %s", constants.RiskSuggestion, a.Suggestion))
		}
	}
	return riskStyle.Render(s.String())
}

func taskList(tasks []models.Task) string {
	var s strings.Builder
	s.WriteString(headingStyle.Render(constants.HomeTasksTitle))
	for _, t := range tasks {
		if t.IsCompleted() {
			s.WriteString("\n✓ " + doneStyle.Render(t.Title))
		} else {
			s.WriteString("\n○ " + t.Title)
		}
		if t.ReminderTime != "" {
			s.WriteString(mutedStyle.Render("  " + t.ReminderTime))
		}
	}
	return s.String()
}
