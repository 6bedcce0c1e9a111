// Package report renders a child's weekly report as a Markdown document.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/lumibot/internal/constants"
	"github.com/julianstephens/lumibot/internal/models"
	"github.com/julianstephens/lumibot/internal/projection"
)

// Markdown renders the weekly report, today's summary, tasks and pending safety alerts.
func Markdown(child models.Child) string {
	var b strings.Builder
	w := child.WeeklyReport

	fmt.Fprintf(&b, "# %s · %s\n\n", child.Name, constants.InsightsTitle)

	fmt.Fprintf(&b, "## %s\n\n", constants.InsightsTotalTitle)
	fmt.Fprintf(&b, "%s 小时\n\n", trimFloat(w.InteractionTotal))

	fmt.Fprintf(&b, "## %s\n\n", constants.InsightsTopicsTitle)
	shares := projection.TopicShares(w.TopTopics)
	if len(shares) == 0 {
		b.WriteString("-\n\n")
	} else {
		b.WriteString("| 话题 | 占比 |\n|---|---|\n")
		for _, s := range shares {
			fmt.Fprintf(&b, "| %s | %.0f%% |\n", s.Name, s.Percent)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## %s / %s\n\n", constants.LearningTrendTitle, constants.MoodTrendTitle)
	fmt.Fprintf(&b, "- %s: %s\n", constants.LearningTrendTitle, projection.TrendLabel(w.LearningTrend).Text)
	fmt.Fprintf(&b, "- %s: %s\n\n", constants.MoodTrendTitle, projection.TrendLabel(w.MoodTrend).Text)

	fmt.Fprintf(&b, "## %s\n\n", constants.InsightsAchievements)
	for _, a := range w.Achievements {
		fmt.Fprintf(&b, "- %s\n", a)
	}
	if len(w.Achievements) == 0 {
		b.WriteString("-\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", constants.InsightsInteraction)
	fmt.Fprintf(&b, "### %s\n\n", constants.InsightsHighlight)
	if w.Highlight.Title != "" {
		fmt.Fprintf(&b, "**%s**\n\n", w.Highlight.Title)
	}
	fmt.Fprintf(&b, "%s\n\n", w.Highlight.Text)
	fmt.Fprintf(&b, "### %s\n\n", constants.InsightsRecommendations)
	for _, r := range w.Recommendations {
		fmt.Fprintf(&b, "- **%s**: %s\n", r.Title, r.Text)
	}
	b.WriteString("\n")

	pending, completed := projection.TaskCounts(child)
	fmt.Fprintf(&b, "## %s\n\n", constants.HomeTasksTitle)
	fmt.Fprintf(&b, "%d pending, %d completed\n\n", pending, completed)
	for _, t := range child.Tasks {
		mark := " "
		if t.IsCompleted() {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s (%s)\n", mark, t.Title, t.ReminderTime)
	}
	b.WriteString("\n")

	if alerts := projection.PendingSafetyAlerts(child); len(alerts) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", constants.HomeRiskTitle)
		for _, r := range alerts {
			fmt.Fprintf(&b, "- **%s** (%s): %s\n  - %s: %s\n", r.Category, r.Time, r.Summary, constants.RiskSuggestion, r.Suggestion)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// DefaultFilename is the file name used when exporting without an explicit path.
func DefaultFilename(child models.Child) string {
	return fmt.Sprintf("%s-weekly-report.md", strings.ToLower(child.ID))
}

// WriteFile renders the report into path, creating parent directories as needed.
func WriteFile(path string, child models.Child) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(Markdown(child)), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func trimFloat(v float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0")
}
