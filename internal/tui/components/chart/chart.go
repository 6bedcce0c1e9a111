// Package chart draws simple horizontal bar charts from name/value rows.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/julianstephens/lumibot/internal/models"
	"github.com/julianstephens/lumibot/internal/projection"
)

// Palette cycles through the bar colors.
var Palette = []lipgloss.Color{"141", "205", "75", "209", "78"}

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

const (
	fullBlock  = "█"
	emptyBlock = "░"
)

// Bars renders one bar per row, scaled so the largest value fills width cells.
// unit is appended to each value, e.g. "%".
func Bars(rows []models.NameValue, width int, unit string) string {
	if len(rows) == 0 {
		return ""
	}
	maxVal := 0.0
	for _, r := range rows {
		maxVal = math.Max(maxVal, r.Value)
	}

	labelWidth := labelColumn(len(rows), func(i int) string { return rows[i].Name })
	var lines []string
	for i, r := range rows {
		filled := 0
		if maxVal > 0 && r.Value > 0 {
			filled = int(math.Round(r.Value / maxVal * float64(width)))
		}
		lines = append(lines, line(i, r.Name, labelWidth, filled, width, trim(r.Value)+unit))
	}
	return strings.Join(lines, "\n")
}

// Shares renders each share as a bar proportional to its percentage of the total.
func Shares(shares []projection.Share, width int) string {
	if len(shares) == 0 {
		return ""
	}

	labelWidth := labelColumn(len(shares), func(i int) string { return shares[i].Name })
	var lines []string
	for i, s := range shares {
		filled := int(math.Round(s.Percent / 100 * float64(width)))
		lines = append(lines, line(i, s.Name, labelWidth, filled, width, fmt.Sprintf("%.0f%%", s.Percent)))
	}
	return strings.Join(lines, "\n")
}

func labelColumn(n int, name func(int) string) int {
	w := 0
	for i := 0; i < n; i++ {
		w = max(w, runewidth.StringWidth(name(i)))
	}
	return w
}

func line(i int, name string, labelWidth, filled, width int, value string) string {
	filled = min(max(filled, 0), width)
	bar := lipgloss.NewStyle().Foreground(Palette[i%len(Palette)]).Render(strings.Repeat(fullBlock, filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render(strings.Repeat(emptyBlock, width-filled))
	return fmt.Sprintf("%s %s %s", labelStyle.Render(runewidth.FillRight(name, labelWidth)), bar, value)
}

func trim(v float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0")
}
