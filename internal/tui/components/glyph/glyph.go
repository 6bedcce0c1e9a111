// Package glyph maps the projection layer's icon and color names onto terminal glyphs
// and lipgloss colors.
package glyph

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lumibot/internal/projection"
)

func Icon(k projection.IconKind) string {
	switch k {
	case projection.IconArrowUp:
		return "↑"
	case projection.IconArrowDown:
		return "↓"
	case projection.IconLock:
		return "🔒"
	case projection.IconFileText:
		return "📄"
	case projection.IconEye:
		return "👁"
	case projection.IconAlertTriangle:
		return "⚠"
	case projection.IconCheckCircle:
		return "✓"
	default:
		return "–"
	}
}

func Color(k projection.ColorKind) lipgloss.Color {
	switch k {
	case projection.ColorGreen:
		return lipgloss.Color("42")
	case projection.ColorOrange:
		return lipgloss.Color("208")
	case projection.ColorBlue:
		return lipgloss.Color("39")
	case projection.ColorPink:
		return lipgloss.Color("205")
	default:
		return lipgloss.Color("245")
	}
}

// Badge renders an icon followed by text in the badge's color.
func Badge(b projection.Badge, text string) string {
	return lipgloss.NewStyle().Foreground(Color(b.Color)).Bold(true).Render(Icon(b.Icon) + " " + text)
}

// Trend renders a trend indicator such as "↑ 上升".
func Trend(d projection.TrendDisplay) string {
	return lipgloss.NewStyle().Foreground(Color(d.Color)).Bold(true).Render(Icon(d.Icon) + " " + d.Text)
}
