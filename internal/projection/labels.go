package projection

import "github.com/julianstephens/lumibot/internal/models"

// IconKind names a glyph; the renderer decides how to draw it.
type IconKind int

const (
	IconMinus IconKind = iota
	IconArrowUp
	IconArrowDown
	IconLock
	IconFileText
	IconEye
	IconAlertTriangle
	IconCheckCircle
)

// ColorKind names a palette entry; the renderer maps it to a terminal color.
type ColorKind int

const (
	ColorGray ColorKind = iota
	ColorGreen
	ColorOrange
	ColorBlue
	ColorPink
)

// TrendDisplay is the fixed icon, color and text for a trend.
type TrendDisplay struct {
	Icon  IconKind
	Color ColorKind
	Text  string
}

// TrendLabel maps a trend to its display triple. Stable is the fallback for unknown values.
func TrendLabel(trend models.Trend) TrendDisplay {
	switch trend {
	case models.TrendUp:
		return TrendDisplay{Icon: IconArrowUp, Color: ColorGreen, Text: "上升"}
	case models.TrendDown:
		return TrendDisplay{Icon: IconArrowDown, Color: ColorOrange, Text: "下降"}
	case models.TrendStable:
		return TrendDisplay{Icon: IconMinus, Color: ColorGray, Text: "平稳"}
	default:
		return TrendDisplay{Icon: IconMinus, Color: ColorGray, Text: "平稳"}
	}
}

type Badge struct {
	Icon  IconKind
	Color ColorKind
}

// VisibilityBadge maps a visibility tier to its badge. Unknown tiers render as private.
func VisibilityBadge(v models.Visibility) Badge {
	switch v {
	case models.VisibilityPrivate:
		return Badge{Icon: IconLock, Color: ColorGray}
	case models.VisibilitySummary:
		return Badge{Icon: IconFileText, Color: ColorBlue}
	case models.VisibilitySnippet:
		return Badge{Icon: IconEye, Color: ColorGreen}
	case models.VisibilityUrgent:
		return Badge{Icon: IconAlertTriangle, Color: ColorPink}
	default:
		return Badge{Icon: IconLock, Color: ColorGray}
	}
}

// CardTypeBadge returns the badge for card types that carry one. Only task updates
// and homework requests are badged.
func CardTypeBadge(t models.CardType) (Badge, bool) {
	switch t {
	case models.CardTypeTaskUpdate:
		return Badge{Icon: IconCheckCircle, Color: ColorGreen}, true
	case models.CardTypeHomeworkHelp:
		return Badge{Icon: IconAlertTriangle, Color: ColorPink}, true
	case models.CardTypeShowcase, models.CardTypeEmotionalMoment, models.CardTypeGeneralChat:
		return Badge{}, false
	default:
		return Badge{}, false
	}
}
