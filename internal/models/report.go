package models

type Trend string

const (
	TrendUp     Trend = "Up"
	TrendDown   Trend = "Down"
	TrendStable Trend = "Stable"
)

// NameValue is one row of a chart: a bucket name and its value (usually a percentage).
type NameValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Note is a titled piece of text, used for highlights and recommendations.
type Note struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type WeeklyReport struct {
	InteractionTotal float64     `json:"interaction_total"` // hours
	TopTopics        []NameValue `json:"top_topics"`
	LearningTrend    Trend       `json:"learning_trend"`
	MoodTrend        Trend       `json:"mood_trend"`
	Achievements     []string    `json:"achievements"`
	Highlight        Note        `json:"highlight"`
	Recommendations  []Note      `json:"recommendations"`
}

func (w WeeklyReport) clone() WeeklyReport {
	w.TopTopics = cloneSlice(w.TopTopics)
	w.Achievements = cloneSlice(w.Achievements)
	w.Recommendations = cloneSlice(w.Recommendations)
	return w
}
