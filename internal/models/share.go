package models

// Visibility is the disclosure tier a child chose for a share card.
type Visibility string

const (
	VisibilityPrivate Visibility = "私密"
	VisibilitySummary Visibility = "摘要"
	VisibilitySnippet Visibility = "片段"
	VisibilityUrgent  Visibility = "紧急"
)

type CardType string

const (
	CardTypeHomeworkHelp    CardType = "作业求助"
	CardTypeShowcase        CardType = "成果展示"
	CardTypeEmotionalMoment CardType = "情绪时刻"
	CardTypeGeneralChat     CardType = "日常闲聊"
	CardTypeTaskUpdate      CardType = "任务动态"
)

// ShareCard is a unit of child-originated content surfaced to the parent.
type ShareCard struct {
	ID            string     `json:"id"`
	Type          CardType   `json:"type"`
	Title         string     `json:"title"`
	Summary       string     `json:"summary"`
	Timestamp     string     `json:"timestamp"` // free text, e.g. "2小时前"; never parsed
	Visibility    Visibility `json:"visibility"`
	ChildsComment string     `json:"childs_comment,omitempty"`
	ExpiresInDays int        `json:"expires_in_days"` // informational only
	ImageURL      string     `json:"image_url,omitempty"`
}

func (c ShareCard) HasComment() bool {
	return c.ChildsComment != ""
}

func (c ShareCard) HasImage() bool {
	return c.ImageURL != ""
}
