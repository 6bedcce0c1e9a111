package models

import (
	"fmt"
	"slices"
)

type Tab string

const (
	TabHome     Tab = "Home"
	TabShares   Tab = "Shares"
	TabInsights Tab = "Insights"
	TabSettings Tab = "Settings"
)

// Tabs lists the navigation tabs in display order.
var Tabs = []Tab{TabHome, TabShares, TabInsights, TabSettings}

func (t Tab) Valid() bool {
	return slices.Contains(Tabs, t)
}

// Today is a child's daily summary. It is fixed when the dataset loads.
type Today struct {
	Topics                  []string    `json:"topics"`
	InteractionDistribution []NameValue `json:"interaction_distribution"`
	LearningTrend           Trend       `json:"learning_trend"`
	MoodTrend               Trend       `json:"mood_trend"`
	TasksCompleted          int         `json:"tasks_completed"`
	BadgesEarned            int         `json:"badges_earned"`
	PendingRequests         int         `json:"pending_requests"`
}

// Child is one monitored person and everything the dashboard knows about them.
// Nested records are owned by the child and never shared with another child.
type Child struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	AvatarURL     string         `json:"avatar_url"`
	Today         Today          `json:"today"`
	Tasks         []Task         `json:"tasks"`
	ShareCards    []ShareCard    `json:"share_cards"`
	WeeklyReport  WeeklyReport   `json:"weekly_report"`
	SafetyReports []SafetyReport `json:"safety_reports"`
}

// Clone returns a deep copy of c.
func (c Child) Clone() Child {
	c.Today.Topics = cloneSlice(c.Today.Topics)
	c.Today.InteractionDistribution = cloneSlice(c.Today.InteractionDistribution)
	c.Tasks = cloneSlice(c.Tasks)
	c.ShareCards = cloneSlice(c.ShareCards)
	c.WeeklyReport = c.WeeklyReport.clone()
	c.SafetyReports = cloneSlice(c.SafetyReports)
	return c
}

// ShareCard returns the card with the given id.
func (c Child) ShareCard(id string) (ShareCard, bool) {
	for _, card := range c.ShareCards {
		if card.ID == id {
			return card, true
		}
	}
	return ShareCard{}, false
}

func (c Child) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("child id cannot be empty")
	}
	if c.Name == "" {
		return fmt.Errorf("child %s: name cannot be empty", c.ID)
	}

	seen := make(map[string]bool)
	for _, t := range c.Tasks {
		if err := checkUnique(seen, "task", t.ID); err != nil {
			return fmt.Errorf("child %s: %w", c.ID, err)
		}
	}

	seen = make(map[string]bool)
	for _, card := range c.ShareCards {
		if err := checkUnique(seen, "share card", card.ID); err != nil {
			return fmt.Errorf("child %s: %w", c.ID, err)
		}
	}

	seen = make(map[string]bool)
	for _, r := range c.SafetyReports {
		if err := checkUnique(seen, "safety report", r.ID); err != nil {
			return fmt.Errorf("child %s: %w", c.ID, err)
		}
	}

	return nil
}

func checkUnique(seen map[string]bool, kind, id string) error {
	if id == "" {
		return fmt.Errorf("%s id cannot be empty", kind)
	}
	if seen[id] {
		return fmt.Errorf("duplicate %s id %q", kind, id)
	}
	seen[id] = true
	return nil
}

// cloneSlice copies s, keeping nil as nil.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
