// Package projection derives what each dashboard screen shows from a child's data.
// Every function here is pure: inputs are never mutated and missing data yields
// empty results rather than errors.
package projection

import (
	"slices"
	"strings"

	"github.com/julianstephens/lumibot/internal/constants"
	"github.com/julianstephens/lumibot/internal/models"
)

// PendingRequestTotal sums today's pending requests across all children.
func PendingRequestTotal(children []models.Child) int {
	total := 0
	for _, c := range children {
		total += c.Today.PendingRequests
	}
	return total
}

func HasPendingRequests(child models.Child) bool {
	return child.Today.PendingRequests > 0
}

// PendingSafetyAlerts returns the child's pending safety reports in their original order.
func PendingSafetyAlerts(child models.Child) []models.SafetyReport {
	var pending []models.SafetyReport
	for _, r := range child.SafetyReports {
		if r.IsPending() {
			pending = append(pending, r)
		}
	}
	return pending
}

// SortedShareCards orders the child's share cards newest-first using an approximate
// recency heuristic over the free-text timestamps: cards mentioning hours come first,
// then cards mentioning yesterday, then the rest. Ties keep their original order.
// Timestamps are not parsed; "1天前" and "昨天" land in different buckets.
func SortedShareCards(child models.Child) []models.ShareCard {
	cards := slices.Clone(child.ShareCards)
	slices.SortStableFunc(cards, func(a, b models.ShareCard) int {
		return recencyRank(a.Timestamp) - recencyRank(b.Timestamp)
	})
	return cards
}

// recencyRank compares the hour marker first and the yesterday marker second.
func recencyRank(timestamp string) int {
	rank := 0
	if !strings.Contains(timestamp, constants.RecencyMarkerHours) {
		rank += 2
	}
	if !strings.Contains(timestamp, constants.RecencyMarkerYesterday) {
		rank++
	}
	return rank
}

// TaskCounts returns how many of the child's tasks are pending and completed.
func TaskCounts(child models.Child) (pending, completed int) {
	for _, t := range child.Tasks {
		if t.IsCompleted() {
			completed++
		} else {
			pending++
		}
	}
	return pending, completed
}

func CanEditImage(card models.ShareCard) bool {
	return card.Type == models.CardTypeShowcase
}

// Share is a chart row with its share of the row total.
type Share struct {
	Name    string
	Value   float64
	Percent float64 // 0-100
}

// TopicShares converts rows into percentages of their sum. A zero sum yields 0% rows.
func TopicShares(rows []models.NameValue) []Share {
	var sum float64
	for _, r := range rows {
		sum += r.Value
	}

	shares := make([]Share, 0, len(rows))
	for _, r := range rows {
		s := Share{Name: r.Name, Value: r.Value}
		if sum > 0 {
			s.Percent = r.Value / sum * 100
		}
		shares = append(shares, s)
	}
	return shares
}

// SwitcherEntry is one row of the child switcher.
type SwitcherEntry struct {
	ID         string
	Name       string
	Active     bool
	HasPending bool
}

func SwitcherEntries(children []models.Child, activeID string) []SwitcherEntry {
	entries := make([]SwitcherEntry, 0, len(children))
	for _, c := range children {
		entries = append(entries, SwitcherEntry{
			ID:         c.ID,
			Name:       c.Name,
			Active:     c.ID == activeID,
			HasPending: HasPendingRequests(c),
		})
	}
	return entries
}
