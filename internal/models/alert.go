package models

type SafetyStatus string

const (
	SafetyStatusPending SafetyStatus = "pending"
	SafetyStatusViewed  SafetyStatus = "viewed"
)

// SafetyReport is a flagged content-safety event. Pending reports need parent attention.
type SafetyReport struct {
	ID           string       `json:"id"`
	Time         string       `json:"time"`
	Category     string       `json:"category"`
	SystemAction string       `json:"system_action"`
	Status       SafetyStatus `json:"status"`
	Summary      string       `json:"summary"`
	Suggestion   string       `json:"suggestion"`
}

func (r SafetyReport) IsPending() bool {
	return r.Status == SafetyStatusPending
}
