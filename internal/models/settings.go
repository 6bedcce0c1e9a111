package models

// PermissionKind names one of the visibility permissions on the settings screen.
type PermissionKind string

const (
	PermissionSummary PermissionKind = "summary"
	PermissionSnippet PermissionKind = "snippet"
)

// Permissions holds the parent's visibility toggles. They are UI state only and are
// never written back to the dataset.
type Permissions struct {
	AllowSummary bool `json:"allow_summary"`
	AllowSnippet bool `json:"allow_snippet"`
}

// DefaultPermissions returns the toggles a fresh settings screen starts with.
func DefaultPermissions() Permissions {
	return Permissions{
		AllowSummary: true,
		AllowSnippet: false,
	}
}

// Get returns the toggle for kind. Unknown kinds report false.
func (p Permissions) Get(kind PermissionKind) bool {
	switch kind {
	case PermissionSummary:
		return p.AllowSummary
	case PermissionSnippet:
		return p.AllowSnippet
	default:
		return false
	}
}

// With returns a copy of p with kind set to enabled. ok is false for unknown kinds.
func (p Permissions) With(kind PermissionKind, enabled bool) (Permissions, bool) {
	switch kind {
	case PermissionSummary:
		p.AllowSummary = enabled
	case PermissionSnippet:
		p.AllowSnippet = enabled
	default:
		return p, false
	}
	return p, true
}
