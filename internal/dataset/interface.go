package dataset

import (
	"errors"

	"github.com/julianstephens/lumibot/internal/models"
)

// ErrNotFound is returned when a child id does not match any loaded child.
var ErrNotFound = errors.New("child not found")

// Provider is a read-only view of the loaded children.
type Provider interface {
	// ListChildren returns every child in load order. The result is a copy.
	ListChildren() []models.Child
	// GetChild returns a copy of the child with the given id, or an error wrapping ErrNotFound.
	GetChild(id string) (models.Child, error)
	// Tabs returns the navigation tabs in display order.
	Tabs() []models.Tab
	// FirstChildID returns the id the dashboard opens on.
	FirstChildID() string
}
