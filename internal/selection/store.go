// Package selection holds the dashboard's shared view state: which child and tab are
// active, which card is open, which overlays are showing and the parent's permission
// toggles. A Store is created once per session and handed to whoever needs it.
package selection

import (
	"errors"
	"fmt"
	"sync"

	"github.com/julianstephens/lumibot/internal/dataset"
	"github.com/julianstephens/lumibot/internal/logger"
	"github.com/julianstephens/lumibot/internal/models"
)

var (
	// ErrUnknownTab is returned when a tab outside the fixed navigation set is requested.
	ErrUnknownTab = errors.New("unknown tab")
	// ErrUnknownCard is returned when the active child does not own the selected card.
	ErrUnknownCard = errors.New("card does not belong to the active child")
)

// State is a snapshot of the view state. Snapshots are values; mutating one does not
// affect the store.
type State struct {
	ActiveTab       models.Tab
	ActiveChildID   string
	SwitcherOpen    bool
	SelectedCard    *models.ShareCard
	ImageEditorOpen bool
	Permissions     models.Permissions
}

func (s State) clone() State {
	if s.SelectedCard != nil {
		card := *s.SelectedCard
		s.SelectedCard = &card
	}
	return s
}

// Listener is called after every successful transition with the snapshots before and after it.
type Listener func(prev, next State)

type subscription struct {
	id int
	fn Listener
}

// Store owns the view state. All transitions are atomic: the snapshot is replaced under
// the lock and listeners run after it is released.
type Store struct {
	mu          sync.RWMutex
	children    dataset.Provider
	state       State
	subscribers []subscription
	nextSubID   int
}

// New returns a store opened on the provider's first child and the Home tab.
func New(children dataset.Provider) *Store {
	return &Store{
		children: children,
		state: State{
			ActiveTab:     models.TabHome,
			ActiveChildID: children.FirstChildID(),
			Permissions:   models.DefaultPermissions(),
		},
	}
}

func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

func (s *Store) ActiveTab() models.Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ActiveTab
}

func (s *Store) ActiveChildID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ActiveChildID
}

// ActiveChild returns a copy of the active child's record.
func (s *Store) ActiveChild() (models.Child, error) {
	return s.children.GetChild(s.ActiveChildID())
}

func (s *Store) Permission(kind models.PermissionKind) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Permissions.Get(kind)
}

// SetActiveTab switches tabs. Leaving a tab drops its transient state: the selected
// card, the image editor, the switcher and the permission toggles all reset.
func (s *Store) SetActiveTab(tab models.Tab) error {
	if !tab.Valid() {
		logger.Debug("Rejected tab change", "tab", tab)
		return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}
	return s.update(func(st *State) error {
		if st.ActiveTab == tab {
			return nil
		}
		st.ActiveTab = tab
		st.SelectedCard = nil
		st.ImageEditorOpen = false
		st.SwitcherOpen = false
		st.Permissions = models.DefaultPermissions()
		return nil
	})
}

// SetActiveChildID makes id the active child. The selected card and every overlay are
// cleared even when the new child owns a card with the same id. Selecting the child
// that is already active only closes the switcher.
func (s *Store) SetActiveChildID(id string) error {
	if _, err := s.children.GetChild(id); err != nil {
		logger.Debug("Rejected child change", "child", id, "error", err)
		return err
	}
	return s.update(func(st *State) error {
		st.SwitcherOpen = false
		if st.ActiveChildID == id {
			return nil
		}
		st.ActiveChildID = id
		st.SelectedCard = nil
		st.ImageEditorOpen = false
		return nil
	})
}

func (s *Store) OpenChildSwitcher() {
	_ = s.update(func(st *State) error {
		st.SwitcherOpen = true
		return nil
	})
}

func (s *Store) CloseChildSwitcher() {
	_ = s.update(func(st *State) error {
		st.SwitcherOpen = false
		return nil
	})
}

func (s *Store) ToggleChildSwitcher() {
	_ = s.update(func(st *State) error {
		st.SwitcherOpen = !st.SwitcherOpen
		return nil
	})
}

// SelectCard opens the detail view for card, or closes it when card is nil.
func (s *Store) SelectCard(card *models.ShareCard) error {
	if card == nil {
		return s.update(func(st *State) error {
			st.SelectedCard = nil
			return nil
		})
	}

	child, err := s.ActiveChild()
	if err != nil {
		return err
	}
	owned, ok := child.ShareCard(card.ID)
	if !ok {
		logger.Debug("Rejected card selection", "child", child.ID, "card", card.ID)
		return fmt.Errorf("%w: %q", ErrUnknownCard, card.ID)
	}

	return s.update(func(st *State) error {
		if st.ActiveChildID != child.ID {
			return fmt.Errorf("%w: %q", ErrUnknownCard, card.ID)
		}
		st.SelectedCard = &owned
		return nil
	})
}

func (s *Store) SetImageEditorOpen(open bool) {
	_ = s.update(func(st *State) error {
		st.ImageEditorOpen = open
		return nil
	})
}

// OpenImageEditor closes the card detail and opens the editor in a single transition.
func (s *Store) OpenImageEditor() {
	_ = s.update(func(st *State) error {
		st.SelectedCard = nil
		st.ImageEditorOpen = true
		return nil
	})
}

func (s *Store) SetPermission(kind models.PermissionKind, enabled bool) error {
	return s.update(func(st *State) error {
		perms, ok := st.Permissions.With(kind, enabled)
		if !ok {
			return fmt.Errorf("unknown permission %q", kind)
		}
		st.Permissions = perms
		return nil
	})
}

// TogglePermission flips a permission and returns its new value.
func (s *Store) TogglePermission(kind models.PermissionKind) (bool, error) {
	var enabled bool
	err := s.update(func(st *State) error {
		enabled = !st.Permissions.Get(kind)
		perms, ok := st.Permissions.With(kind, enabled)
		if !ok {
			return fmt.Errorf("unknown permission %q", kind)
		}
		st.Permissions = perms
		return nil
	})
	return enabled, err
}

// Subscribe registers fn for state changes. The returned func removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers = append(s.subscribers, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subscribers {
				if sub.id == id {
					s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Store) update(fn func(*State) error) error {
	s.mu.Lock()
	prev := s.state.clone()
	next := s.state.clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = next
	subs := append([]subscription(nil), s.subscribers...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(prev.clone(), next.clone())
	}
	return nil
}
