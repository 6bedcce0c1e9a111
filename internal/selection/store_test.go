package selection

import (
	"errors"
	"sync"
	"testing"

	"github.com/julianstephens/lumibot/internal/dataset"
	"github.com/julianstephens/lumibot/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	provider, err := dataset.Default()
	if err != nil {
		t.Fatalf("dataset.Default() failed: %v", err)
	}
	return New(provider)
}

// collidingStore has two children that both own a card with id "shared".
func collidingStore(t *testing.T) *Store {
	t.Helper()
	provider, err := dataset.New([]models.Child{
		{ID: "a", Name: "Leo", ShareCards: []models.ShareCard{{ID: "shared", Type: models.CardTypeShowcase, Title: "Leo's"}}},
		{ID: "b", Name: "Mia", ShareCards: []models.ShareCard{{ID: "shared", Type: models.CardTypeShowcase, Title: "Mia's"}}},
	})
	if err != nil {
		t.Fatalf("dataset.New() failed: %v", err)
	}
	return New(provider)
}

func TestNew_Defaults(t *testing.T) {
	s := newTestStore(t)
	st := s.Snapshot()

	if st.ActiveTab != models.TabHome {
		t.Errorf("ActiveTab = %s, want Home", st.ActiveTab)
	}
	if st.ActiveChildID != "child1" {
		t.Errorf("ActiveChildID = %s, want child1", st.ActiveChildID)
	}
	if st.SwitcherOpen || st.ImageEditorOpen || st.SelectedCard != nil {
		t.Errorf("overlays open on a fresh store: %+v", st)
	}
	if st.Permissions != models.DefaultPermissions() {
		t.Errorf("Permissions = %+v, want defaults", st.Permissions)
	}
}

func TestSetActiveTab(t *testing.T) {
	s := newTestStore(t)

	for _, tab := range models.Tabs {
		if err := s.SetActiveTab(tab); err != nil {
			t.Fatalf("SetActiveTab(%s) failed: %v", tab, err)
		}
		if got := s.ActiveTab(); got != tab {
			t.Errorf("ActiveTab() = %s, want %s", got, tab)
		}
	}

	err := s.SetActiveTab(models.Tab("Chat"))
	if !errors.Is(err, ErrUnknownTab) {
		t.Errorf("SetActiveTab(unknown) error = %v, want ErrUnknownTab", err)
	}
	if got := s.ActiveTab(); got != models.TabSettings {
		t.Errorf("unknown tab changed state to %s", got)
	}
}

func TestSetActiveTab_ResetsTransientState(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetActiveTab(models.TabShares); err != nil {
		t.Fatal(err)
	}
	card := models.ShareCard{ID: "sc1"}
	if err := s.SelectCard(&card); err != nil {
		t.Fatalf("SelectCard() failed: %v", err)
	}
	if err := s.SetPermission(models.PermissionSnippet, true); err != nil {
		t.Fatal(err)
	}
	s.OpenChildSwitcher()

	if err := s.SetActiveTab(models.TabInsights); err != nil {
		t.Fatal(err)
	}

	st := s.Snapshot()
	if st.SelectedCard != nil || st.SwitcherOpen || st.ImageEditorOpen {
		t.Errorf("transient state survived tab change: %+v", st)
	}
	if st.Permissions != models.DefaultPermissions() {
		t.Errorf("Permissions = %+v, want defaults after tab change", st.Permissions)
	}
}

func TestSetActiveTab_SameTabKeepsState(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetPermission(models.PermissionSummary, false); err != nil {
		t.Fatal(err)
	}
	if err := s.SetActiveTab(models.TabHome); err != nil {
		t.Fatal(err)
	}
	if s.Permission(models.PermissionSummary) {
		t.Error("re-selecting the current tab reset permissions")
	}
}

func TestSetActiveChildID(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetActiveChildID("child2"); err != nil {
		t.Fatalf("SetActiveChildID() failed: %v", err)
	}
	if got := s.ActiveChildID(); got != "child2" {
		t.Errorf("ActiveChildID() = %s, want child2", got)
	}
	child, err := s.ActiveChild()
	if err != nil || child.Name != "Mia" {
		t.Errorf("ActiveChild() = %s, %v; want Mia", child.Name, err)
	}

	err = s.SetActiveChildID("ghost")
	if !errors.Is(err, dataset.ErrNotFound) {
		t.Errorf("SetActiveChildID(unknown) error = %v, want dataset.ErrNotFound", err)
	}
	if got := s.ActiveChildID(); got != "child2" {
		t.Errorf("unknown child changed state to %s", got)
	}
}

func TestSetActiveChildID_ClearsSelectionWithCollidingIDs(t *testing.T) {
	s := collidingStore(t)

	card := models.ShareCard{ID: "shared"}
	if err := s.SelectCard(&card); err != nil {
		t.Fatalf("SelectCard() failed: %v", err)
	}
	s.SetImageEditorOpen(true)
	s.OpenChildSwitcher()
	if err := s.SetPermission(models.PermissionSnippet, true); err != nil {
		t.Fatal(err)
	}

	if err := s.SetActiveChildID("b"); err != nil {
		t.Fatalf("SetActiveChildID() failed: %v", err)
	}

	st := s.Snapshot()
	if st.SelectedCard != nil {
		t.Errorf("SelectedCard = %+v, want nil after child change", st.SelectedCard)
	}
	if st.ImageEditorOpen {
		t.Error("image editor still open after child change")
	}
	if st.SwitcherOpen {
		t.Error("switcher still open after child change")
	}
	if !st.Permissions.AllowSnippet {
		t.Error("child change reset permissions")
	}
}

func TestSetActiveChildID_SameChild(t *testing.T) {
	s := newTestStore(t)
	card := models.ShareCard{ID: "sc1"}
	if err := s.SelectCard(&card); err != nil {
		t.Fatal(err)
	}
	s.OpenChildSwitcher()

	if err := s.SetActiveChildID("child1"); err != nil {
		t.Fatal(err)
	}
	st := s.Snapshot()
	if st.SwitcherOpen {
		t.Error("switcher still open")
	}
	if st.SelectedCard == nil || st.SelectedCard.ID != "sc1" {
		t.Errorf("SelectedCard = %+v, want sc1 kept", st.SelectedCard)
	}
}

func TestChildSwitcher(t *testing.T) {
	s := newTestStore(t)

	s.OpenChildSwitcher()
	if !s.Snapshot().SwitcherOpen {
		t.Error("OpenChildSwitcher() did not open")
	}
	s.ToggleChildSwitcher()
	if s.Snapshot().SwitcherOpen {
		t.Error("ToggleChildSwitcher() did not close")
	}
	s.ToggleChildSwitcher()
	s.CloseChildSwitcher()
	if s.Snapshot().SwitcherOpen {
		t.Error("CloseChildSwitcher() did not close")
	}
}

func TestSelectCard(t *testing.T) {
	s := newTestStore(t)

	err := s.SelectCard(&models.ShareCard{ID: "sc3"}) // Mia's card
	if !errors.Is(err, ErrUnknownCard) {
		t.Errorf("SelectCard(other child's card) error = %v, want ErrUnknownCard", err)
	}
	if s.Snapshot().SelectedCard != nil {
		t.Error("rejected card was selected")
	}

	if err := s.SelectCard(&models.ShareCard{ID: "sc1"}); err != nil {
		t.Fatalf("SelectCard() failed: %v", err)
	}
	st := s.Snapshot()
	if st.SelectedCard == nil || st.SelectedCard.Title == "" {
		t.Fatalf("SelectedCard = %+v, want the dataset's sc1", st.SelectedCard)
	}

	if err := s.SelectCard(nil); err != nil {
		t.Fatalf("SelectCard(nil) failed: %v", err)
	}
	if s.Snapshot().SelectedCard != nil {
		t.Error("SelectCard(nil) did not clear the selection")
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := newTestStore(t)
	if err := s.SelectCard(&models.ShareCard{ID: "sc1"}); err != nil {
		t.Fatal(err)
	}

	st := s.Snapshot()
	st.SelectedCard.Title = "changed"
	st.ActiveTab = models.TabSettings

	again := s.Snapshot()
	if again.SelectedCard.Title == "changed" || again.ActiveTab != models.TabHome {
		t.Errorf("mutating a snapshot leaked into the store: %+v", again)
	}
}

func TestOpenImageEditor(t *testing.T) {
	s := newTestStore(t)
	if err := s.SelectCard(&models.ShareCard{ID: "sc4"}); err != nil {
		t.Fatal(err)
	}

	var transitions int
	unsubscribe := s.Subscribe(func(prev, next State) { transitions++ })
	defer unsubscribe()

	s.OpenImageEditor()

	st := s.Snapshot()
	if !st.ImageEditorOpen || st.SelectedCard != nil {
		t.Errorf("OpenImageEditor() state = %+v, want editor open and no card", st)
	}
	if transitions != 1 {
		t.Errorf("OpenImageEditor() produced %d transitions, want 1", transitions)
	}

	s.SetImageEditorOpen(false)
	if s.Snapshot().ImageEditorOpen {
		t.Error("SetImageEditorOpen(false) did not close the editor")
	}
}

func TestPermissions(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetPermission(models.PermissionSnippet, true); err != nil {
		t.Fatal(err)
	}
	if !s.Permission(models.PermissionSnippet) {
		t.Error("Permission(snippet) = false after enabling")
	}

	enabled, err := s.TogglePermission(models.PermissionSummary)
	if err != nil || enabled {
		t.Errorf("TogglePermission(summary) = %v, %v; want false, nil", enabled, err)
	}

	if err := s.SetPermission(models.PermissionKind("location"), true); err == nil {
		t.Error("SetPermission(unknown) succeeded")
	}
}

func TestSubscribe(t *testing.T) {
	s := newTestStore(t)

	var got []State
	unsubscribe := s.Subscribe(func(prev, next State) {
		got = append(got, prev, next)
	})

	if err := s.SetActiveTab(models.TabShares); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ActiveTab != models.TabHome || got[1].ActiveTab != models.TabShares {
		t.Fatalf("listener saw %+v, want Home -> Shares", got)
	}

	// rejected transitions do not notify
	_ = s.SetActiveTab(models.Tab("bogus"))
	_ = s.SetActiveChildID("ghost")
	if len(got) != 2 {
		t.Errorf("listener notified on rejected transitions: %d calls", len(got)/2)
	}

	unsubscribe()
	unsubscribe()
	s.OpenChildSwitcher()
	if len(got) != 2 {
		t.Error("listener notified after unsubscribe")
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.ToggleChildSwitcher()
				_ = s.SetActiveTab(models.Tabs[j%len(models.Tabs)])
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				st := s.Snapshot()
				if !st.ActiveTab.Valid() {
					t.Errorf("snapshot has invalid tab %q", st.ActiveTab)
				}
			}
		}()
	}
	wg.Wait()
}
