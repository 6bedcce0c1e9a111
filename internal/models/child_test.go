package models

import "testing"

func TestChild_Validate(t *testing.T) {
	tests := []struct {
		name    string
		child   Child
		wantErr bool
	}{
		{
			name: "valid child",
			child: Child{
				ID:   "child1",
				Name: "Leo",
				Tasks: []Task{
					{ID: "t1", Title: "a", Status: TaskStatusPending},
					{ID: "t2", Title: "b", Status: TaskStatusCompleted},
				},
				ShareCards:    []ShareCard{{ID: "sc1"}, {ID: "sc2"}},
				SafetyReports: []SafetyReport{{ID: "sr1"}},
			},
			wantErr: false,
		},
		{
			name:    "missing id",
			child:   Child{Name: "Leo"},
			wantErr: true,
		},
		{
			name:    "missing name",
			child:   Child{ID: "child1"},
			wantErr: true,
		},
		{
			name: "duplicate task id",
			child: Child{
				ID:    "child1",
				Name:  "Leo",
				Tasks: []Task{{ID: "t1"}, {ID: "t1"}},
			},
			wantErr: true,
		},
		{
			name: "duplicate share card id",
			child: Child{
				ID:         "child1",
				Name:       "Leo",
				ShareCards: []ShareCard{{ID: "sc1"}, {ID: "sc1"}},
			},
			wantErr: true,
		},
		{
			name: "empty safety report id",
			child: Child{
				ID:            "child1",
				Name:          "Leo",
				SafetyReports: []SafetyReport{{ID: ""}},
			},
			wantErr: true,
		},
		{
			name: "same id across kinds is allowed",
			child: Child{
				ID:            "child1",
				Name:          "Leo",
				Tasks:         []Task{{ID: "x"}},
				ShareCards:    []ShareCard{{ID: "x"}},
				SafetyReports: []SafetyReport{{ID: "x"}},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.child.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestChild_CloneIsDeep(t *testing.T) {
	orig := Child{
		ID:   "child1",
		Name: "Leo",
		Today: Today{
			Topics:                  []string{"恐龙"},
			InteractionDistribution: []NameValue{{Name: "早", Value: 20}},
		},
		Tasks:      []Task{{ID: "t1", Title: "original"}},
		ShareCards: []ShareCard{{ID: "sc1", Title: "original"}},
		WeeklyReport: WeeklyReport{
			TopTopics:       []NameValue{{Name: "科学", Value: 40}},
			Achievements:    []string{"original"},
			Recommendations: []Note{{Title: "original"}},
		},
		SafetyReports: []SafetyReport{{ID: "sr1", Status: SafetyStatusPending}},
	}

	c := orig.Clone()
	c.Today.Topics[0] = "changed"
	c.Today.InteractionDistribution[0].Value = 99
	c.Tasks[0].Title = "changed"
	c.ShareCards[0].Title = "changed"
	c.WeeklyReport.TopTopics[0].Value = 99
	c.WeeklyReport.Achievements[0] = "changed"
	c.WeeklyReport.Recommendations[0].Title = "changed"
	c.SafetyReports[0].Status = SafetyStatusViewed

	if orig.Today.Topics[0] != "恐龙" {
		t.Error("Clone() shares Today.Topics with the original")
	}
	if orig.Today.InteractionDistribution[0].Value != 20 {
		t.Error("Clone() shares Today.InteractionDistribution with the original")
	}
	if orig.Tasks[0].Title != "original" {
		t.Error("Clone() shares Tasks with the original")
	}
	if orig.ShareCards[0].Title != "original" {
		t.Error("Clone() shares ShareCards with the original")
	}
	if orig.WeeklyReport.TopTopics[0].Value != 40 {
		t.Error("Clone() shares WeeklyReport.TopTopics with the original")
	}
	if orig.WeeklyReport.Achievements[0] != "original" {
		t.Error("Clone() shares WeeklyReport.Achievements with the original")
	}
	if orig.WeeklyReport.Recommendations[0].Title != "original" {
		t.Error("Clone() shares WeeklyReport.Recommendations with the original")
	}
	if orig.SafetyReports[0].Status != SafetyStatusPending {
		t.Error("Clone() shares SafetyReports with the original")
	}
}

func TestChild_CloneKeepsNil(t *testing.T) {
	c := Child{ID: "child1", Name: "Leo"}.Clone()
	if c.Tasks != nil || c.ShareCards != nil || c.SafetyReports != nil {
		t.Error("Clone() turned nil slices into empty slices")
	}
}

func TestChild_ShareCard(t *testing.T) {
	c := Child{ShareCards: []ShareCard{{ID: "sc1", Title: "first"}, {ID: "sc2", Title: "second"}}}

	card, ok := c.ShareCard("sc2")
	if !ok || card.Title != "second" {
		t.Errorf("ShareCard(sc2) = %+v, %v; want second, true", card, ok)
	}
	if _, ok := c.ShareCard("missing"); ok {
		t.Error("ShareCard(missing) reported found")
	}
}

func TestTab_Valid(t *testing.T) {
	for _, tab := range Tabs {
		if !tab.Valid() {
			t.Errorf("Tab(%q).Valid() = false, want true", tab)
		}
	}
	if Tab("Safety").Valid() {
		t.Error(`Tab("Safety").Valid() = true, want false`)
	}
}

func TestPermissions(t *testing.T) {
	p := DefaultPermissions()
	if !p.Get(PermissionSummary) || p.Get(PermissionSnippet) {
		t.Fatalf("DefaultPermissions() = %+v, want summary on and snippet off", p)
	}

	p, ok := p.With(PermissionSnippet, true)
	if !ok || !p.AllowSnippet {
		t.Errorf("With(snippet, true) = %+v, %v", p, ok)
	}

	p, ok = p.With(PermissionSummary, false)
	if !ok || p.AllowSummary {
		t.Errorf("With(summary, false) = %+v, %v", p, ok)
	}

	before := p
	p, ok = p.With(PermissionKind("camera"), true)
	if ok {
		t.Error("With(unknown) reported ok")
	}
	if p != before {
		t.Errorf("With(unknown) changed permissions: %+v -> %+v", before, p)
	}
	if p.Get(PermissionKind("camera")) {
		t.Error("Get(unknown) = true, want false")
	}
}

func TestStatusHelpers(t *testing.T) {
	if !(Task{Status: TaskStatusCompleted}).IsCompleted() {
		t.Error("completed task reported not completed")
	}
	if (Task{Status: TaskStatusPending}).IsCompleted() {
		t.Error("pending task reported completed")
	}
	if !(SafetyReport{Status: SafetyStatusPending}).IsPending() {
		t.Error("pending report reported not pending")
	}
	if (SafetyReport{Status: SafetyStatusViewed}).IsPending() {
		t.Error("viewed report reported pending")
	}
}
