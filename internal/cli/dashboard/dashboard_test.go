package dashboard

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/lumibot/internal/cli"
	"github.com/julianstephens/lumibot/internal/constants"
	"github.com/julianstephens/lumibot/internal/dataset"
	"github.com/julianstephens/lumibot/internal/models"
)

func setupContext(t *testing.T, children ...models.Child) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	var (
		provider dataset.Provider
		err      error
	)
	if len(children) > 0 {
		provider, err = dataset.New(children)
	} else {
		provider, err = dataset.Default()
	}
	if err != nil {
		t.Fatalf("failed to build dataset: %v", err)
	}
	var out bytes.Buffer
	return &cli.Context{Dataset: provider, Out: &out}, &out
}

func TestSharesCmd(t *testing.T) {
	ctx, out := setupContext(t)

	if err := (&SharesCmd{Child: "child1", ShowIDs: true}).Run(ctx); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	got := out.String()

	order := []string{"(ID: sc1)", "(ID: sc2)", "(ID: sc7)", "(ID: sc4)"}
	last := -1
	for _, id := range order {
		i := strings.Index(got, id)
		if i < 0 || i < last {
			t.Fatalf("cards out of order, want %v:\n%s", order, got)
		}
		last = i
	}
	if !strings.Contains(got, "lumibot edit-image") {
		t.Error("showcase card missing the edit hint")
	}
}

func TestSharesCmd_TypeFilter(t *testing.T) {
	ctx, out := setupContext(t)

	if err := (&SharesCmd{Child: "child2", Type: string(models.CardTypeShowcase)}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "看我搭的城堡！") || strings.Contains(got, "今天有点不开心") {
		t.Errorf("type filter not applied:\n%s", got)
	}
}

func TestSharesCmd_Empty(t *testing.T) {
	ctx, out := setupContext(t, models.Child{ID: "c1", Name: "Sam"})
	if err := (&SharesCmd{Child: "c1"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != constants.ShareCardsEmpty {
		t.Errorf("output = %q, want the empty state", out.String())
	}
}

func TestSharesCmd_UnknownChild(t *testing.T) {
	ctx, _ := setupContext(t)
	if err := (&SharesCmd{Child: "ghost"}).Run(ctx); !errors.Is(err, dataset.ErrNotFound) {
		t.Errorf("Run() error = %v, want dataset.ErrNotFound", err)
	}
}

func TestAlertsCmd(t *testing.T) {
	tests := []struct {
		name    string
		cmd     AlertsCmd
		want    []string
		notWant []string
	}{
		{
			name:    "pending only",
			cmd:     AlertsCmd{},
			want:    []string{"Leo:", "安全词触发", constants.RiskNeedsAttention},
			notWant: []string{"高风险内容", "Mia:"},
		},
		{
			name: "all reports",
			cmd:  AlertsCmd{All: true},
			want: []string{"安全词触发", "高风险内容", "[viewed]"},
		},
		{
			name: "child without reports",
			cmd:  AlertsCmd{Child: "child2"},
			want: []string{constants.SettingsNoSafetyReports},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := setupContext(t)
			if err := tt.cmd.Run(ctx); err != nil {
				t.Fatalf("Run() failed: %v", err)
			}
			got := out.String()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("output missing %q:\n%s", w, got)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("output contains %q:\n%s", w, got)
				}
			}
		})
	}
}

func TestReportCmd(t *testing.T) {
	ctx, out := setupContext(t)

	if err := (&ReportCmd{Child: "child1"}).Run(ctx); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "# ") {
		t.Errorf("stdout report does not start with a title:\n%s", out.String())
	}

	out.Reset()
	path := filepath.Join(t.TempDir(), "reports", "leo.md")
	if err := (&ReportCmd{Child: "child1", Output: path}).Run(ctx); err != nil {
		t.Fatalf("Run() with output failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.Contains(string(data), "Leo") {
		t.Error("written report missing the child's name")
	}
	if !strings.Contains(out.String(), "✓ Weekly report for Leo written to") {
		t.Errorf("confirmation = %q", out.String())
	}
}
