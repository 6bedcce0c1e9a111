package system

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/lumibot/internal/dataset"
)

func TestInitCmd(t *testing.T) {
	ctx, out := setupDoctorContext(t, nil)
	path := filepath.Join(t.TempDir(), "nested", "children.json")

	if err := (&InitCmd{Path: path}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Dataset with 2 children written to") {
		t.Errorf("unexpected output: %s", out.String())
	}

	loaded, err := dataset.LoadFile(path)
	if err != nil {
		t.Fatalf("written dataset does not load: %v", err)
	}
	if got := loaded.ListChildren(); len(got) != 2 || got[0].ID != "child1" {
		t.Errorf("round-tripped children = %v", got)
	}
}

func TestInitCmd_ExistingFile(t *testing.T) {
	ctx, _ := setupDoctorContext(t, nil)
	path := filepath.Join(t.TempDir(), "children.json")
	if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := (&InitCmd{Path: path}).Run(ctx); err == nil {
		t.Fatal("init overwrote an existing file without --force")
	}
	if data, _ := os.ReadFile(path); string(data) != "[]" {
		t.Error("existing file was modified")
	}

	if err := (&InitCmd{Path: path, Force: true}).Run(ctx); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}
	if data, _ := os.ReadFile(path); string(data) == "[]" {
		t.Error("--force did not overwrite the file")
	}
}
