package system

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/lumibot/internal/cli"
	"github.com/julianstephens/lumibot/internal/config"
	"github.com/julianstephens/lumibot/internal/constants"
	"github.com/julianstephens/lumibot/internal/dataset"
)

// InitCmd writes the active dataset to a JSON file that can be edited and passed back
// with --dataset.
type InitCmd struct {
	Path  string `arg:"" optional:"" help:"Where to write the dataset. Defaults to ~/.config/lumibot/children.json."`
	Force bool   `help:"Overwrite an existing file."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	path := c.Path
	if path == "" {
		path = filepath.Join(constants.DefaultConfigDir, "children.json")
	}
	path, err := config.ExpandPath(path)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !c.Force {
		return fmt.Errorf("%s already exists; use --force to overwrite it", path)
	} else if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to access %s: %w", path, err)
	}

	data, err := json.MarshalIndent(ctx.Dataset.ListChildren(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	// make sure what we wrote loads back
	if _, err := dataset.LoadFile(path); err != nil {
		return fmt.Errorf("written dataset does not load: %w", err)
	}

	out := ctx.Stdout()
	fmt.Fprintf(out, "✓ Dataset with %d children written to %s\n", len(ctx.Dataset.ListChildren()), path)
	fmt.Fprintf(out, "  Use it with: %s --dataset %s\n", constants.AppName, path)
	return nil
}
