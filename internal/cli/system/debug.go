package system

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/julianstephens/lumibot/internal/cli"
	"github.com/julianstephens/lumibot/internal/keyring"
	"github.com/julianstephens/lumibot/internal/models"
	"github.com/julianstephens/lumibot/internal/projection"
)

type DebugCmd struct {
	Config    *DebugConfigCmd    `cmd:"" help:"Show the resolved runtime configuration."`
	DumpChild *DebugDumpChildCmd `cmd:"" help:"Dump a child record as JSON."`
	DumpCard  *DebugDumpCardCmd  `cmd:"" help:"Dump a share card as JSON."`
	DumpTabs  *DebugDumpTabsCmd  `cmd:"" help:"Dump the navigation tabs as JSON."`
}

type DebugConfigCmd struct{}

func (cmd *DebugConfigCmd) Run(ctx *cli.Context) error {
	key := ""
	if ctx.Config.HasAPIKey() {
		key = keyring.Mask(ctx.Config.APIKey)
	}

	// Output in machine-readable format
	output := map[string]string{
		"model":      ctx.Config.Model,
		"timeout":    ctx.Config.Timeout.String(),
		"api_key":    key,
		"key_source": string(ctx.Config.KeySource),
	}
	return writeJSON(ctx.Stdout(), output)
}

type DebugDumpChildCmd struct {
	ID string `arg:"" help:"Child ID to dump."`
}

func (cmd *DebugDumpChildCmd) Run(ctx *cli.Context) error {
	child, err := ctx.Dataset.GetChild(cmd.ID)
	if err != nil {
		return err
	}
	return writeJSON(ctx.Stdout(), child)
}

type DebugDumpCardCmd struct {
	Child string `arg:"" help:"Child ID that owns the card."`
	ID    string `arg:"" help:"Share card ID to dump."`
}

func (cmd *DebugDumpCardCmd) Run(ctx *cli.Context) error {
	child, err := ctx.Dataset.GetChild(cmd.Child)
	if err != nil {
		return err
	}
	card, ok := child.ShareCard(cmd.ID)
	if !ok {
		return fmt.Errorf("no share card %q for child %s", cmd.ID, cmd.Child)
	}

	output := struct {
		Card     models.ShareCard `json:"card"`
		Editable bool             `json:"editable"`
	}{card, projection.CanEditImage(card)}
	return writeJSON(ctx.Stdout(), output)
}

type DebugDumpTabsCmd struct{}

func (cmd *DebugDumpTabsCmd) Run(ctx *cli.Context) error {
	return writeJSON(ctx.Stdout(), ctx.Dataset.Tabs())
}

func writeJSON(w io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(w, string(jsonBytes))
	return nil
}
