package system

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lumibot/internal/cli"
	"github.com/julianstephens/lumibot/internal/logger"
	"github.com/julianstephens/lumibot/internal/selection"
	"github.com/julianstephens/lumibot/internal/tui"
)

type TuiCmd struct {
	Child string `help:"Open the dashboard on this child ID instead of the first one."`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	store := selection.New(ctx.Dataset)
	if c.Child != "" {
		if err := store.SetActiveChildID(c.Child); err != nil {
			return err
		}
	}

	gen, release, err := ctx.NewGenerator(context.Background())
	if err != nil {
		return err
	}
	defer release()

	logger.Info("Starting dashboard", "child", store.ActiveChildID(), "api_key", ctx.Config.KeySource)
	model := tui.NewModel(store, ctx.Dataset, gen, ctx.Config.Timeout)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard exited: %w", err)
	}
	return nil
}
