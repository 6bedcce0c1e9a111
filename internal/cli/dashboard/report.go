package dashboard

import (
	"fmt"

	"github.com/julianstephens/lumibot/internal/cli"
	"github.com/julianstephens/lumibot/internal/logger"
	"github.com/julianstephens/lumibot/internal/report"
)

// ReportCmd exports a child's weekly report as Markdown.
type ReportCmd struct {
	Child  string `arg:"" help:"Child ID."`
	Output string `help:"Write the report to this file instead of stdout." short:"o" type:"path"`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
	child, err := ctx.Dataset.GetChild(c.Child)
	if err != nil {
		return err
	}

	if c.Output == "" {
		fmt.Fprint(ctx.Stdout(), report.Markdown(child))
		return nil
	}

	if err := report.WriteFile(c.Output, child); err != nil {
		return err
	}
	logger.Info("Exported weekly report", "child", child.ID, "path", c.Output)
	fmt.Fprintf(ctx.Stdout(), "✓ Weekly report for %s written to %s\n", child.Name, c.Output)
	return nil
}
