package dashboard

import (
	"fmt"

	"github.com/julianstephens/lumibot/internal/cli"
	"github.com/julianstephens/lumibot/internal/constants"
	"github.com/julianstephens/lumibot/internal/models"
	"github.com/julianstephens/lumibot/internal/projection"
)

// AlertsCmd prints pending safety alerts for every child, or for one child.
type AlertsCmd struct {
	Child string `help:"Only show alerts for this child ID."`
	All   bool   `help:"Include reports that were already viewed."`
}

func (c *AlertsCmd) Run(ctx *cli.Context) error {
	children := ctx.Dataset.ListChildren()
	if c.Child != "" {
		child, err := ctx.Dataset.GetChild(c.Child)
		if err != nil {
			return err
		}
		children = []models.Child{child}
	}

	out := ctx.Stdout()
	total := 0
	for _, child := range children {
		reports := projection.PendingSafetyAlerts(child)
		if c.All {
			reports = child.SafetyReports
		}
		if len(reports) == 0 {
			continue
		}

		fmt.Fprintf(out, "%s:\n", child.Name)
		for _, r := range reports {
			total++
			status := constants.RiskNeedsAttention
			if !r.IsPending() {
				status = string(r.Status)
			}
			fmt.Fprintf(out, "  [%s] %s - %s\n", status, r.Category, r.Time)
			fmt.Fprintf(out, "      %s\n", r.Summary)
			fmt.Fprintf(out, "      %s: %s\n", constants.SafetySystemAction, r.SystemAction)
			fmt.Fprintf(out, "      %s: %s\n", constants.RiskSuggestion, r.Suggestion)
		}
	}

	if total == 0 {
		fmt.Fprintln(out, constants.SettingsNoSafetyReports)
	}
	return nil
}
