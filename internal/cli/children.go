package cli

import (
	"fmt"

	"github.com/julianstephens/lumibot/internal/projection"
)

type ChildrenCmd struct{}

func (c *ChildrenCmd) Run(ctx *Context) error {
	out := ctx.Stdout()
	children := ctx.Dataset.ListChildren()
	first := ctx.Dataset.FirstChildID()

	fmt.Fprintln(out, "Children:")
	for _, child := range children {
		marker := " "
		if projection.HasPendingRequests(child) {
			marker = "●"
		}
		def := ""
		if child.ID == first {
			def = " (default)"
		}
		pending, completed := projection.TaskCounts(child)
		fmt.Fprintf(out, "  %s %s (ID: %s)%s\n", marker, child.Name, child.ID, def)
		fmt.Fprintf(out, "      %d pending requests, %d share cards, %d safety alerts, tasks %d/%d done\n",
			child.Today.PendingRequests, len(child.ShareCards), len(projection.PendingSafetyAlerts(child)),
			completed, pending+completed)
	}
	fmt.Fprintf(out, "\nTotal pending requests: %d\n", projection.PendingRequestTotal(children))
	return nil
}
