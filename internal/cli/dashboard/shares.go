package dashboard

import (
	"fmt"

	"github.com/julianstephens/lumibot/internal/cli"
	"github.com/julianstephens/lumibot/internal/constants"
	"github.com/julianstephens/lumibot/internal/projection"
)

// SharesCmd lists a child's share cards, newest first.
type SharesCmd struct {
	Child   string `arg:"" help:"Child ID."`
	Type    string `help:"Only show cards of this type (e.g. 成果展示)."`
	ShowIDs bool   `help:"Show card IDs." name:"show-ids"`
}

func (c *SharesCmd) Run(ctx *cli.Context) error {
	child, err := ctx.Dataset.GetChild(c.Child)
	if err != nil {
		return err
	}

	out := ctx.Stdout()
	cards := projection.SortedShareCards(child)
	if len(cards) == 0 {
		fmt.Fprintln(out, constants.ShareCardsEmpty)
		return nil
	}

	fmt.Fprintf(out, "Share cards for %s:\n", child.Name)
	shown := 0
	for _, card := range cards {
		if c.Type != "" && string(card.Type) != c.Type {
			continue
		}
		shown++

		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", card.ID)
		}
		fmt.Fprintf(out, "  [%s] %s%s - %s, %s\n", card.Visibility, card.Title, idStr, card.Type, card.Timestamp)
		fmt.Fprintf(out, "      %s\n", card.Summary)
		if card.HasComment() {
			fmt.Fprintf(out, "      \"%s\"\n", card.ChildsComment)
		}
		if projection.CanEditImage(card) {
			fmt.Fprintln(out, "      (image can be edited with 'lumibot edit-image')")
		}
	}
	if shown == 0 {
		fmt.Fprintf(out, "  No %s cards\n", c.Type)
	}
	return nil
}
