package system

import (
	"errors"
	"fmt"
	"slices"

	"github.com/julianstephens/lumibot/internal/cli"
	"github.com/julianstephens/lumibot/internal/config"
	"github.com/julianstephens/lumibot/internal/keyring"
	"github.com/julianstephens/lumibot/internal/logger"
	"github.com/julianstephens/lumibot/internal/models"
)

var errNoAPIKey = errors.New("no API key configured; the image editor will report every edit as failed")

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	hasError := false
	datasetOK := false

	// Check 1: dataset loaded and valid
	if err := checkDataset(ctx); err != nil {
		fmt.Fprintf(out, "❌ Dataset: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Dataset: OK (%d children)\n", len(ctx.Dataset.ListChildren()))
		datasetOK = true
	}

	// Check 2 and 3 read records, so they need a valid dataset
	if datasetOK {
		if err := checkShareCards(ctx); err != nil {
			fmt.Fprintf(out, "❌ Share cards: FAIL\n")
			fmt.Fprintf(out, "   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Fprintf(out, "✓ Share cards: OK\n")
		}

		if err := checkSafetyReports(ctx); err != nil {
			fmt.Fprintf(out, "❌ Safety reports: FAIL\n")
			fmt.Fprintf(out, "   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Fprintf(out, "✓ Safety reports: OK\n")
		}
	} else {
		fmt.Fprintf(out, "⊘ Share cards: SKIPPED (dataset not loaded)\n")
		fmt.Fprintf(out, "⊘ Safety reports: SKIPPED (dataset not loaded)\n")
	}

	// Check 4: image settings
	if err := checkImageSettings(ctx.Config); err != nil {
		fmt.Fprintf(out, "❌ Image settings: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Image settings: OK (model %s, timeout %s)\n", ctx.Config.Model, ctx.Config.Timeout)
	}

	// Check 5: API key (warning only)
	if err := checkAPIKey(ctx.Config); err != nil {
		fmt.Fprintf(out, "⚠ API key: WARNING\n")
		fmt.Fprintf(out, "   %v\n", err)
	} else {
		fmt.Fprintf(out, "✓ API key: OK (from %s)\n", ctx.Config.KeySource)
	}

	// Check 6: keyring (warning only)
	if keyring.IsAvailable() {
		fmt.Fprintf(out, "✓ OS keyring: OK\n")
	} else {
		fmt.Fprintf(out, "⚠ OS keyring: WARNING\n")
		fmt.Fprintf(out, "   keyring unavailable; use --api-key or $LUMIBOT_API_KEY instead\n")
	}

	if path := logger.File(); path != "" {
		fmt.Fprintf(out, "✓ Log file: %s\n", path)
	} else {
		fmt.Fprintf(out, "⊘ Log file: SKIPPED (logging not initialized)\n")
	}

	fmt.Fprintln(out)
	if hasError {
		fmt.Fprintln(out, "Diagnostics completed with errors.")
		return errors.New("one or more checks failed")
	}
	fmt.Fprintln(out, "All checks passed.")
	return nil
}

func checkDataset(ctx *cli.Context) error {
	if ctx.Dataset == nil {
		return errors.New("no dataset loaded")
	}
	children := ctx.Dataset.ListChildren()
	if len(children) == 0 {
		return errors.New("dataset has no children")
	}
	for _, c := range children {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	if _, err := ctx.Dataset.GetChild(ctx.Dataset.FirstChildID()); err != nil {
		return fmt.Errorf("default child: %w", err)
	}
	return nil
}

var (
	knownVisibilities = []models.Visibility{models.VisibilityPrivate, models.VisibilitySummary, models.VisibilitySnippet, models.VisibilityUrgent}
	knownCardTypes    = []models.CardType{models.CardTypeHomeworkHelp, models.CardTypeShowcase, models.CardTypeEmotionalMoment, models.CardTypeGeneralChat, models.CardTypeTaskUpdate}
)

func checkShareCards(ctx *cli.Context) error {
	for _, child := range ctx.Dataset.ListChildren() {
		for _, card := range child.ShareCards {
			if !slices.Contains(knownVisibilities, card.Visibility) {
				return fmt.Errorf("child %s card %s: unknown visibility %q", child.ID, card.ID, card.Visibility)
			}
			if !slices.Contains(knownCardTypes, card.Type) {
				return fmt.Errorf("child %s card %s: unknown type %q", child.ID, card.ID, card.Type)
			}
			if card.ExpiresInDays < 0 {
				return fmt.Errorf("child %s card %s: negative expiry", child.ID, card.ID)
			}
		}
	}
	return nil
}

func checkSafetyReports(ctx *cli.Context) error {
	for _, child := range ctx.Dataset.ListChildren() {
		for _, r := range child.SafetyReports {
			if r.Status != models.SafetyStatusPending && r.Status != models.SafetyStatusViewed {
				return fmt.Errorf("child %s report %s: unknown status %q", child.ID, r.ID, r.Status)
			}
		}
	}
	return nil
}

func checkImageSettings(cfg config.Config) error {
	if cfg.Model == "" {
		return errors.New("image model is empty")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	return nil
}

func checkAPIKey(cfg config.Config) error {
	if !cfg.HasAPIKey() {
		return errNoAPIKey
	}
	return nil
}
