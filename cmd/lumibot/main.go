package main

import (
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/lumibot/internal/cli"
	"github.com/julianstephens/lumibot/internal/cli/dashboard"
	"github.com/julianstephens/lumibot/internal/cli/images"
	"github.com/julianstephens/lumibot/internal/cli/system"
	"github.com/julianstephens/lumibot/internal/config"
	"github.com/julianstephens/lumibot/internal/constants"
	"github.com/julianstephens/lumibot/internal/dataset"
	"github.com/julianstephens/lumibot/internal/errors"
	"github.com/julianstephens/lumibot/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Dataset string        `help:"JSON dataset of children. Defaults to the built-in mock data." type:"path"`
	APIKey  string        `help:"Image generation API key." env:"LUMIBOT_API_KEY" name:"api-key"`
	Model   string        `help:"Image model used by the editor." default:"${default_model}"`
	Timeout time.Duration `help:"Give up on an image edit after this long." default:"60s"`
	Debug   bool          `help:"Log debug output to stderr as well as the log file."`
	LogDir  string        `help:"Directory for log files. Defaults to ~/.config/lumibot/logs." type:"path"`

	Tui       system.TuiCmd        `cmd:"" help:"Launch the parent dashboard." default:"1"`
	Children  cli.ChildrenCmd      `cmd:"" help:"List children and their pending requests."`
	Shares    dashboard.SharesCmd  `cmd:"" help:"List a child's share cards, most recent first."`
	Alerts    dashboard.AlertsCmd  `cmd:"" help:"Show pending safety alerts."`
	Report    dashboard.ReportCmd  `cmd:"" help:"Export a child's weekly report as Markdown."`
	EditImage images.EditImageCmd  `cmd:"" help:"Edit an image with the image model."`
	Doctor    system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Init      system.InitCmd       `cmd:"" help:"Write the dataset to an editable JSON file."`
	Inspect   system.DebugCmd      `cmd:"" help:"Dump the dataset and configuration as JSON for troubleshooting."`
	Keyring   struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the image API key in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored API key, masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored API key."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check keyring availability." default:"1"`
	} `cmd:"" help:"Manage the image API key."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Parent dashboard for the LUMIBOT companion robot"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":       constants.Version,
			"default_model": constants.DefaultImageModel,
		},
	)

	configDir, err := config.ExpandPath(constants.DefaultConfigDir)
	if err != nil {
		errors.Fatal(err)
	}
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: configDir,
		LogDir:    CLI.LogDir,
	}); err != nil {
		errors.Fatal(err)
	}

	cfg, err := config.Resolve(config.Options{
		APIKey:  CLI.APIKey,
		Model:   CLI.Model,
		Timeout: CLI.Timeout,
	})
	if err != nil {
		errors.Fatal(err)
	}

	data, err := loadDataset(CLI.Dataset)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Dataset: data,
		Config:  cfg,
	}
	errors.Fatal(ctx.Run(appCtx))
}

func loadDataset(path string) (dataset.Provider, error) {
	if path == "" {
		return dataset.Default()
	}
	logger.Debug("Loading dataset", "path", filepath.Clean(path))
	return dataset.LoadFile(path)
}
