package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/lumibot/internal/config"
	"github.com/julianstephens/lumibot/internal/dataset"
	"github.com/julianstephens/lumibot/internal/imagegen"
	"github.com/julianstephens/lumibot/internal/logger"
	"github.com/julianstephens/lumibot/internal/models"
	"github.com/julianstephens/lumibot/internal/projection"
)

type Context struct {
	Dataset dataset.Provider
	Config  config.Config
	// Generator overrides the generator built from Config. Tests set it.
	Generator imagegen.Generator
	Out       io.Writer
}

func (c *Context) Stdout() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

// NewGenerator returns the image generator for this run and a func that releases it.
// Without an API key every request fails with imagegen.ErrNotConfigured.
func (c *Context) NewGenerator(ctx context.Context) (imagegen.Generator, func(), error) {
	if c.Generator != nil {
		return c.Generator, func() {}, nil
	}
	if !c.Config.HasAPIKey() {
		logger.Info("Image generation disabled, no API key")
		return imagegen.Unavailable{}, func() {}, nil
	}

	gemini, err := imagegen.NewGemini(ctx, c.Config.APIKey, c.Config.Model)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Image generator ready", "model", c.Config.Model, "key_source", c.Config.KeySource)
	release := func() {
		if err := gemini.Close(); err != nil {
			logger.Warn("Failed to close image client", "error", err)
		}
	}
	return imagegen.NewBreaker(gemini), release, nil
}

// TrendText renders a trend as an arrow and its label.
func TrendText(trend models.Trend) string {
	label := projection.TrendLabel(trend)
	return fmt.Sprintf("%s %s", TrendArrow(label.Icon), label.Text)
}

func TrendArrow(icon projection.IconKind) string {
	switch icon {
	case projection.IconArrowUp:
		return "↑"
	case projection.IconArrowDown:
		return "↓"
	default:
		return "→"
	}
}

// FormatPercent formats a percentage without trailing zeros, e.g. 40 or 12.5.
func FormatPercent(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0") + "%"
}
