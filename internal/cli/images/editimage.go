package images

import (
	"context"
	"fmt"

	"github.com/julianstephens/lumibot/internal/cli"
	"github.com/julianstephens/lumibot/internal/constants"
	"github.com/julianstephens/lumibot/internal/editor"
	"github.com/julianstephens/lumibot/internal/imagegen"
	"github.com/julianstephens/lumibot/internal/logger"
)

// EditImageCmd runs one image edit outside the TUI.
type EditImageCmd struct {
	Image  string `help:"Image file to edit." required:"" type:"existingfile"`
	Prompt string `help:"Describe the edit, e.g. 'Make it a watercolor painting'." required:""`
	Output string `help:"Where to save the result. Defaults to <image>-edited.png." short:"o" type:"path"`
}

func (c *EditImageCmd) Run(ctx *cli.Context) error {
	img, err := imagegen.ReadImageFile(c.Image)
	if err != nil {
		return err
	}

	wf := editor.New()
	if err := wf.SelectImage(img); err != nil {
		return err
	}
	req, err := wf.Begin(c.Prompt)
	if err != nil {
		return err
	}

	timeout := ctx.Config.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultGenerateTimeout
	}
	runCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	gen, release, err := ctx.NewGenerator(runCtx)
	if err != nil {
		return err
	}
	defer release()

	out := ctx.Stdout()
	fmt.Fprintf(out, "Editing %s...\n", img.Name)
	logger.Info("Starting image edit", "image", img.Name, "request", req.ID)

	data, genErr := gen.Generate(runCtx, imagegen.FromEditor(req))
	wf.Resolve(req.ID, imagegen.ResultImage(img.Name, data), genErr)

	if wf.Phase() != editor.PhaseSucceeded {
		logger.Warn("Image edit failed", "image", img.Name, "error", wf.Message())
		return fmt.Errorf("image edit failed: %s", wf.Message())
	}

	result, _ := wf.Result()
	path := c.Output
	if path == "" {
		path = imagegen.EditedPath(c.Image)
	}
	if err := imagegen.WriteImageFile(path, result.Data); err != nil {
		return err
	}

	if w, h, err := imagegen.Dimensions(result.Data); err == nil {
		fmt.Fprintf(out, "✓ Saved %dx%d image (%d bytes) to %s\n", w, h, len(result.Data), path)
	} else {
		fmt.Fprintf(out, "✓ Saved image (%d bytes) to %s\n", len(result.Data), path)
	}
	return nil
}
