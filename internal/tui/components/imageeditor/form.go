package imageeditor

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lumibot/internal/config"
)

// PathFormModel backs the "open image" form.
type PathFormModel struct {
	Path string
}

// NewPathForm asks for a local image path.
func NewPathForm(fm *PathFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Image path").
				Description("PNG, JPEG or GIF on this machine").
				Placeholder("~/Pictures/drawing.png").
				Value(&fm.Path).
				Validate(validatePath),
		),
	).WithTheme(huh.ThemeDracula())
}

func validatePath(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("path cannot be empty")
	}
	path, err := config.ExpandPath(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("no such file")
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory")
	}
	return nil
}
