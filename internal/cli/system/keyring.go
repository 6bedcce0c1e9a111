package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/lumibot/internal/cli"
	"github.com/julianstephens/lumibot/internal/keyring"
)

// KeyringSetCmd stores the image-generation API key in the OS keyring
type KeyringSetCmd struct {
	APIKey string `arg:"" name:"api-key" help:"Gemini API key to store in the keyring."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetAPIKey(cmd.APIKey); err != nil {
		return err
	}

	out := ctx.Stdout()
	fmt.Fprintln(out, "✓ API key stored successfully in OS keyring")
	fmt.Fprintln(out, "  The image editor will use it when --api-key is not set")
	return nil
}

// KeyringGetCmd shows the stored API key, masked
type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	key, err := keyring.GetAPIKey()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API key found in keyring. Use 'lumibot keyring set' to store one")
		}
		return fmt.Errorf("failed to retrieve API key from keyring: %w", err)
	}

	out := ctx.Stdout()
	fmt.Fprintln(out, "API key retrieved from keyring:")
	fmt.Fprintln(out, keyring.Mask(key))
	return nil
}

// KeyringDeleteCmd removes the API key from the OS keyring
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API key found in keyring")
		}
		return err
	}

	fmt.Fprintln(ctx.Stdout(), "✓ API key deleted from OS keyring")
	return nil
}

// KeyringStatusCmd checks the availability of the OS keyring
type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()
	if !keyring.IsAvailable() {
		fmt.Fprintln(out, "❌ OS keyring is not available on this system")
		return errors.New("keyring unavailable")
	}

	fmt.Fprintln(out, "✓ OS keyring is available")
	if _, err := keyring.GetAPIKey(); err == nil {
		fmt.Fprintln(out, "✓ API key is stored in keyring")
	} else if errors.Is(err, keyring.ErrNotFound) {
		fmt.Fprintln(out, "ℹ No API key stored in keyring")
	}
	return nil
}
