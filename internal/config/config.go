// Package config resolves the settings the image editor needs at runtime.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/lumibot/internal/constants"
	"github.com/julianstephens/lumibot/internal/keyring"
	"github.com/julianstephens/lumibot/internal/logger"
)

// KeySource says where the API key came from.
type KeySource string

const (
	SourceNone    KeySource = "none"
	SourceFlag    KeySource = "flag"
	SourceEnv     KeySource = "env:" + constants.EnvGeminiAPIKey
	SourceKeyring KeySource = "keyring"
)

type Config struct {
	APIKey    string
	KeySource KeySource
	Model     string
	Timeout   time.Duration
}

// Options are the raw CLI values. APIKey already includes $LUMIBOT_API_KEY, which kong
// binds to the --api-key flag.
type Options struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Resolve picks the API key from the flag, then $GEMINI_API_KEY, then the OS keyring.
// A missing key is not an error; the editor reports it when used.
func Resolve(opts Options) (Config, error) {
	cfg := Config{
		Model:     strings.TrimSpace(opts.Model),
		Timeout:   opts.Timeout,
		KeySource: SourceNone,
	}
	if cfg.Model == "" {
		cfg.Model = constants.DefaultImageModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = constants.DefaultGenerateTimeout
	}
	if cfg.Timeout < 0 {
		return Config{}, fmt.Errorf("timeout must be positive, got %s", opts.Timeout)
	}

	if key := strings.TrimSpace(opts.APIKey); key != "" {
		cfg.APIKey, cfg.KeySource = key, SourceFlag
		return cfg, nil
	}
	if key := strings.TrimSpace(os.Getenv(constants.EnvGeminiAPIKey)); key != "" {
		cfg.APIKey, cfg.KeySource = key, SourceEnv
		return cfg, nil
	}

	key, err := keyring.GetAPIKey()
	switch {
	case err == nil:
		cfg.APIKey, cfg.KeySource = key, SourceKeyring
	case errors.Is(err, keyring.ErrNotFound):
		logger.Debug("No image API key configured")
	default:
		logger.Warn("Keyring lookup failed", "error", err)
	}
	return cfg, nil
}

// HasAPIKey reports whether image generation can be attempted.
func (c Config) HasAPIKey() bool {
	return c.APIKey != ""
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
