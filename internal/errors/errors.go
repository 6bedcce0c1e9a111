package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/sony/gobreaker"

	"github.com/julianstephens/lumibot/internal/dataset"
	"github.com/julianstephens/lumibot/internal/imagegen"
	"github.com/julianstephens/lumibot/internal/logger"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Hint returns a suggestion for errors the user can fix, or "".
func Hint(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, dataset.ErrNotFound):
		return "Run 'lumibot children' to list the available child ids."
	case errors.Is(err, imagegen.ErrNotConfigured):
		return "Store a key with 'lumibot keyring set <key>' or pass --api-key."
	case errors.Is(err, gobreaker.ErrOpenState):
		return "The image service failed repeatedly; wait a moment and try again."
	default:
		return ""
	}
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		if hint := Hint(err); hint != "" {
			fmt.Fprintf(os.Stderr, "  %s\n", hint)
		}
		os.Exit(1)
	}
}
