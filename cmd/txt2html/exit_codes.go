package main

import (
	"errors"
	"os"

	"github.com/alnah/go-txt2html"
	"github.com/alnah/go-txt2html/internal/assets"
	"github.com/alnah/go-txt2html/internal/config"
	"github.com/alnah/go-txt2html/internal/dateutil"
	"github.com/alnah/go-txt2html/internal/hooks"
)

// Exit codes for the txt2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or hook references
	ExitIO      = 3 // File not found, permission denied, read/write failures
	ExitHook    = 4 // A hook failed while converting
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Hook failures (exit 4)
	if errors.Is(err, hooks.ErrHookCommand) ||
		errors.Is(err, hooks.ErrHookTimeout) {
		return ExitHook
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, txt2html.ErrUnknownStage) ||
		errors.Is(err, hooks.ErrUnknownHook) ||
		errors.Is(err, hooks.ErrInvalidHookRef) ||
		errors.Is(err, hooks.ErrSnippetRender) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrSnippetNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidHookFlag) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrUnsupportedEncoding) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, txt2html.ErrReadSource) ||
		errors.Is(err, ErrReadSource) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoFiles) {
		return ExitIO
	}

	return ExitGeneral
}
