package main

import (
	"errors"
	"os"

	json2tex "github.com/alnah/go-json2tex"
	"github.com/alnah/go-json2tex/internal/config"
)

// Exit codes for the json2tex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful run
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, or page documents
	ExitIO        = 3 // File not found, permission denied
	ExitToolchain = 4 // LaTeX toolchain failures
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Toolchain errors (exit 4)
	if errors.Is(err, json2tex.ErrPDFNotProduced) ||
		errors.Is(err, json2tex.ErrMainNotFound) {
		return ExitToolchain
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, json2tex.ErrNoPages) ||
		errors.Is(err, json2tex.ErrNoFragments) ||
		errors.Is(err, json2tex.ErrFragmentNotFound) ||
		errors.Is(err, ErrPageNotFound) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, json2tex.ErrPageParse) ||
		errors.Is(err, json2tex.ErrInvalidPage) ||
		errors.Is(err, json2tex.ErrEmptyPagePath) ||
		errors.Is(err, ErrNoCommand) ||
		errors.Is(err, ErrUnknownCommand) {
		return ExitUsage
	}

	return ExitGeneral
}
