package main

import (
	"errors"
	"os"

	md2wiki "github.com/alnah/go-md2wiki"
	"github.com/alnah/go-md2wiki/internal/config"
)

// Exit codes for the md2wiki CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // Successful run
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags, config, or validation
	ExitIO         = 3 // Vault not found, output not writable
	ExitUnresolved = 4 // A cross-reference found no note
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrUnresolved) || errors.Is(err, ErrNoMatch) {
		return ExitUnresolved
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, md2wiki.ErrInvalidEngine) ||
		errors.Is(err, md2wiki.ErrInvalidListMode) ||
		errors.Is(err, md2wiki.ErrInvalidTitleMode) ||
		errors.Is(err, md2wiki.ErrInvalidTheme) ||
		errors.Is(err, md2wiki.ErrEmptyTitle) ||
		errors.Is(err, md2wiki.ErrUnknownStyle) ||
		errors.Is(err, md2wiki.ErrAssetNotFound) ||
		errors.Is(err, md2wiki.ErrInvalidAssetPath) {
		return ExitUsage
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInputNotDir) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
