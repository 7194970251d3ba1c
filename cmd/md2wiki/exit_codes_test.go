package main

// Notes:
// - exitCodeFor: we test the sentinel errors from md2wiki, config, and this
//   package, plus wrapped errors to verify the errors.Is() chain.
// - Exit code constants: we verify Unix conventions (0=success, 1=general,
//   2=usage) and that custom codes stay below 126.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	md2wiki "github.com/alnah/go-md2wiki"
	"github.com/alnah/go-md2wiki/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Resolution errors (exit 4)
		{"unresolved", ErrUnresolved, ExitUnresolved},
		{"no match", ErrNoMatch, ExitUnresolved},
		{"wrapped unresolved", fmt.Errorf("%w: 2 of 5", ErrUnresolved), ExitUnresolved},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"input not dir", ErrInputNotDir, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading vault: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid value", config.ErrInvalidValue, ExitUsage},
		{"invalid engine", md2wiki.ErrInvalidEngine, ExitUsage},
		{"invalid list mode", md2wiki.ErrInvalidListMode, ExitUsage},
		{"invalid title mode", md2wiki.ErrInvalidTitleMode, ExitUsage},
		{"invalid theme", md2wiki.ErrInvalidTheme, ExitUsage},
		{"empty title", md2wiki.ErrEmptyTitle, ExitUsage},
		{"unknown style", md2wiki.ErrUnknownStyle, ExitUsage},
		{"asset not found", md2wiki.ErrAssetNotFound, ExitUsage},
		{"invalid asset path", md2wiki.ErrInvalidAssetPath, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"render", md2wiki.ErrRender, ExitGeneral},
		{"unknown error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}
	for name, code := range map[string]int{"ExitIO": ExitIO, "ExitUnresolved": ExitUnresolved} {
		if code <= ExitUsage || code >= 126 {
			t.Errorf("%s = %d, want between 3 and 125", name, code)
		}
	}
}
