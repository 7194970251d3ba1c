package main

// Notes:
// - printUsage/print*Usage: we test that required content strings are
//   present. Exact formatting is an implementation detail.
// - runHelp: we test routing to the correct help topic.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPrintUsage - Main usage output
// ---------------------------------------------------------------------------

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	output := buf.String()

	for _, s := range []string{"Usage: md2wiki", "Commands:", "build", "check", "resolve", "version", "help"} {
		if !strings.Contains(output, s) {
			t.Errorf("printUsage output should contain %q", s)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunHelp - Topic routing
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no topic", nil, []string{"Commands:"}},
		{"build", []string{"build"}, []string{"md2wiki build <vault>", "--output", "--watch", "--debounce", "--engine", "--ignore"}},
		{"check", []string{"check"}, []string{"md2wiki check <vault>", "--unresolved", "status 4"}},
		{"resolve", []string{"resolve"}, []string{"md2wiki resolve <vault> <reference>", "--titles"}},
		{"version", []string{"version"}, []string{"Usage: md2wiki version"}},
		{"help", []string{"help"}, []string{"Usage: md2wiki help [command]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := runHelp(tt.args, &buf); err != nil {
				t.Fatalf("runHelp(%v) error = %v", tt.args, err)
			}
			for _, s := range tt.want {
				if !strings.Contains(buf.String(), s) {
					t.Errorf("runHelp(%v) output should contain %q", tt.args, s)
				}
			}
		})
	}
}

func TestRunHelp_UnknownTopic(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := runHelp([]string{"publish"}, &buf)
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("runHelp(publish) error = %v, want ErrUnknownCommand", err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}
