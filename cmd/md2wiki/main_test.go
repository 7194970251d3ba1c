package main

// Notes:
// - main itself calls os.Exit and is not run; its pieces are: maxprocsLogger,
//   DefaultEnv and the version command reached through run.
// - maxprocs.Set is not invoked here since it mutates GOMAXPROCS for the
//   whole test binary.

import (
	"bytes"
	"context"
	"os"
	"testing"
)

// ---------------------------------------------------------------------------
// TestMaxprocsLogger - Verbose flag gating
// ---------------------------------------------------------------------------

func TestMaxprocsLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"silent by default", []string{"build", "vault"}, ""},
		{"short verbose flag", []string{"build", "vault", "-v"}, "maxprocs: 4\n"},
		{"long verbose flag", []string{"--verbose", "check"}, "maxprocs: 4\n"},
		{"flag value is not a flag", []string{"build", "-o", "v"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			maxprocsLogger(tt.args, &buf)("maxprocs: %d", 4)
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDefaultEnv - Production wiring
// ---------------------------------------------------------------------------

func TestDefaultEnv(t *testing.T) {
	t.Parallel()

	env := DefaultEnv()
	if env.Stdout != os.Stdout || env.Stderr != os.Stderr {
		t.Error("DefaultEnv() should write to the process streams")
	}
	if env.Now == nil || env.Now().IsZero() {
		t.Error("DefaultEnv().Now should report the wall clock")
	}
	if env.LoadConfig == nil {
		t.Fatal("DefaultEnv().LoadConfig is nil")
	}
	if _, err := env.LoadConfig(""); err == nil {
		t.Error("LoadConfig(\"\") should fail")
	}
}

// ---------------------------------------------------------------------------
// TestVersion - Version variable
// ---------------------------------------------------------------------------

func TestVersion(t *testing.T) {
	t.Parallel()

	if Version == "" {
		t.Fatal("Version should not be empty")
	}

	for _, arg := range []string{"version", "--version"} {
		env := newTestEnv()
		if code := run(context.Background(), []string{arg}, env.Environment); code != ExitSuccess {
			t.Fatalf("run(%s) = %d, want %d", arg, code, ExitSuccess)
		}
		if want := "md2wiki " + Version + "\n"; env.stdout.String() != want {
			t.Errorf("run(%s) stdout = %q, want %q", arg, env.stdout.String(), want)
		}
	}
}
