package main

// Notes:
// - Flag parsing is tested through the parse*Flags helpers; merge tests
//   check that only explicitly set flags override config values.

import (
	"errors"
	"slices"
	"testing"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2wiki/internal/config"
	"github.com/alnah/go-md2wiki/internal/watch"
)

// ---------------------------------------------------------------------------
// TestParseBuildFlags
// ---------------------------------------------------------------------------

func TestParseBuildFlags(t *testing.T) {
	t.Parallel()

	f, args, err := parseBuildFlags([]string{
		"vault", "-o", "out.html", "--title", "Docs", "--theme", "dark",
		"-e", "goldmark", "--ignore", "a,b", "--ignore", "c", "-w", "--debounce", "1s", "-q",
	})
	if err != nil {
		t.Fatalf("parseBuildFlags() error = %v", err)
	}

	if !slices.Equal(args, []string{"vault"}) {
		t.Errorf("args = %v, want [vault]", args)
	}
	if f.output != "out.html" || f.title != "Docs" || f.theme != "dark" {
		t.Errorf("page flags = %q %q %q", f.output, f.title, f.theme)
	}
	if f.vault.engine != "goldmark" {
		t.Errorf("engine = %q, want goldmark", f.vault.engine)
	}
	if !slices.Equal(f.vault.ignore, []string{"a", "b", "c"}) {
		t.Errorf("ignore = %v, want [a b c]", f.vault.ignore)
	}
	if !f.watch || f.debounce != time.Second || !f.common.quiet {
		t.Errorf("watch = %v, debounce = %v, quiet = %v", f.watch, f.debounce, f.common.quiet)
	}
	for _, name := range []string{"output", "title", "theme", "engine", "ignore", "watch", "debounce", "quiet"} {
		if !f.changed[name] {
			t.Errorf("changed[%q] = false, want true", name)
		}
	}
	if f.changed["lists"] {
		t.Error("changed[lists] = true for a flag that was not given")
	}
}

func TestParseBuildFlags_Defaults(t *testing.T) {
	t.Parallel()

	f, args, err := parseBuildFlags(nil)
	if err != nil {
		t.Fatalf("parseBuildFlags() error = %v", err)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
	if f.debounce != watch.DefaultDelay {
		t.Errorf("debounce = %v, want %v", f.debounce, watch.DefaultDelay)
	}
	if f.watch || f.vault.frontMatter {
		t.Error("boolean flags should default to false")
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown flag", []string{"--nope"}, ErrUsage},
		{"bad duration", []string{"--debounce", "soon"}, ErrUsage},
		{"help", []string{"--help"}, flag.ErrHelp},
		{"short help", []string{"-h"}, flag.ErrHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := parseBuildFlags(tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("parseBuildFlags(%v) error = %v, want %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestParseCheckFlags(t *testing.T) {
	t.Parallel()

	f, args, err := parseCheckFlags([]string{"-u", "--lists", "all", "vault"})
	if err != nil {
		t.Fatalf("parseCheckFlags() error = %v", err)
	}
	if !f.unresolvedOnly || f.vault.lists != "all" {
		t.Errorf("unresolved = %v, lists = %q", f.unresolvedOnly, f.vault.lists)
	}
	if !slices.Equal(args, []string{"vault"}) {
		t.Errorf("args = %v, want [vault]", args)
	}
}

func TestParseResolveFlags(t *testing.T) {
	t.Parallel()

	f, args, err := parseResolveFlags([]string{"vault", "Project X", "--titles", "heading"})
	if err != nil {
		t.Fatalf("parseResolveFlags() error = %v", err)
	}
	if f.vault.titles != "heading" {
		t.Errorf("titles = %q, want heading", f.vault.titles)
	}
	if !slices.Equal(args, []string{"vault", "Project X"}) {
		t.Errorf("args = %v, want [vault Project X]", args)
	}
}

// ---------------------------------------------------------------------------
// TestMergeBuildFlags
// ---------------------------------------------------------------------------

func TestMergeBuildFlags(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Title = "From Config"
	cfg.Engine = "goldmark"

	f, _, err := parseBuildFlags([]string{"-o", "site.html", "--front-matter", "--asset-path", "/tmp/assets"})
	if err != nil {
		t.Fatalf("parseBuildFlags() error = %v", err)
	}
	mergeBuildFlags(f, cfg)

	if cfg.Output.File != "site.html" {
		t.Errorf("Output.File = %q, want site.html", cfg.Output.File)
	}
	if !cfg.FrontMatter {
		t.Error("FrontMatter = false, want true")
	}
	if cfg.Assets.BasePath != "/tmp/assets" {
		t.Errorf("Assets.BasePath = %q", cfg.Assets.BasePath)
	}
	if cfg.Title != "From Config" {
		t.Errorf("Title = %q, unset flag overrode config", cfg.Title)
	}
	if cfg.Engine != "goldmark" {
		t.Errorf("Engine = %q, unset flag overrode config", cfg.Engine)
	}
}

func TestMergeVaultFlags_EmptyIgnore(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	f, _, err := parseCheckFlags([]string{"--ignore="})
	if err != nil {
		t.Fatalf("parseCheckFlags() error = %v", err)
	}
	mergeVaultFlags(&f.vault, f.changed, cfg)

	if len(cfg.Ignore) != 0 {
		t.Errorf("Ignore = %v, want empty after explicit --ignore=", cfg.Ignore)
	}
}
