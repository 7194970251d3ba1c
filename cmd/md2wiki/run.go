package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	md2wiki "github.com/alnah/go-md2wiki"
	"github.com/alnah/go-md2wiki/internal/config"
	"github.com/alnah/go-md2wiki/internal/hints"
	"github.com/alnah/go-md2wiki/internal/richmd"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoInput        = errors.New("no vault directory specified")
	ErrInputNotDir    = errors.New("vault path is not a directory")
	ErrWriteOutput    = errors.New("failed to write output file")
	ErrUnresolved     = errors.New("unresolved cross-references")
	ErrNoMatch        = errors.New("no matching note")
)

// run dispatches args to a command and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "build":
		err = runBuild(ctx, rest, env)
	case "check":
		err = runCheck(ctx, rest, env)
	case "resolve":
		err = runResolve(ctx, rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2wiki %s\n", Version)
	case "help", "-h", "--help":
		err = runHelp(rest, env.Stdout)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
		printUsage(env.Stderr)
	}

	if errors.Is(err, flag.ErrHelp) {
		_ = runHelp(args[:1], env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, "md2wiki:", err)
	}
	return exitCodeFor(err)
}

// newLogger returns a text logger honoring --quiet and --verbose.
func newLogger(w io.Writer, f commonFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case f.quiet:
		level = slog.LevelError
	case f.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig reads the --config file, or the defaults when none is given.
func loadConfig(env *Environment, f commonFlags) (*config.Config, error) {
	if f.config == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := env.LoadConfig(f.config)
	if errors.Is(err, config.ErrConfigNotFound) {
		userDir, _ := os.UserConfigDir()
		return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(f.config, userDir))
	}
	return cfg, err
}

// vaultDir picks the positional argument, then config input.dir, and checks
// that it names a directory.
func vaultDir(args []string, cfg *config.Config) (string, error) {
	dir := cfg.Input.Dir
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("reading vault: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrInputNotDir, dir)
	}
	return dir, nil
}

// sessionOptions maps a validated config to Session options.
func sessionOptions(cfg *config.Config, logger *slog.Logger) ([]md2wiki.Option, error) {
	engine, err := md2wiki.ParseEngine(cfg.Engine)
	if err != nil {
		return nil, err
	}
	lists, err := md2wiki.ParseListMode(cfg.Lists)
	if err != nil {
		return nil, err
	}
	titles, err := md2wiki.ParseTitleMode(cfg.Titles)
	if err != nil {
		return nil, err
	}
	loader, err := md2wiki.NewAssetLoader(cfg.Assets.BasePath)
	if err != nil {
		return nil, err
	}

	opts := []md2wiki.Option{
		md2wiki.WithLogger(logger),
		md2wiki.WithEngine(engine),
		md2wiki.WithListMode(lists),
		md2wiki.WithTitles(titles),
		md2wiki.WithFrontMatter(cfg.FrontMatter),
		md2wiki.WithIgnore(cfg.Ignore),
		md2wiki.WithAssetLoader(loader),
		md2wiki.WithTitle(cfg.Title),
		md2wiki.WithHighlightStyle(cfg.Highlight.Style),
		md2wiki.WithPageAssets(md2wiki.PageAssets{
			Template: cfg.Assets.Template,
			Style:    cfg.Assets.Style,
			Script:   cfg.Assets.Script,
		}),
	}
	if cfg.Theme.Default != "" {
		opts = append(opts, md2wiki.WithTheme(cfg.Theme.Default))
	}
	return opts, nil
}

// buildSession converts every note under dir.
func buildSession(ctx context.Context, dir string, opts []md2wiki.Option) (*md2wiki.Session, error) {
	s, err := md2wiki.NewSession(opts...)
	if errors.Is(err, md2wiki.ErrUnknownStyle) {
		return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(richmd.Styles()))
	}
	if err != nil {
		return nil, err
	}
	if err := s.Build(ctx, os.DirFS(dir)); err != nil {
		return nil, err
	}
	return s, nil
}
