package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	md2wiki "github.com/alnah/go-md2wiki"
	"github.com/alnah/go-md2wiki/internal/config"
	"github.com/alnah/go-md2wiki/internal/hints"
	"github.com/alnah/go-md2wiki/internal/watch"
)

const filePermissions = 0o644 // rw-r--r--: owner read+write, others read

// runBuild converts a vault into one HTML file, then optionally keeps
// rebuilding it as notes change.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: build takes one vault directory, got %d arguments", ErrUsage, len(positional))
	}

	cfg, err := loadConfig(env, flags.common)
	if err != nil {
		return err
	}
	mergeBuildFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	dir, err := vaultDir(positional, cfg)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common)
	opts, err := sessionOptions(cfg, logger)
	if err != nil {
		return err
	}

	if err := buildOnce(ctx, env, dir, cfg, opts, logger); err != nil {
		return err
	}
	if !flags.watch {
		return nil
	}

	w, err := watch.New(dir, watch.Options{Delay: flags.debounce, Ignore: cfg.Ignore, Logger: logger})
	if err != nil {
		return err
	}
	defer w.Close()

	logger.Info("watching for changes", "dir", dir, "debounce", flags.debounce)
	err = w.Run(ctx, func(ctx context.Context, paths []string) error {
		logger.Info("change detected", "files", len(paths))
		return buildOnce(ctx, env, dir, cfg, opts, logger)
	})
	if errors.Is(err, context.Canceled) {
		logger.Info("stopped watching")
		return nil
	}
	return err
}

// buildOnce runs a fresh Session over dir and writes the page.
func buildOnce(ctx context.Context, env *Environment, dir string, cfg *config.Config, opts []md2wiki.Option, logger *slog.Logger) error {
	start := env.Now()

	s, err := buildSession(ctx, dir, opts)
	if err != nil {
		return err
	}
	if s.Corpus().Len() == 0 {
		logger.Warn("vault has no notes", "dir", dir)
	}

	unresolved := s.Unresolved()
	for _, ref := range unresolved {
		logger.Debug("unresolved reference", "source", ref.Source, "reference", ref.Text)
	}

	if err := writeOutput(cfg.Output.File, s); err != nil {
		return err
	}

	logger.Info("built wiki",
		"output", cfg.Output.File,
		"notes", s.Corpus().Len(),
		"unresolved", len(unresolved),
		"elapsed", env.Now().Sub(start).Round(time.Millisecond))
	return nil
}

// writeOutput renders into a temporary file beside path and renames it over
// path, so readers never see a partial page.
func writeOutput(path string, s *md2wiki.Session) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".md2wiki-*.html")
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := s.Render(bw); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := os.Chmod(tmp.Name(), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
