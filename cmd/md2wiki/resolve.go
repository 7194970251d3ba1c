package main

import (
	"context"
	"fmt"

	md2wiki "github.com/alnah/go-md2wiki"
)

// runResolve prints the note a reference leads to in a vault, with the
// phase that matched and the note's path.
func runResolve(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseResolveFlags(args)
	if err != nil {
		return err
	}
	if len(positional) != 2 {
		return fmt.Errorf("%w: resolve takes <vault> <reference>", ErrUsage)
	}

	cfg, err := loadConfig(env, flags.common)
	if err != nil {
		return err
	}
	mergeVaultFlags(&flags.vault, flags.changed, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	dir, err := vaultDir(positional[:1], cfg)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common)
	opts, err := sessionOptions(cfg, logger)
	if err != nil {
		return err
	}
	s, err := buildSession(ctx, dir, opts)
	if err != nil {
		return err
	}

	ref := positional[1]
	doc, phase := s.Explain(ref)
	if phase == md2wiki.PhaseNone {
		return fmt.Errorf("%w: %q", ErrNoMatch, ref)
	}
	fmt.Fprintf(env.Stdout, "%s\t%s\t%s\n", doc.ID, phase, doc.Path)
	return nil
}
