package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2wiki/internal/hints"
)

// runCheck resolves every cross-reference in a vault and lists the outcome,
// failing when any reference finds no note.
func runCheck(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseCheckFlags(args)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: check takes one vault directory, got %d arguments", ErrUsage, len(positional))
	}

	cfg, err := loadConfig(env, flags.common)
	if err != nil {
		return err
	}
	mergeVaultFlags(&flags.vault, flags.changed, cfg)
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
	s, err := buildSession(ctx, dir, opts)
	if err != nil {
		return err
	}

	refs, missing := s.Check(), s.Unresolved()
	listed := refs
	if flags.unresolvedOnly {
		listed = missing
	}
	for _, ref := range listed {
		target := ref.Target
		if !ref.Resolved() {
			target = "unresolved"
		}
		fmt.Fprintf(env.Stdout, "%s -> %s: %s\n", ref.Source, ref.Text, target)
	}

	unresolved := len(missing)
	logger.Info("checked references", "notes", s.Corpus().Len(), "references", len(refs), "unresolved", unresolved)
	if unresolved > 0 {
		if flags.unresolvedOnly {
			return fmt.Errorf("%w: %d of %d", ErrUnresolved, unresolved, len(refs))
		}
		return fmt.Errorf("%w: %d of %d%s", ErrUnresolved, unresolved, len(refs), hints.ForUnresolved())
	}
	return nil
}
