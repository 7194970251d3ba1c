package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2wiki/internal/config"
	"github.com/alnah/go-md2wiki/internal/watch"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// vaultFlags select how a vault is read and converted. Each one overrides
// the config field of the same meaning when set on the command line.
type vaultFlags struct {
	ignore      []string
	engine      string
	lists       string
	titles      string
	frontMatter bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common    commonFlags
	vault     vaultFlags
	output    string
	title     string
	theme     string
	style     string
	assetPath string
	watch     bool
	debounce  time.Duration
	changed   map[string]bool
}

// checkFlags holds all flags for the check command.
type checkFlags struct {
	common         commonFlags
	vault          vaultFlags
	unresolvedOnly bool
	changed        map[string]bool
}

// resolveFlags holds all flags for the resolve command.
type resolveFlags struct {
	common  commonFlags
	vault   vaultFlags
	changed map[string]bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-note progress")
}

func addVaultFlags(fs *flag.FlagSet, f *vaultFlags) {
	fs.StringSliceVar(&f.ignore, "ignore", nil, "directory names to skip (repeatable)")
	fs.StringVarP(&f.engine, "engine", "e", "", "markdown engine: classic, goldmark")
	fs.StringVar(&f.lists, "lists", "", "list wrapping: first, all")
	fs.StringVar(&f.titles, "titles", "", "display names: filename, heading, frontmatter")
	fs.BoolVar(&f.frontMatter, "front-matter", false, "strip YAML front matter")
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

// parse runs fs and records which flags were set explicitly.
func parse(fs *flag.FlagSet, args []string) (map[string]bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	changed := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { changed[f.Name] = true })
	return changed, nil
}

func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newFlagSet("build")
	addCommonFlags(fs, &f.common)
	addVaultFlags(fs, &f.vault)
	fs.StringVarP(&f.output, "output", "o", "", "output HTML file")
	fs.StringVarP(&f.title, "title", "t", "", "page title")
	fs.StringVar(&f.theme, "theme", "", "initial theme: light, dark")
	fs.StringVar(&f.style, "highlight-style", "", "chroma style for the goldmark engine")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory overriding embedded assets")
	fs.BoolVarP(&f.watch, "watch", "w", false, "rebuild when notes change")
	fs.DurationVar(&f.debounce, "debounce", watch.DefaultDelay, "quiet period before a rebuild")

	changed, err := parse(fs, args)
	if err != nil {
		return nil, nil, err
	}
	f.changed = changed
	return f, fs.Args(), nil
}

func parseCheckFlags(args []string) (*checkFlags, []string, error) {
	f := &checkFlags{}
	fs := newFlagSet("check")
	addCommonFlags(fs, &f.common)
	addVaultFlags(fs, &f.vault)
	fs.BoolVarP(&f.unresolvedOnly, "unresolved", "u", false, "list only unresolved references")

	changed, err := parse(fs, args)
	if err != nil {
		return nil, nil, err
	}
	f.changed = changed
	return f, fs.Args(), nil
}

func parseResolveFlags(args []string) (*resolveFlags, []string, error) {
	f := &resolveFlags{}
	fs := newFlagSet("resolve")
	addCommonFlags(fs, &f.common)
	addVaultFlags(fs, &f.vault)

	changed, err := parse(fs, args)
	if err != nil {
		return nil, nil, err
	}
	f.changed = changed
	return f, fs.Args(), nil
}

// mergeVaultFlags copies explicitly set flags over cfg.
func mergeVaultFlags(f *vaultFlags, changed map[string]bool, cfg *config.Config) {
	if changed["ignore"] {
		cfg.Ignore = f.ignore
	}
	if changed["engine"] {
		cfg.Engine = f.engine
	}
	if changed["lists"] {
		cfg.Lists = f.lists
	}
	if changed["titles"] {
		cfg.Titles = f.titles
	}
	if changed["front-matter"] {
		cfg.FrontMatter = f.frontMatter
	}
}

// mergeBuildFlags copies explicitly set build flags over cfg.
func mergeBuildFlags(f *buildFlags, cfg *config.Config) {
	mergeVaultFlags(&f.vault, f.changed, cfg)
	if f.changed["output"] {
		cfg.Output.File = f.output
	}
	if f.changed["title"] {
		cfg.Title = f.title
	}
	if f.changed["theme"] {
		cfg.Theme.Default = f.theme
	}
	if f.changed["highlight-style"] {
		cfg.Highlight.Style = f.style
	}
	if f.changed["asset-path"] {
		cfg.Assets.BasePath = f.assetPath
	}
}
