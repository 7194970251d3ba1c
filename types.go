package md2wiki

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alnah/go-md2wiki/internal/linkres"
	"github.com/alnah/go-md2wiki/internal/markup"
	"github.com/alnah/go-md2wiki/internal/richmd"
	"github.com/alnah/go-md2wiki/internal/scan"
)

// Engine selects the markdown converter.
type Engine int

const (
	// EngineClassic is the line-oriented rewriter.
	EngineClassic Engine = iota
	// EngineGoldmark is CommonMark with GFM and code highlighting.
	EngineGoldmark
)

func (e Engine) String() string {
	switch e {
	case EngineClassic:
		return "classic"
	case EngineGoldmark:
		return "goldmark"
	default:
		return "unknown"
	}
}

// ParseEngine maps "classic" or "goldmark" (any case) to an Engine.
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(s) {
	case "", "classic":
		return EngineClassic, nil
	case "goldmark":
		return EngineGoldmark, nil
	}
	return 0, fmt.Errorf("%w: %q (must be classic or goldmark)", ErrInvalidEngine, s)
}

// TitleMode selects where a note's display name comes from.
type TitleMode int

const (
	// TitlesFilename uses the identifier.
	TitlesFilename TitleMode = iota
	// TitlesHeading uses the first level-1 heading.
	TitlesHeading
	// TitlesFrontMatter uses the front matter title field.
	TitlesFrontMatter
)

func (m TitleMode) String() string {
	switch m {
	case TitlesFilename:
		return "filename"
	case TitlesHeading:
		return "heading"
	case TitlesFrontMatter:
		return "frontmatter"
	default:
		return "unknown"
	}
}

// ParseTitleMode maps "filename", "heading" or "frontmatter" to a TitleMode.
func ParseTitleMode(s string) (TitleMode, error) {
	switch strings.ToLower(s) {
	case "", "filename":
		return TitlesFilename, nil
	case "heading":
		return TitlesHeading, nil
	case "frontmatter":
		return TitlesFrontMatter, nil
	}
	return 0, fmt.Errorf("%w: %q (must be filename, heading or frontmatter)", ErrInvalidTitleMode, s)
}

// ListMode selects which runs of list items the classic engine wraps.
type ListMode = markup.ListMode

const (
	ListsFirstRun = markup.ListsFirstRun
	ListsEveryRun = markup.ListsEveryRun
)

// ParseListMode maps "first" or "all" to a ListMode.
func ParseListMode(s string) (ListMode, error) {
	if s == "" {
		return ListsFirstRun, nil
	}
	m, ok := markup.ParseListMode(strings.ToLower(s))
	if !ok {
		return 0, fmt.Errorf("%w: %q (must be first or all)", ErrInvalidListMode, s)
	}
	return m, nil
}

// Phase tells which resolution phase matched a reference.
type Phase = linkres.Phase

const (
	PhaseNone     = linkres.PhaseNone
	PhaseExact    = linkres.PhaseExact
	PhaseFallback = linkres.PhaseFallback
)

// Themes accepted by WithTheme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Option configures a Session.
type Option func(*sessionConfig)

// sessionConfig holds internal configuration for Session.
type sessionConfig struct {
	logger      *slog.Logger
	engine      Engine
	lists       ListMode
	titles      TitleMode
	frontMatter bool
	ignore      []string
	loader      AssetLoader
	theme       string
	title       string
	style       string
	page        PageAssets
}

// PageAssets names the template, stylesheet and script the page is built
// from. Empty fields keep the embedded defaults.
type PageAssets struct {
	Template string
	Style    string
	Script   string
}

// Defaults for a Session built without options.
const (
	DefaultTitle = "Notes"
	DefaultTheme = ThemeLight
)

func defaultSessionConfig() sessionConfig {
	return sessionConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		engine: EngineClassic,
		lists:  ListsFirstRun,
		titles: TitlesFilename,
		ignore: scan.DefaultIgnore,
		theme:  DefaultTheme,
		title:  DefaultTitle,
		style:  richmd.DefaultStyle,
	}
}

// WithLogger sets the logger receiving traversal warnings and build progress.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *sessionConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithEngine selects the markdown converter.
func WithEngine(e Engine) Option {
	return func(c *sessionConfig) { c.engine = e }
}

// WithListMode selects the classic engine's list wrapping.
func WithListMode(m ListMode) Option {
	return func(c *sessionConfig) { c.lists = m }
}

// WithTitles selects where display names come from.
func WithTitles(m TitleMode) Option {
	return func(c *sessionConfig) { c.titles = m }
}

// WithFrontMatter strips YAML front matter from notes before conversion.
func WithFrontMatter(enabled bool) Option {
	return func(c *sessionConfig) { c.frontMatter = enabled }
}

// WithIgnore replaces the directory names skipped during traversal.
func WithIgnore(names []string) Option {
	return func(c *sessionConfig) {
		if names == nil {
			c.ignore = nil
			return
		}
		c.ignore = append([]string{}, names...)
	}
}

// WithAssetLoader sets the source of the page template, style and script.
func WithAssetLoader(l AssetLoader) Option {
	return func(c *sessionConfig) { c.loader = l }
}

// WithTheme sets the colour scheme used until the reader picks one.
func WithTheme(theme string) Option {
	return func(c *sessionConfig) { c.theme = strings.ToLower(theme) }
}

// WithTitle sets the page title.
func WithTitle(title string) Option {
	return func(c *sessionConfig) { c.title = title }
}

// WithHighlightStyle sets the chroma style used by the goldmark engine.
func WithHighlightStyle(name string) Option {
	return func(c *sessionConfig) { c.style = name }
}

// WithPageAssets selects the page template, stylesheet and script by name,
// looked up through the asset loader.
func WithPageAssets(p PageAssets) Option {
	return func(c *sessionConfig) { c.page = p }
}

func (c *sessionConfig) validate() error {
	switch c.engine {
	case EngineClassic, EngineGoldmark:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidEngine, int(c.engine))
	}
	switch c.lists {
	case ListsFirstRun, ListsEveryRun:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidListMode, int(c.lists))
	}
	switch c.titles {
	case TitlesFilename, TitlesHeading, TitlesFrontMatter:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidTitleMode, int(c.titles))
	}
	if c.titles == TitlesFrontMatter && !c.frontMatter {
		return fmt.Errorf("%w: front matter titles need front matter parsing", ErrInvalidTitleMode)
	}
	if c.theme != ThemeLight && c.theme != ThemeDark {
		return fmt.Errorf("%w: %q (must be light or dark)", ErrInvalidTheme, c.theme)
	}
	if strings.TrimSpace(c.title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
