package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2wiki/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength   = 4096 // PATH_MAX on Linux
	MaxTitleLength  = 200  // Page title
	MaxPatternCount = 100  // Ignore entries
	MaxPatternLen   = 255  // One file name
	MaxStyleLength  = 50   // Chroma style name

	MaxAssetNameLength = 64 // Template, stylesheet or script name
)

// Accepted enum values, first entry is the default.
var (
	Engines     = []string{"classic", "goldmark"}
	ListModes   = []string{"first", "all"}
	TitleModes  = []string{"filename", "heading", "frontmatter"}
	ThemeModes  = []string{"light", "dark"}
	configNames = []string{".yaml", ".yml"}
)

// Config holds all configuration for wiki generation.
type Config struct {
	Input       InputConfig     `yaml:"input"`
	Output      OutputConfig    `yaml:"output"`
	Title       string          `yaml:"title"`       // Page title (default: "Notes")
	Ignore      []string        `yaml:"ignore"`      // Names skipped while scanning
	Engine      string          `yaml:"engine"`      // "classic" or "goldmark"
	Lists       string          `yaml:"lists"`       // "first" or "all"
	Titles      string          `yaml:"titles"`      // "filename", "heading" or "frontmatter"
	FrontMatter bool            `yaml:"frontMatter"` // Strip YAML front matter before conversion
	Theme       ThemeConfig     `yaml:"theme"`
	Highlight   HighlightConfig `yaml:"highlight"`
	Assets      AssetsConfig    `yaml:"assets"`
}

// InputConfig defines input source options.
type InputConfig struct {
	Dir string `yaml:"dir"` // Vault directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	File string `yaml:"file"` // Output HTML file (default: "wiki.html")
}

// ThemeConfig defines the colour scheme options.
type ThemeConfig struct {
	Default string `yaml:"default"` // "light" or "dark"
}

// HighlightConfig defines code highlighting for the goldmark engine.
type HighlightConfig struct {
	Style string `yaml:"style"` // Chroma style name (default: "github")
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
	Template string `yaml:"template"` // Page template name (empty = "page")
	Style    string `yaml:"style"`    // Page stylesheet name (empty = "default")
	Script   string `yaml:"script"`   // Navigation script name (empty = "navigation")
}

// Validate checks field lengths and enum values.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.dir", c.Input.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.file", c.Output.File, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.template", c.Assets.Template, MaxAssetNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.style", c.Assets.Style, MaxAssetNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.script", c.Assets.Script, MaxAssetNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("title", c.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxStyleLength); err != nil {
		return err
	}

	if len(c.Ignore) > MaxPatternCount {
		return fmt.Errorf("%w: ignore (%d entries, max %d)", ErrFieldTooLong, len(c.Ignore), MaxPatternCount)
	}
	for i, name := range c.Ignore {
		if err := validateFieldLength(fmt.Sprintf("ignore[%d]", i), name, MaxPatternLen); err != nil {
			return err
		}
	}

	if err := validateEnum("engine", c.Engine, Engines); err != nil {
		return err
	}
	if err := validateEnum("lists", c.Lists, ListModes); err != nil {
		return err
	}
	if err := validateEnum("titles", c.Titles, TitleModes); err != nil {
		return err
	}
	if err := validateEnum("theme.default", c.Theme.Default, ThemeModes); err != nil {
		return err
	}

	if c.Titles == "frontmatter" && !c.FrontMatter {
		return fmt.Errorf("%w: titles: %q requires frontMatter: true", ErrInvalidValue, c.Titles)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateEnum accepts the empty string (meaning the default) or one of allowed.
func validateEnum(fieldName, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s: %q (must be one of %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Output:    OutputConfig{File: "wiki.html"},
		Title:     "Notes",
		Ignore:    []string{".git", "node_modules", ".obsidian", ".trash"},
		Engine:    Engines[0],
		Lists:     ListModes[0],
		Titles:    TitleModes[0],
		Theme:     ThemeConfig{Default: ThemeModes[0]},
		Highlight: HighlightConfig{Style: "github"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2wiki/
func resolveConfigPath(name string) (string, error) {
	tried := make([]string, 0, len(configNames)*2)

	for _, ext := range configNames {
		local := name + ext
		if fileExists(local) {
			return local, nil
		}
		tried = append(tried, local)
	}

	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range configNames {
			user := filepath.Join(dir, "go-md2wiki", name+ext)
			if fileExists(user) {
				return user, nil
			}
			tried = append(tried, user)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
