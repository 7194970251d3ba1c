// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForNoInput returns a hint for a missing vault directory.
func ForNoInput() string {
	return format("pass a vault directory or set input.dir in the config file")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path, or creating the file in userDir.
func ForConfigNotFound(name, userDir string) string {
	hint := "use --config /path/to/file.yaml"
	if userDir != "" && name != "" && !strings.ContainsAny(name, `/\`) {
		hint += " or create " + filepath.Join(userDir, "go-md2wiki", name+".yaml")
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for unknown highlight styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForUnresolved returns a hint pointing at the unresolved reference listing.
func ForUnresolved() string {
	return format("run 'md2wiki check --unresolved <vault>' to list them")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
