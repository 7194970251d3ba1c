package hints

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		config      string
		userDir     string
		wantCreate  bool
		wantContain string
	}{
		{"bare name suggests user dir", "team", "/home/u/.config", true, filepath.Join("/home/u/.config", "go-md2wiki", "team.yaml")},
		{"path given", "./team.yaml", "/home/u/.config", false, "--config"},
		{"no user dir", "team", "", false, "--config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.config, tt.userDir)
			if !strings.HasPrefix(hint, "\n  hint: ") {
				t.Errorf("hint %q missing prefix", hint)
			}
			if !strings.Contains(hint, tt.wantContain) {
				t.Errorf("hint %q should contain %q", hint, tt.wantContain)
			}
			if got := strings.Contains(hint, " or create "); got != tt.wantCreate {
				t.Errorf("create suggestion = %v, want %v", got, tt.wantCreate)
			}
		})
	}
}

func TestForStyleNotFound(t *testing.T) {
	t.Parallel()

	if got := ForStyleNotFound(nil); got != "" {
		t.Errorf("ForStyleNotFound(nil) = %q, want empty", got)
	}
	got := ForStyleNotFound([]string{"github", "monokai"})
	if !strings.Contains(got, "available: github, monokai") {
		t.Errorf("ForStyleNotFound() = %q", got)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hint string
		want string
	}{
		{"no input", ForNoInput(), "input.dir"},
		{"output", ForOutputDirectory(), "writable"},
		{"unresolved", ForUnresolved(), "--unresolved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.hint, "\n  hint: ") || !strings.Contains(tt.hint, tt.want) {
				t.Errorf("hint = %q, want prefixed hint containing %q", tt.hint, tt.want)
			}
		})
	}
}
