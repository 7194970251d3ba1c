package scan

// Notes:
// - Walk is tested on in-memory filesystems (testing/fstest); the unreadable
//   directory case wraps MapFS so ReadDir fails for one path.

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"
)

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}

func equalNames(t *testing.T, got []*Node, want ...string) {
	t.Helper()
	g := names(got)
	if strings.Join(g, ",") != strings.Join(want, ",") {
		t.Errorf("children = %v, want %v", g, want)
	}
}

// ---------------------------------------------------------------------------
// TestWalk - Ordering, filtering, pruning
// ---------------------------------------------------------------------------

func TestWalk(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"zeta.md":                 {Data: []byte("z")},
		"alpha.md":                {Data: []byte("a")},
		"image.png":               {Data: []byte{0}},
		"b-folder/note.md":        {Data: []byte("n")},
		"a-folder/deep/inner.md":  {Data: []byte("i")},
		"a-folder/readme.txt":     {Data: []byte("r")},
		"empty/only.txt":          {Data: []byte("x")},
		".git/HEAD.md":            {Data: []byte("h")},
		"node_modules/pkg/doc.md": {Data: []byte("d")},
		"Upper.MARKDOWN":          {Data: []byte("u")},
	}

	root := Walk(fsys, Options{})

	if !root.Dir || root.Path != "." {
		t.Fatalf("root = %+v, want folder at \".\"", root)
	}
	equalNames(t, root.Children, "a-folder", "b-folder", "Upper", "alpha", "zeta")

	a := root.Children[0]
	equalNames(t, a.Children, "deep")
	equalNames(t, a.Children[0].Children, "inner")
	if got := a.Children[0].Children[0].Path; got != "a-folder/deep/inner.md" {
		t.Errorf("leaf path = %q", got)
	}

	leaves := root.Leaves()
	equalNames(t, leaves, "inner", "note", "Upper", "alpha", "zeta")
}

func TestWalk_CustomIgnore(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"drafts/a.md": {Data: []byte("a")},
		".git/b.md":   {Data: []byte("b")},
	}

	root := Walk(fsys, Options{Ignore: []string{"drafts"}})
	equalNames(t, root.Children, ".git")
}

// failingFS fails ReadDir for a single directory.
type failingFS struct {
	fstest.MapFS
	bad string
}

func (f failingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if name == f.bad {
		return nil, errors.New("permission denied")
	}
	return f.MapFS.ReadDir(name)
}

func TestWalk_UnreadableDirectory(t *testing.T) {
	t.Parallel()

	fsys := failingFS{
		MapFS: fstest.MapFS{
			"locked/secret.md": {Data: []byte("s")},
			"open/note.md":     {Data: []byte("n")},
			"top.md":           {Data: []byte("t")},
		},
		bad: "locked",
	}

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	root := Walk(fsys, Options{Logger: log})
	equalNames(t, root.Children, "open", "top")
	if !strings.Contains(buf.String(), "skipping unreadable directory") || !strings.Contains(buf.String(), "path=locked") {
		t.Errorf("expected warning for locked directory, got %q", buf.String())
	}
}

func TestWalk_EmptyRoot(t *testing.T) {
	t.Parallel()

	root := Walk(fstest.MapFS{}, Options{})
	if root == nil || len(root.Children) != 0 {
		t.Errorf("Walk(empty) = %+v, want root with no children", root)
	}
}

// ---------------------------------------------------------------------------
// TestIsNote / TestNoteID
// ---------------------------------------------------------------------------

func TestIsNote(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"a.md":       true,
		"a.MD":       true,
		"a.markdown": true,
		"a.txt":      false,
		"md":         false,
		"a.md.bak":   false,
	}
	for in, want := range tests {
		if got := IsNote(in); got != want {
			t.Errorf("IsNote(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNoteID(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Project X.md":     "Project X",
		"dir/sub/Notes.md": "Notes",
		"v1.2.md":          "v1.2",
	}
	for in, want := range tests {
		if got := NoteID(in); got != want {
			t.Errorf("NoteID(%q) = %q, want %q", in, got, want)
		}
	}
}
