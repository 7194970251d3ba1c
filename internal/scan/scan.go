// Package scan walks a notes directory and produces the ordered tree of
// folders and note files the build renders.
//
// Ignored directory names are skipped, only markdown files are kept,
// folders sort before files (each group by name), and folders left without
// any note are pruned. A directory that cannot be read is logged and treated
// as empty; the walk always completes.
package scan

import (
	"io"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
)

// DefaultIgnore lists directory names skipped when Options.Ignore is nil.
var DefaultIgnore = []string{".git", "node_modules", ".obsidian", ".trash"}

// Node is a folder or a note file.
type Node struct {
	Name     string  // entry name; notes drop the markdown extension
	Path     string  // slash-separated path relative to the walk root
	Dir      bool    // true for folders
	Children []*Node // folders only
}

// Options controls a walk.
type Options struct {
	Ignore []string     // directory names to skip (nil = DefaultIgnore)
	Logger *slog.Logger // receives unreadable-directory warnings (nil = discard)
}

// Walk scans fsys from its root. The returned root node is never nil; its
// Name is empty and its Path is ".".
func Walk(fsys fs.FS, opts Options) *Node {
	w := &walker{fsys: fsys, log: opts.Logger, ignore: make(map[string]bool)}
	if w.log == nil {
		w.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ignore := opts.Ignore
	if ignore == nil {
		ignore = DefaultIgnore
	}
	for _, name := range ignore {
		w.ignore[name] = true
	}

	root := &Node{Path: ".", Dir: true}
	root.Children = w.children(".")
	return root
}

// IsNote reports whether name has a markdown extension.
func IsNote(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".md" || ext == ".markdown"
}

// NoteID derives a note identifier from its file name.
func NoteID(name string) string {
	base := path.Base(name)
	return strings.TrimSuffix(base, path.Ext(base))
}

type walker struct {
	fsys   fs.FS
	log    *slog.Logger
	ignore map[string]bool
}

func (w *walker) children(dir string) []*Node {
	entries, err := fs.ReadDir(w.fsys, dir)
	if err != nil {
		w.log.Warn("skipping unreadable directory", "path", dir, "error", err)
		return nil
	}

	var folders, files []*Node
	for _, e := range entries {
		p := path.Join(dir, e.Name())
		switch {
		case e.IsDir():
			if w.ignore[e.Name()] {
				continue
			}
			kids := w.children(p)
			if len(kids) == 0 {
				continue
			}
			folders = append(folders, &Node{Name: e.Name(), Path: p, Dir: true, Children: kids})
		case IsNote(e.Name()):
			files = append(files, &Node{Name: e.Name(), Path: p})
		}
	}

	byName := func(nodes []*Node) {
		sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Name < nodes[j].Name })
	}
	byName(folders)
	byName(files)
	for _, f := range files {
		f.Name = NoteID(f.Name)
	}
	return append(folders, files...)
}

// Leaves returns the note nodes of the tree in display order.
func (n *Node) Leaves() []*Node {
	var out []*Node
	var visit func(*Node)
	visit = func(cur *Node) {
		if !cur.Dir {
			out = append(out, cur)
			return
		}
		for _, c := range cur.Children {
			visit(c)
		}
	}
	visit(n)
	return out
}
