// Package watch reports batches of note changes under a vault directory,
// coalescing bursts of filesystem events into one callback.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alnah/go-md2wiki/internal/scan"
)

// DefaultDelay is the quiet period that closes a batch.
const DefaultDelay = 200 * time.Millisecond

// ErrWatch wraps failures to set up the underlying watcher.
var ErrWatch = errors.New("watching vault")

// Handler receives the changed paths of one batch, sorted and deduplicated.
type Handler func(ctx context.Context, paths []string) error

// Options configures a Watcher.
type Options struct {
	Delay  time.Duration
	Ignore []string // directory and file names never watched
	Logger *slog.Logger
}

// Watcher follows every non-ignored directory below a root.
type Watcher struct {
	fsw    *fsnotify.Watcher
	root   string
	delay  time.Duration
	ignore []string
	log    *slog.Logger
	dirs   map[string]struct{} // directories currently watched
}

// New starts watching root and its subdirectories.
func New(root string, opts Options) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWatch, err)
	}

	w := &Watcher{
		fsw:    fsw,
		root:   filepath.Clean(root),
		delay:  opts.Delay,
		ignore: opts.Ignore,
		log:    opts.Logger,
		dirs:   make(map[string]struct{}),
	}
	if w.delay <= 0 {
		w.delay = DefaultDelay
	}
	if w.ignore == nil {
		w.ignore = scan.DefaultIgnore
	}
	if w.log == nil {
		w.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := w.addTree(w.root); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("%w: %v", ErrWatch, err)
	}
	return w, nil
}

// addTree registers dir and every non-ignored directory below it.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			w.log.Warn("skipping unwatchable directory", "path", path, "error", err)
			return fs.SkipDir
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && slices.Contains(w.ignore, d.Name()) {
			return fs.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			if path == dir {
				return err
			}
			w.log.Warn("skipping unwatchable directory", "path", path, "error", err)
			return nil
		}
		w.dirs[path] = struct{}{}
		return nil
	})
}

// relevant reports whether an event can change the generated wiki.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	rel, err := filepath.Rel(w.root, ev.Name)
	if err != nil {
		return false
	}
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if slices.Contains(w.ignore, part) {
			return false
		}
	}
	if scan.IsNote(ev.Name) {
		return true
	}
	// Other files, the generated page included, never matter. Folders do:
	// a new one may hold notes, a removed one drops them.
	if ev.Has(fsnotify.Create) {
		info, err := os.Stat(ev.Name)
		return err == nil && info.IsDir()
	}
	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		_, ok := w.dirs[ev.Name]
		return ok
	}
	return false
}

// Run delivers batches to fn until ctx is done. Handler errors are logged
// and do not stop the loop.
func (w *Watcher) Run(ctx context.Context, fn Handler) error {
	pending := make(map[string]struct{})
	timer := time.NewTimer(w.delay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				delete(w.dirs, ev.Name)
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.addTree(ev.Name); err != nil {
						w.log.Warn("watching new directory", "path", ev.Name, "error", err)
					}
				}
			}
			w.log.Debug("change", "op", ev.Op.String(), "path", ev.Name)
			pending[ev.Name] = struct{}{}
			timer.Reset(w.delay)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", "error", err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			clear(pending)

			if err := fn(ctx, paths); err != nil {
				w.log.Error("rebuild failed", "error", err)
			}
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
