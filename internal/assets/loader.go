package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Names of the built-in assets.
const (
	DefaultStyleName    = "default"
	DefaultTemplateName = "page"
	DefaultScriptName   = "navigation"
)

// AssetLoader defines the contract for loading the page assets.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)

	// LoadScript loads a JavaScript file by name (without .js extension).
	// Returns ErrScriptNotFound if the script doesn't exist.
	LoadScript(name string) (string, error)
}

// kind locates one asset type in a tree and selects its loader method.
type kind struct {
	dir      string
	ext      string
	notFound error
	get      func(AssetLoader, string) (string, error)
}

var (
	styleKind    = kind{"styles", ".css", ErrStyleNotFound, AssetLoader.LoadStyle}
	templateKind = kind{"templates", ".html", ErrTemplateNotFound, AssetLoader.LoadTemplate}
	scriptKind   = kind{"scripts", ".js", ErrScriptNotFound, AssetLoader.LoadScript}
)

// file maps a bare asset name to its slash-separated path in the tree.
// Separators and dots are refused so a name can neither leave the kind's
// directory nor change the extension.
func (k kind) file(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, `/\.`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return path.Join(k.dir, name+k.ext), nil
}

// Tree loads assets from a tree laid out as styles/, templates/ and
// scripts/, either the embedded one or a directory on disk.
type Tree struct {
	fsys fs.FS
	dir  string // resolved on-disk root; empty for the embedded tree
}

// NewFilesystemLoader creates a Tree over basePath.
// Returns ErrInvalidBasePath if the path is not an existing directory.
func NewFilesystemLoader(basePath string) (*Tree, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	// Containment checks compare resolved paths, so resolve the root too.
	dir, err := filepath.Abs(basePath)
	if err == nil {
		dir, err = filepath.EvalSymlinks(dir)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, dir)
	}
	return &Tree{fsys: os.DirFS(dir), dir: dir}, nil
}

// LoadStyle loads styles/{name}.css.
func (t *Tree) LoadStyle(name string) (string, error) {
	return t.load(styleKind, name)
}

// LoadTemplate loads templates/{name}.html.
func (t *Tree) LoadTemplate(name string) (string, error) {
	return t.load(templateKind, name)
}

// LoadScript loads scripts/{name}.js.
func (t *Tree) LoadScript(name string) (string, error) {
	return t.load(scriptKind, name)
}

func (t *Tree) load(k kind, name string) (string, error) {
	file, err := k.file(name)
	if err != nil {
		return "", err
	}
	if t.dir != "" {
		if err := t.contain(file); err != nil {
			return "", err
		}
	}

	content, err := fs.ReadFile(t.fsys, file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", k.notFound, name)
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// contain rejects a file whose resolved location, symlinks followed, lies
// outside the tree's directory. A missing file passes; the read reports it.
func (t *Tree) contain(file string) error {
	full := filepath.Join(t.dir, filepath.FromSlash(file))
	if real, err := filepath.EvalSymlinks(full); err == nil {
		full = real
	}
	rel, err := filepath.Rel(t.dir, full)
	if err != nil || !filepath.IsLocal(rel) {
		return fmt.Errorf("%w: %s", ErrPathTraversal, file)
	}
	return nil
}

var _ AssetLoader = (*Tree)(nil)
