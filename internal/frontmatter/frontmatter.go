// Package frontmatter splits an optional YAML front matter block from a note.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/adrg/frontmatter"
)

// ErrParse indicates a front matter block that could not be decoded.
var ErrParse = errors.New("failed to parse front matter")

// Meta holds the front matter fields the build uses.
type Meta struct {
	Title   string         `yaml:"title"`
	Aliases []string       `yaml:"aliases"`
	Tags    []string       `yaml:"tags"`
	Extra   map[string]any `yaml:",inline"`
}

// Split returns the decoded metadata and the body without its delimiters.
// Notes without front matter come back unchanged with empty metadata.
func Split(source []byte) (Meta, []byte, error) {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return Meta{}, source, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return meta, body, nil
}
