package assets

import "embed"

//go:embed styles templates scripts
var embedded embed.FS

// NewEmbeddedLoader returns the Tree compiled into the binary.
func NewEmbeddedLoader() *Tree {
	return &Tree{fsys: embedded}
}
