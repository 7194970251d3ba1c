package md2wiki

import (
	"github.com/alnah/go-md2wiki/internal/linkres"
	"github.com/alnah/go-md2wiki/internal/markup"
)

var defaultConverter = markup.New()

// Convert renders one note with the classic engine and default options.
// It never fails: text no rule matches passes through unchanged.
func Convert(source string) string {
	return defaultConverter.Convert(source)
}

// Resolve matches ref against ids: an exact case-insensitive match first,
// then the first identifier, in order, that contains ref or is contained
// by it. A blank reference never matches.
func Resolve(ids []string, ref string) (string, bool) {
	return linkres.NewIndex(ids).Resolve(ref)
}
