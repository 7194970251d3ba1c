// Package linkres resolves cross-reference text to document identifiers.
//
// Resolution has two phases and the first match wins:
//
//  1. exact: the identifier equals the reference, ignoring case
//  2. fallback: either string contains the other, ignoring case
//
// Both phases honor corpus insertion order. An Index is a snapshot: it is
// built once from an ordered identifier list and only read afterwards, so it
// is safe for concurrent use.
package linkres

import "strings"

// Index is a normalized, read-only view of a corpus's identifiers.
type Index struct {
	ids   []string       // original casing, insertion order
	lower []string       // lower-cased, parallel to ids
	exact map[string]int // lower-cased id -> position of its first occurrence
}

// NewIndex builds an Index over ids in the order given.
func NewIndex(ids []string) *Index {
	idx := &Index{
		ids:   make([]string, len(ids)),
		lower: make([]string, len(ids)),
		exact: make(map[string]int, len(ids)),
	}
	copy(idx.ids, ids)
	for i, id := range ids {
		l := strings.ToLower(id)
		idx.lower[i] = l
		if _, seen := idx.exact[l]; !seen {
			idx.exact[l] = i
		}
	}
	return idx
}

// Len reports the number of indexed identifiers.
func (x *Index) Len() int {
	return len(x.ids)
}

// Resolve returns the identifier ref points at, or ok=false when neither
// phase matches. The empty string is contained in every identifier, so an
// empty reference, or an empty identifier, matches the first candidate
// scanned by the fallback phase.
func (x *Index) Resolve(ref string) (id string, ok bool) {
	l := strings.ToLower(ref)

	if i, found := x.exact[l]; found {
		return x.ids[i], true
	}

	for i, cand := range x.lower {
		if strings.Contains(l, cand) || strings.Contains(cand, l) {
			return x.ids[i], true
		}
	}
	return "", false
}

// Phase reports which phase produced a match.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseExact
	PhaseFallback
)

// String returns a short label for reports.
func (p Phase) String() string {
	switch p {
	case PhaseExact:
		return "exact"
	case PhaseFallback:
		return "fallback"
	default:
		return "none"
	}
}

// Explain is Resolve plus the phase that matched.
func (x *Index) Explain(ref string) (id string, phase Phase) {
	id, ok := x.Resolve(ref)
	if !ok {
		return "", PhaseNone
	}
	if _, exact := x.exact[strings.ToLower(ref)]; exact {
		return id, PhaseExact
	}
	return id, PhaseFallback
}
