// Package linkcheck finds the cross-reference tags in rendered fragments and
// resolves each one, producing a report of where every reference leads.
package linkcheck

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-md2wiki/internal/linkres"
)

// CrossRefClass is the class carried by cross-reference anchors.
const CrossRefClass = "wikilink"

// References returns the data-target values of the cross-reference anchors
// in fragment, in document order. Malformed markup is parsed leniently.
func References(fragment string) []string {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil
	}

	var refs []string
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.A && hasClass(n, CrossRefClass) {
			if target, ok := attr(n, "data-target"); ok {
				refs = append(refs, target)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	for _, n := range nodes {
		visit(n)
	}
	return refs
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, class string) bool {
	v, ok := attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// Source is one rendered document to check.
type Source struct {
	ID       string
	Fragment string
}

// Result is the outcome for a single reference.
type Result struct {
	Source    string        // identifier of the referring document
	Reference string        // literal reference text
	Target    string        // resolved identifier, "" when unresolved
	Phase     linkres.Phase // phase that matched
}

// Resolved reports whether the reference found a document.
func (r Result) Resolved() bool {
	return r.Phase != linkres.PhaseNone
}

// Report is the outcome for every reference in a corpus.
type Report struct {
	Results []Result
}

// Unresolved returns the results that found no document.
func (r *Report) Unresolved() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Resolved() {
			out = append(out, res)
		}
	}
	return out
}

// Check resolves every reference of every source against idx.
func Check(idx *linkres.Index, sources []Source) *Report {
	rep := &Report{}
	for _, src := range sources {
		for _, ref := range References(src.Fragment) {
			target, phase := idx.Explain(ref)
			rep.Results = append(rep.Results, Result{
				Source:    src.ID,
				Reference: ref,
				Target:    target,
				Phase:     phase,
			})
		}
	}
	return rep
}
