package markup

import (
	"context"
	"regexp"
	"strings"
)

// kind classifies a line record.
type kind int

const (
	kindText      kind = iota // source line not yet claimed by a block rule
	kindCode                  // fenced code block, may span several source lines
	kindHeading               // <h1>..<h6>
	kindRule                  // <hr>
	kindParagraph             // <p> wrapping one or more joined text lines
	kindListItem              // <li>, see line.ordered
	kindList                  // <ul> or <ol> container wrapping a run of items
)

// line is one record of the intermediate representation.
type line struct {
	kind    kind
	text    string
	ordered bool // list items only
}

// stage is a single rewrite rule over the whole record sequence.
type stage func([]line) []line

// ListMode selects how contiguous runs of list items are wrapped.
type ListMode int

const (
	// ListsFirstRun wraps only the first run of each list type in a document.
	// Later runs are emitted as bare <li> elements.
	ListsFirstRun ListMode = iota

	// ListsEveryRun wraps every contiguous run in its own container.
	ListsEveryRun
)

// String returns the config spelling of the mode.
func (m ListMode) String() string {
	if m == ListsEveryRun {
		return "all"
	}
	return "first"
}

// ParseListMode maps a config value to a ListMode.
// Unknown values fall back to ListsFirstRun and report ok=false.
func ParseListMode(s string) (mode ListMode, ok bool) {
	switch strings.ToLower(s) {
	case "", "first":
		return ListsFirstRun, true
	case "all":
		return ListsEveryRun, true
	}
	return ListsFirstRun, false
}

// Option configures a Converter.
type Option func(*Converter)

// WithListMode sets the list wrapping mode.
func WithListMode(m ListMode) Option {
	return func(c *Converter) {
		c.lists = m
	}
}

// Converter renders note text into an HTML fragment.
// A Converter holds no per-document state and is safe for concurrent use.
type Converter struct {
	lists  ListMode
	stages []stage
}

// New creates a Converter with the default rule set.
func New(opts ...Option) *Converter {
	c := &Converter{lists: ListsFirstRun}
	for _, opt := range opts {
		opt(c)
	}

	c.stages = []stage{
		headings,
		emphasis,
		crossReferences,
		images,
		links,
		inlineCode,
		rules,
		paragraphs,
		unorderedLists(c.lists),
		orderedLists(c.lists),
	}
	return c
}

// crlfOrCR matches Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Convert renders src. It never fails: text no rule matches is emitted as is.
func (c *Converter) Convert(src string) string {
	lines := splitFences(crlfOrCR.ReplaceAllString(src, "\n"))
	for _, st := range c.stages {
		lines = st(lines)
	}
	return join(lines)
}

// ToHTML renders content, honoring cancellation before work starts.
func (c *Converter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.Convert(content), nil
}

// join emits the records one per line.
func join(lines []line) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.text
	}
	return strings.Join(parts, "\n")
}
