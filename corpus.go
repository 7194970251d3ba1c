package md2wiki

import (
	"sync"

	"github.com/alnah/go-md2wiki/internal/linkres"
)

// Document is one converted note.
type Document struct {
	ID   string // file name without extension, unique in a Corpus
	Name string // display name
	Path string // slash-separated path relative to the vault root
	HTML string // rendered fragment
	Raw  string // source text as read
}

// Corpus maps identifiers to Documents and remembers insertion order,
// which decides fallback resolution ties. It is safe for concurrent use.
type Corpus struct {
	mu    sync.RWMutex
	order []string
	docs  map[string]Document
	index *linkres.Index // nil until requested after the last Add
}

// NewCorpus returns an empty Corpus.
func NewCorpus() *Corpus {
	return &Corpus{docs: make(map[string]Document)}
}

// Add stores d. A second Document with the same identifier replaces the
// first but keeps its position in the order.
func (c *Corpus) Add(d Document) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[d.ID]; !ok {
		c.order = append(c.order, d.ID)
	}
	c.docs[d.ID] = d
	c.index = nil
}

// Get returns the Document stored under id.
func (c *Corpus) Get(id string) (Document, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, ok := c.docs[id]
	return d, ok
}

// IDs returns the identifiers in insertion order.
func (c *Corpus) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]string(nil), c.order...)
}

// Documents returns the Documents in insertion order.
func (c *Corpus) Documents() []Document {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Document, len(c.order))
	for i, id := range c.order {
		out[i] = c.docs[id]
	}
	return out
}

// Len returns the number of Documents.
func (c *Corpus) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.order)
}

// Index returns the resolution index for the current contents, building it
// on first use after a change.
func (c *Corpus) Index() *linkres.Index {
	c.mu.RLock()
	idx := c.index
	c.mu.RUnlock()
	if idx != nil {
		return idx
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index == nil {
		c.index = linkres.NewIndex(c.order)
	}
	return c.index
}

// Resolve finds the Document a cross-reference points at: an exact
// case-insensitive identifier match, or else the first identifier in
// insertion order that contains the reference or is contained by it.
func (c *Corpus) Resolve(ref string) (Document, bool) {
	doc, _, ok := c.explain(ref)
	return doc, ok
}

// Explain is Resolve reporting which phase matched.
func (c *Corpus) Explain(ref string) (Document, Phase) {
	doc, phase, _ := c.explain(ref)
	return doc, phase
}

func (c *Corpus) explain(ref string) (Document, Phase, bool) {
	id, phase := c.Index().Explain(ref)
	if phase == PhaseNone {
		return Document{}, PhaseNone, false
	}
	doc, ok := c.Get(id)
	return doc, phase, ok
}
