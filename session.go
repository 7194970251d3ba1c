package md2wiki

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/alnah/go-md2wiki/internal/bundle"
	"github.com/alnah/go-md2wiki/internal/frontmatter"
	"github.com/alnah/go-md2wiki/internal/linkcheck"
	"github.com/alnah/go-md2wiki/internal/markup"
	"github.com/alnah/go-md2wiki/internal/richmd"
	"github.com/alnah/go-md2wiki/internal/scan"
)

// Session owns the state of one build: the corpus, the navigation tree and
// the converters. Create with NewSession, populate with Build or Add, then
// Render, Check or Resolve.
type Session struct {
	cfg      sessionConfig
	corpus   *Corpus
	tree     *Node
	classic  *markup.Converter
	rich     *richmd.Engine
	css      string // highlight stylesheet, goldmark engine only
	renderer *bundle.Renderer
}

// NewSession creates an empty Session.
// Returns an error wrapping one of the ErrInvalid* sentinels for bad options.
func NewSession(opts ...Option) (*Session, error) {
	cfg := defaultSessionConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:     cfg,
		corpus:  NewCorpus(),
		tree:    &Node{Path: ".", Folder: true},
		classic: markup.New(markup.WithListMode(cfg.lists)),
	}
	if cfg.engine == EngineGoldmark {
		s.rich = richmd.New(richmd.WithStyle(cfg.style))
		css, err := richmd.StyleCSS(s.rich.Style())
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, cfg.style)
		}
		s.css = css
	}

	var loader AssetLoader = cfg.loader
	if loader == nil {
		var err error
		if loader, err = NewAssetLoader(""); err != nil {
			return nil, err
		}
	}
	s.renderer = bundle.New(loader, pageOptions(cfg.page)...)
	return s, nil
}

func pageOptions(p PageAssets) []bundle.Option {
	var opts []bundle.Option
	if p.Template != "" {
		opts = append(opts, bundle.WithTemplate(p.Template))
	}
	if p.Style != "" {
		opts = append(opts, bundle.WithStyle(p.Style))
	}
	if p.Script != "" {
		opts = append(opts, bundle.WithScript(p.Script))
	}
	return opts
}

// Corpus returns the Session's documents.
func (s *Session) Corpus() *Corpus {
	return s.corpus
}

// Tree returns the navigation tree. The root has Path "." and no name.
func (s *Session) Tree() *Node {
	return s.tree
}

// Build walks fsys, converts every note and replaces the navigation tree.
// Unreadable directories and files are logged and skipped; only context
// cancellation or a converter failure stops the build.
func (s *Session) Build(ctx context.Context, fsys fs.FS) error {
	walked := scan.Walk(fsys, scan.Options{Ignore: s.cfg.ignore, Logger: s.cfg.logger})

	converted := make(map[string]bool)
	for _, leaf := range walked.Leaves() {
		if err := ctx.Err(); err != nil {
			return err
		}

		src, err := fs.ReadFile(fsys, leaf.Path)
		if err != nil {
			s.cfg.logger.Warn("skipping unreadable note", "path", leaf.Path, "error", err)
			continue
		}

		doc, err := s.convert(ctx, leaf.Path, src)
		if err != nil {
			return err
		}
		s.corpus.Add(doc)
		converted[leaf.Path] = true
		s.cfg.logger.Debug("converted note", "id", doc.ID, "path", doc.Path)
	}

	s.tree = fromScan(walked,
		func(leaf *scan.Node) bool { return converted[leaf.Path] },
		func(id string) string {
			if d, ok := s.corpus.Get(id); ok {
				return d.Name
			}
			return id
		})

	s.cfg.logger.Info("built corpus", "notes", s.corpus.Len())
	return nil
}

// Add converts one note given its vault-relative path and stores it,
// inserting a leaf into the navigation tree.
func (s *Session) Add(ctx context.Context, notePath string, source []byte) (Document, error) {
	doc, err := s.convert(ctx, path.Clean(notePath), source)
	if err != nil {
		return Document{}, err
	}
	s.corpus.Add(doc)
	insert(s.tree, doc)
	return doc, nil
}

// convert turns one note's source into a Document.
func (s *Session) convert(ctx context.Context, notePath string, source []byte) (Document, error) {
	doc := Document{
		ID:   scan.NoteID(notePath),
		Path: notePath,
		Raw:  string(source),
	}

	body := source
	var meta frontmatter.Meta
	if s.cfg.frontMatter {
		m, b, err := frontmatter.Split(source)
		if err != nil {
			s.cfg.logger.Warn("ignoring front matter", "path", notePath, "error", err)
		} else {
			meta, body = m, b
		}
	}

	switch s.cfg.engine {
	case EngineGoldmark:
		html, err := s.rich.ToHTML(ctx, string(body))
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return Document{}, err
			}
			return Document{}, fmt.Errorf("%w: %s: %v", ErrConvert, notePath, err)
		}
		doc.HTML = html
	default:
		html, err := s.classic.ToHTML(ctx, string(body))
		if err != nil {
			return Document{}, err
		}
		doc.HTML = html
	}

	doc.Name = s.displayName(doc.ID, meta, body)
	return doc, nil
}

func (s *Session) displayName(id string, meta frontmatter.Meta, body []byte) string {
	switch s.cfg.titles {
	case TitlesHeading:
		if h := richmd.FirstHeading(body); h != "" {
			return h
		}
	case TitlesFrontMatter:
		if meta.Title != "" {
			return meta.Title
		}
	}
	return id
}

// Resolve finds the Document a cross-reference points at.
func (s *Session) Resolve(ref string) (Document, bool) {
	return s.corpus.Resolve(ref)
}

// Explain is Resolve reporting which phase matched.
func (s *Session) Explain(ref string) (Document, Phase) {
	return s.corpus.Explain(ref)
}

// Reference is one cross-reference found in a rendered note.
type Reference struct {
	Source string // identifier of the note holding the reference
	Text   string // reference text as written
	Target string // resolved identifier, "" when unresolved
	Phase  Phase
}

// Resolved reports whether the reference found a Document.
func (r Reference) Resolved() bool {
	return r.Phase != PhaseNone
}

// Check resolves every cross-reference of every note, in corpus order.
func (s *Session) Check() []Reference {
	return references(s.report().Results)
}

// Unresolved is Check restricted to the references that found no note.
func (s *Session) Unresolved() []Reference {
	return references(s.report().Unresolved())
}

func (s *Session) report() *linkcheck.Report {
	docs := s.corpus.Documents()
	sources := make([]linkcheck.Source, len(docs))
	for i, d := range docs {
		sources[i] = linkcheck.Source{ID: d.ID, Fragment: d.HTML}
	}
	return linkcheck.Check(s.corpus.Index(), sources)
}

func references(results []linkcheck.Result) []Reference {
	refs := make([]Reference, len(results))
	for i, r := range results {
		refs[i] = Reference{Source: r.Source, Text: r.Reference, Target: r.Target, Phase: r.Phase}
	}
	return refs
}

// Render writes the single-page wiki to w.
func (s *Session) Render(w io.Writer) error {
	docs := s.corpus.Documents()
	page := &bundle.Page{
		Title:        s.cfg.title,
		Theme:        s.cfg.theme,
		Documents:    make([]bundle.Document, len(docs)),
		Tree:         toBundle(s.tree),
		HighlightCSS: s.css,
	}
	for i, d := range docs {
		page.Documents[i] = bundle.Document{ID: d.ID, Name: d.Name, Path: d.Path, HTML: d.HTML}
	}

	if err := s.renderer.Render(w, page); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}
