// Package bundle renders the single-file wiki: one HTML page embedding every
// rendered fragment, the folder tree and the navigation script.
package bundle

import (
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/alnah/go-md2wiki/internal/assets"
)

// Sentinel errors for bundle rendering.
var (
	ErrAssetLoad = errors.New("loading bundle asset")
	ErrTemplate  = errors.New("parsing page template")
	ErrRender    = errors.New("rendering page")
)

// Document is one rendered note.
type Document struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
	HTML string `json:"html"`
}

// Node is a folder (Folder set) or a leaf pointing at a Document by ID.
type Node struct {
	Name     string
	Path     string
	ID       string
	Folder   bool
	Children []*Node
}

// Page is everything written into the artifact.
type Page struct {
	Title        string
	Theme        string // "light" or "dark"
	Documents    []Document
	Tree         *Node
	HighlightCSS string // extra stylesheet, empty for the classic engine
}

// Renderer writes Pages using a template, style and script from an asset loader.
type Renderer struct {
	loader   assets.AssetLoader
	template string
	style    string
	script   string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTemplate selects the page template by name.
func WithTemplate(name string) Option {
	return func(r *Renderer) { r.template = name }
}

// WithStyle selects the stylesheet by name.
func WithStyle(name string) Option {
	return func(r *Renderer) { r.style = name }
}

// WithScript selects the navigation script by name.
func WithScript(name string) Option {
	return func(r *Renderer) { r.script = name }
}

// New returns a Renderer reading assets from loader, or the embedded assets
// when loader is nil.
func New(loader assets.AssetLoader, opts ...Option) *Renderer {
	if loader == nil {
		loader = assets.NewEmbeddedLoader()
	}
	r := &Renderer{
		loader:   loader,
		template: assets.DefaultTemplateName,
		style:    assets.DefaultStyleName,
		script:   assets.DefaultScriptName,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// view is the template's data.
type view struct {
	Title        string
	Theme        string
	Style        template.CSS
	HighlightCSS template.CSS
	Script       template.JS
	Data         template.JS
}

// Render writes p to w as a complete HTML document.
func (r *Renderer) Render(w io.Writer, p *Page) error {
	src, err := r.loader.LoadTemplate(r.template)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAssetLoad, err)
	}
	style, err := r.loader.LoadStyle(r.style)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAssetLoad, err)
	}
	script, err := r.loader.LoadScript(r.script)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAssetLoad, err)
	}

	tmpl, err := template.New(r.template).Parse(src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTemplate, err)
	}

	data, err := marshalPayload(p)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}

	// Stylesheets and scripts are trusted assets; json.Marshal escapes
	// '<', '>' and '&' so the payload cannot close its script element.
	v := view{
		Title:        p.Title,
		Theme:        p.Theme,
		Style:        template.CSS(style),         // #nosec G203 -- trusted asset
		HighlightCSS: template.CSS(p.HighlightCSS), // #nosec G203 -- generated by chroma
		Script:       template.JS(script),         // #nosec G203 -- trusted asset
		Data:         template.JS(data),           // #nosec G203 -- escaped JSON
	}
	if err := tmpl.Execute(w, v); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	return nil
}
