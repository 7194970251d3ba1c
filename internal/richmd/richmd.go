// Package richmd is the CommonMark renderer: goldmark with GFM, footnotes,
// class-based syntax highlighting, and [[cross-reference]] tags shaped like
// the classic renderer's so client navigation treats both the same way.
package richmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Sentinel errors.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrUnknownStyle   = errors.New("unknown highlight style")
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "github"

// Engine converts markdown to an HTML fragment using goldmark.
type Engine struct {
	md    goldmark.Markdown
	style string
}

// Option configures an Engine.
type Option func(*Engine)

// WithStyle selects the chroma style name used for CSS generation.
func WithStyle(name string) Option {
	return func(e *Engine) {
		if name != "" {
			e.style = name
		}
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{style: DefaultStyle}
	for _, opt := range opts {
		opt(e)
	}

	e.md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithStyle(e.style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // colors come from StyleCSS
				),
			),
			CrossReferences,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			// WithUnsafe is not set: raw HTML in notes is dropped by this engine.
		),
	)
	return e
}

// Style returns the configured chroma style name.
func (e *Engine) Style() string {
	return e.style
}

// ToHTML converts content to an HTML fragment.
// goldmark has no context support, so conversion runs in a goroutine and
// the call returns early on cancellation.
func (e *Engine) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := e.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// StyleCSS returns the stylesheet for highlighted code in the named style.
func StyleCSS(name string) (string, error) {
	st, ok := styles.Registry[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}

	var buf bytes.Buffer
	if err := chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(&buf, st); err != nil {
		return "", fmt.Errorf("writing highlight CSS: %w", err)
	}
	return buf.String(), nil
}

// Styles lists the registered highlight style names, sorted.
func Styles() []string {
	return styles.Names()
}
