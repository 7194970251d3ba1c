package richmd

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindCrossReference is the node kind of a [[Name]] reference.
var KindCrossReference = ast.NewNodeKind("CrossReference")

// CrossReference is an inline [[Name]] reference, resolved at navigation time.
type CrossReference struct {
	ast.BaseInline
	Target []byte
}

// Kind implements ast.Node.
func (n *CrossReference) Kind() ast.NodeKind {
	return KindCrossReference
}

// Dump implements ast.Node.
func (n *CrossReference) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Target": string(n.Target)}, nil)
}

var (
	openRef  = []byte("[[")
	closeRef = []byte("]]")
)

type crossRefParser struct{}

func (crossRefParser) Trigger() []byte {
	return []byte{'['}
}

func (crossRefParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if !bytes.HasPrefix(line, openRef) {
		return nil
	}
	end := bytes.Index(line[len(openRef):], closeRef)
	if end < 0 {
		return nil
	}
	target := line[len(openRef) : len(openRef)+end]
	block.Advance(len(openRef) + end + len(closeRef))
	return &CrossReference{Target: append([]byte(nil), target...)}
}

type crossRefRenderer struct{}

func (r crossRefRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindCrossReference, r.render)
}

func (crossRefRenderer) render(w util.BufWriter, _ []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	target := util.EscapeHTML(n.(*CrossReference).Target)
	_, _ = w.WriteString(`<a href="#" class="wikilink" data-target="`)
	_, _ = w.Write(target)
	_, _ = w.WriteString(`">`)
	_, _ = w.Write(target)
	_, _ = w.WriteString(`</a>`)
	return ast.WalkSkipChildren, nil
}

type crossRefExtender struct{}

// CrossReferences adds [[Name]] parsing and rendering to a goldmark instance.
// It runs ahead of the standard link parser, which also triggers on '['.
var CrossReferences goldmark.Extender = crossRefExtender{}

func (crossRefExtender) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(crossRefParser{}, 199),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(crossRefRenderer{}, 199),
	))
}
