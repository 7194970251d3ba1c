// Package md2wiki turns a directory of markdown notes into one
// self-contained HTML page with client-side navigation.
//
// # Quick Start
//
//	s, err := md2wiki.NewSession(md2wiki.WithTitle("My Notes"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := s.Build(ctx, os.DirFS("notes")); err != nil {
//	    log.Fatal(err)
//	}
//	f, _ := os.Create("wiki.html")
//	defer f.Close()
//	if err := s.Render(f); err != nil {
//	    log.Fatal(err)
//	}
//
// # Build Pipeline
//
//  1. Traversal: folders first, each group sorted by name, ignored and
//     empty folders dropped, unreadable folders logged and skipped.
//  2. Conversion: each note becomes a Document whose HTML fragment tags
//     [[Name]] references without resolving them.
//  3. Rendering: fragments, tree and navigation script go into one page.
//
// # Cross-References
//
// A [[Name]] reference resolves when it is followed, against the corpus as
// built: first an exact case-insensitive identifier match, then the first
// identifier in corpus order containing the reference or contained by it.
// References that find nothing render de-emphasized and inert. Session.Check
// runs the same resolution ahead of time for every reference.
//
// # Engines
//
// EngineClassic is a line-oriented rewriter with a fixed rule order.
// EngineGoldmark parses CommonMark with GFM and highlights code with chroma;
// it produces the same cross-reference tags.
package md2wiki
