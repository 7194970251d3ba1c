// Package markup implements the classic note renderer: a fixed, ordered set of
// rewrite rules that turn lightweight markup into an HTML fragment.
//
// The source is first split into typed line records (code, heading, rule,
// list item, paragraph, plain text). Each rule is a stage that takes the
// records produced by the previous stage and returns new ones, so the order
// dependencies between rules are explicit and each stage can be exercised on
// its own:
//
//  1. fenced code blocks
//  2. headings (#..######)
//  3. strong then em emphasis
//  4. [[cross-reference]] tags
//  5. images, then standard links (the "!" prefix is the discriminator)
//  6. inline code spans
//  7. horizontal rules
//  8. paragraph grouping
//  9. unordered list items and containers
//  10. ordered list items and containers
//
// Fenced code records are opaque to the block and emphasis stages but the
// inline stages (cross-references, links, images, inline code) still rewrite
// their text.
//
// Author text is not escaped. Literal angle brackets in a note pass through
// into the fragment unchanged.
package markup
