// Package assets provides the page template, stylesheet and navigation
// script bundled into the generated wiki.
//
// A Tree reads assets from a layout of
//
//	styles/{name}.css
//	templates/{name}.html
//	scripts/{name}.js
//
// either compiled into the binary (NewEmbeddedLoader) or under a directory
// on disk (NewFilesystemLoader). AssetResolver stacks a custom directory
// over the embedded tree, so a user can override the stylesheet and keep
// the built-in template and script.
//
// Asset names are bare words. Disk lookups also follow symlinks and refuse
// any file that resolves outside the directory.
package assets
