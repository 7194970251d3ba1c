package assets

import "errors"

// Lookup failures, one per asset kind.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrScriptNotFound   = errors.New("script not found")
)

// Refused requests and I/O failures.
var (
	// ErrInvalidAssetName rejects empty names and names holding a separator or dot.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath rejects an override path that is not a directory.
	ErrInvalidBasePath = errors.New("invalid asset directory")

	// ErrPathTraversal rejects a file that resolves outside the override directory.
	ErrPathTraversal = errors.New("asset outside directory")

	ErrAssetRead = errors.New("failed to read asset")
)
