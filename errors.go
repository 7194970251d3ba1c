package md2wiki

import "errors"

// Sentinel errors for library operations.
var (
	ErrConvert    = errors.New("note conversion failed")
	ErrRender     = errors.New("wiki rendering failed")
	ErrNoNotes    = errors.New("no notes found")
	ErrEmptyTitle = errors.New("title cannot be empty")

	// Option validation errors.
	ErrInvalidEngine    = errors.New("invalid engine")
	ErrInvalidListMode  = errors.New("invalid list mode")
	ErrInvalidTitleMode = errors.New("invalid title mode")
	ErrInvalidTheme     = errors.New("invalid theme")

	// Asset loading errors.
	ErrAssetNotFound    = errors.New("asset not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrUnknownStyle     = errors.New("unknown highlight style")
)
