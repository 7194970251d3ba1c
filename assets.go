package md2wiki

import (
	"errors"
	"fmt"

	"github.com/alnah/go-md2wiki/internal/assets"
)

// Names of the built-in assets.
const (
	DefaultStyle    = assets.DefaultStyleName
	DefaultTemplate = assets.DefaultTemplateName
	DefaultScript   = assets.DefaultScriptName
)

// AssetLoader supplies the page template, stylesheet and navigation script,
// each looked up by a bare name without extension. Implement it to serve
// assets from somewhere other than disk.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
	LoadScript(name string) (string, error)
}

// NewAssetLoader returns the built-in assets, overridden file by file by
// basePath when it is set. basePath may hold styles/{name}.css,
// templates/{name}.html and scripts/{name}.js; anything it lacks comes from
// the built-in set.
//
// Returns ErrInvalidAssetPath if basePath is set but is not a directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	r, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, publicAssetError(err)
	}
	return publicAssets{r}, nil
}

// publicAssets reports internal asset failures with the package sentinels.
type publicAssets struct {
	r *assets.AssetResolver
}

func (p publicAssets) LoadStyle(name string) (string, error) {
	return checked(p.r.LoadStyle(name))
}

func (p publicAssets) LoadTemplate(name string) (string, error) {
	return checked(p.r.LoadTemplate(name))
}

func (p publicAssets) LoadScript(name string) (string, error) {
	return checked(p.r.LoadScript(name))
}

func checked(content string, err error) (string, error) {
	return content, publicAssetError(err)
}

// publicAssetError wraps err with the matching public sentinel. Both stay
// visible to errors.Is. An invalid name can never exist, so it reads as
// not found.
func publicAssetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrStyleNotFound),
		errors.Is(err, assets.ErrTemplateNotFound),
		errors.Is(err, assets.ErrScriptNotFound),
		errors.Is(err, assets.ErrInvalidAssetName):
		return fmt.Errorf("%w: %w", ErrAssetNotFound, err)
	case errors.Is(err, assets.ErrInvalidBasePath),
		errors.Is(err, assets.ErrPathTraversal):
		return fmt.Errorf("%w: %w", ErrInvalidAssetPath, err)
	default:
		return err
	}
}
