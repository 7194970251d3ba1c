package assets

import "errors"

// AssetResolver asks a stack of loaders in turn: a custom directory when one
// is configured, then the embedded tree. Only a "not found" answer moves on
// to the next layer; invalid names and read errors stop the lookup.
type AssetResolver struct {
	layers []AssetLoader // highest priority first
}

// NewAssetResolver creates an AssetResolver.
// If customBasePath is empty, only embedded assets are used.
// Returns error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	r := &AssetResolver{}
	if customBasePath != "" {
		custom, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.layers = append(r.layers, custom)
	}
	r.layers = append(r.layers, NewEmbeddedLoader())
	return r, nil
}

// LoadStyle loads a CSS style from the first layer that has it.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.load(styleKind, name)
}

// LoadTemplate loads an HTML template from the first layer that has it.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.load(templateKind, name)
}

// LoadScript loads a script from the first layer that has it.
func (r *AssetResolver) LoadScript(name string) (string, error) {
	return r.load(scriptKind, name)
}

func (r *AssetResolver) load(k kind, name string) (content string, err error) {
	for _, layer := range r.layers {
		content, err = k.get(layer, name)
		if !errors.Is(err, k.notFound) {
			return content, err
		}
	}
	return "", err
}

// HasCustomLoader reports whether a custom directory sits above the embedded tree.
func (r *AssetResolver) HasCustomLoader() bool {
	return len(r.layers) > 1
}

var _ AssetLoader = (*AssetResolver)(nil)
