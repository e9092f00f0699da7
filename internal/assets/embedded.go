package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/*.css templates/*.html
var embedded embed.FS

// EmbeddedLoader loads assets from embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a CSS style from embedded assets by name.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.load(styleKind, name)
}

// LoadTemplate loads a page template from embedded assets by name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return e.load(templateKind, name)
}

func (e *EmbeddedLoader) load(kind assetKind, name string) (string, error) {
	if err := kind.checkName(name); err != nil {
		return "", err
	}

	content, err := embedded.ReadFile(kind.file(name))
	if err != nil {
		return "", fmt.Errorf("%w: %q", kind.notFound, name)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
