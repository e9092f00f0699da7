package md2site

import (
	"errors"

	"github.com/alnah/go-md2site/internal/assets"
)

// Asset name constants for built-in styles and templates.
const (
	// DefaultStyle is the name of the built-in CSS style.
	DefaultStyle = assets.DefaultStyleName

	// DefaultTemplate is the name of the built-in page template.
	DefaultTemplate = assets.DefaultTemplateName
)

// AssetLoader defines the contract for loading CSS styles and page templates.
//
// The library provides NewAssetLoader() for filesystem-based loading with
// fallback to embedded defaults. Implement this interface for custom backends.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads a page template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}

// NewAssetLoader creates an AssetLoader for the given base path.
// If basePath is empty, returns a loader using only embedded assets.
// If basePath is set, custom assets take precedence with fallback to embedded.
//
// The basePath directory should contain:
//   - styles/{name}.css for CSS styles
//   - templates/{name}.html for page templates
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// assetLoaderAdapter wraps internal AssetResolver to return public errors.
type assetLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetLoaderAdapter) LoadStyle(name string) (string, error) {
	content, err := a.resolver.LoadStyle(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

func (a *assetLoaderAdapter) LoadTemplate(name string) (string, error) {
	content, err := a.resolver.LoadTemplate(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrStyleNotFound):
		return wrapError(ErrStyleNotFound, err)
	case errors.Is(err, assets.ErrTemplateNotFound):
		return wrapError(ErrTemplateNotFound, err)
	case errors.Is(err, assets.ErrInvalidBasePath),
		errors.Is(err, assets.ErrPathTraversal),
		errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrInvalidAssetPath, err)
	default:
		return err
	}
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}

// Compile-time interface check.
var _ AssetLoader = (*assetLoaderAdapter)(nil)
