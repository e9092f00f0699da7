package assets

import "fmt"

// AssetLoader defines the contract for loading CSS styles and page templates.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads a page template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}

// assetKind describes where one type of asset lives and how it fails.
type assetKind struct {
	label    string
	dir      string
	ext      string
	notFound error
}

var (
	styleKind    = assetKind{label: "style", dir: "styles", ext: ".css", notFound: ErrStyleNotFound}
	templateKind = assetKind{label: "template", dir: "templates", ext: ".html", notFound: ErrTemplateNotFound}
)

// file returns the slash-separated path of name relative to the asset root.
func (k assetKind) file(name string) string {
	return k.dir + "/" + name + k.ext
}

// checkName accepts names made of ASCII letters, digits, '-' and '_', so a
// name always maps to one file directly under the kind's directory.
func (k assetKind) checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty %s name", ErrInvalidAssetName, k.label)
	}
	for _, r := range name {
		if !isNameRune(r) {
			return fmt.Errorf("%w: %s %q contains %q", ErrInvalidAssetName, k.label, name, r)
		}
	}
	return nil
}

func isNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return r == '-' || r == '_'
}
