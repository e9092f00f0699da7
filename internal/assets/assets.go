package assets

// Names of the built-in assets.
const (
	DefaultTemplateName = "default"
	DefaultStyleName    = "default"
)

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS file by name using the default embedded loader.
// The name should not include the .css extension or path components.
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads a page template by name using the default embedded loader.
// Returns ErrTemplateNotFound if the template does not exist.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}
