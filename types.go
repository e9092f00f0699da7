package md2site

import (
	"fmt"
	"strings"
)

// Engine selects the Markdown to HTML converter.
type Engine string

// Available engines.
const (
	EngineNative   Engine = "native"
	EngineGoldmark Engine = "goldmark"
)

// ParseEngine converts a name to an Engine (case-insensitive).
// An empty name selects EngineNative.
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(name))) {
	case "", EngineNative:
		return EngineNative, nil
	case EngineGoldmark:
		return EngineGoldmark, nil
	}
	return "", fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidEngine, name, EngineNative, EngineGoldmark)
}

// Input is one Markdown document to generate.
type Input struct {
	Markdown string // Document source, required
	Source   string // Identifier reported in events and errors, usually the file path
	Title    string // Overrides front matter and heading titles when set
}

// FrontMatter holds the metadata block at the top of a document.
type FrontMatter struct {
	Title    string
	Template string
	Style    string // Style name added after the site style
	Draft    bool
	Extra    map[string]any
}

// Page is a generated document.
type Page struct {
	Source      string
	Title       string
	Content     string // Converted body, before templating
	HTML        string // Final page; empty for skipped drafts
	FrontMatter FrontMatter
}

// Skipped reports whether the page was a draft that was not generated.
func (p *Page) Skipped() bool {
	return p.FrontMatter.Draft && p.HTML == ""
}

// Option configures a Generator.
type Option func(*Generator)

// WithEngine selects the converter. Defaults to EngineNative.
func WithEngine(e Engine) Option {
	return func(g *Generator) {
		g.cfg.engine = e
	}
}

// WithAssetPath loads templates and styles from a directory, falling back
// to the embedded defaults.
func WithAssetPath(path string) Option {
	return func(g *Generator) {
		g.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom asset loader. Takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(g *Generator) {
		g.publicAssetLoader = loader
	}
}

// WithTemplate sets the default page template by name.
// Pages may select another one with the "template" front matter key.
func WithTemplate(name string) Option {
	return func(g *Generator) {
		g.cfg.templateName = name
	}
}

// WithStyle injects a CSS style into every page. The value is a style name
// resolved by the asset loader, or a path to a .css file.
func WithStyle(nameOrPath string) Option {
	return func(g *Generator) {
		g.cfg.styleInput = nameOrPath
	}
}

// WithBasePath prefixes root-relative links with basePath.
// "" and "/" leave links untouched.
func WithBasePath(basePath string) Option {
	return func(g *Generator) {
		g.cfg.basePath = basePath
	}
}

// WithDrafts controls whether pages marked draft are generated.
func WithDrafts(include bool) Option {
	return func(g *Generator) {
		g.cfg.drafts = include
	}
}

// WithObserver receives an Event after every stage of every page.
func WithObserver(o Observer) Option {
	return func(g *Generator) {
		g.observer = o
	}
}

// WithBlockObserver receives every block classified by the native engine.
func WithBlockObserver(fn func(BlockEvent)) Option {
	return func(g *Generator) {
		g.blockObserver = fn
	}
}
