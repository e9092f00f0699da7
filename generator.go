package md2site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/markdown"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourcePreprocessor)(nil)
	_ pipeline.StyleInjector        = (*pipeline.HeadInjection)(nil)
)

// generatorConfig holds option values before they are resolved.
type generatorConfig struct {
	engine       Engine
	assetPath    string
	templateName string
	styleInput   string
	basePath     string
	drafts       bool
}

// Generator orchestrates the Markdown-to-page pipeline.
// Create with NewGenerator() and call Generate() for each document.
type Generator struct {
	cfg               generatorConfig
	assetLoader       AssetLoader
	publicAssetLoader AssetLoader // from WithAssetLoader
	preprocessor      pipeline.MarkdownPreprocessor
	htmlConverter     pipeline.HTMLConverter
	styleInjector     pipeline.StyleInjector
	observer          Observer
	blockObserver     func(BlockEvent)
	style             pipeline.Stylesheet

	mu        sync.Mutex
	templates map[string]*pipeline.PageTemplate
	styles    map[string]string
}

// NewGenerator creates a Generator with default configuration.
// Returns error if the engine is unknown or an asset cannot be loaded.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg: generatorConfig{
			engine:       EngineNative,
			templateName: DefaultTemplate,
		},
		preprocessor:  &pipeline.SourcePreprocessor{},
		styleInjector: &pipeline.HeadInjection{},
		observer:      nopObserver{},
		templates:     make(map[string]*pipeline.PageTemplate),
		styles:        make(map[string]string),
	}

	for _, opt := range opts {
		opt(g)
	}

	if err := g.resolveAssetLoader(); err != nil {
		return nil, err
	}

	engine, err := ParseEngine(string(g.cfg.engine))
	if err != nil {
		return nil, err
	}
	g.cfg.engine = engine
	if engine == EngineGoldmark {
		g.htmlConverter = pipeline.NewGoldmarkConverter()
	} else {
		g.htmlConverter = pipeline.NewNativeConverter(nil)
	}

	if err := g.resolveStyle(); err != nil {
		return nil, err
	}

	// Fail fast on a broken default template instead of on the first page.
	if _, err := g.template(g.cfg.templateName); err != nil {
		return nil, err
	}

	return g, nil
}

// Engine returns the converter in use.
func (g *Generator) Engine() Engine {
	return g.cfg.engine
}

// Generate runs the full pipeline for one document.
// Drafts are returned with an empty HTML when drafts are excluded.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (g *Generator) Generate(ctx context.Context, input Input) (page *Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if strings.TrimSpace(input.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}

	// Preprocess markdown
	done := g.stage(input.Source, StagePreprocess)
	content := g.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if err := ctx.Err(); err != nil {
		return nil, done(err)
	}
	done(nil)

	// Split front matter
	done = g.stage(input.Source, StageFrontMatter)
	meta, body, err := markdown.SplitFrontMatter(content)
	if err != nil {
		return nil, done(fmt.Errorf("parsing front matter: %w", err))
	}
	done(nil)

	page = &Page{
		Source:      input.Source,
		FrontMatter: toFrontMatter(meta),
	}
	if meta.Draft && !g.cfg.drafts {
		return page, nil
	}

	// Resolve title
	done = g.stage(input.Source, StageTitle)
	page.Title, err = resolveTitle(input.Title, meta.Title, body)
	if err != nil {
		return nil, done(fmt.Errorf("extracting title: %w", err))
	}
	done(nil)

	// Convert to HTML
	done = g.stage(input.Source, StageConvert)
	page.Content, err = g.converterFor(input.Source).ToHTML(ctx, body)
	if err != nil {
		return nil, done(err)
	}
	done(nil)

	// Apply template and inject styles
	done = g.stage(input.Source, StageTemplate)
	templateName := g.cfg.templateName
	if meta.Template != "" {
		templateName = meta.Template
	}
	tmpl, err := g.template(templateName)
	if err != nil {
		return nil, done(fmt.Errorf("applying template: %w", err))
	}
	sheets, err := g.stylesheets(meta.Style)
	if err != nil {
		return nil, done(fmt.Errorf("applying template: %w", err))
	}
	htmlContent, err := g.styleInjector.InjectStyles(ctx, tmpl.Apply(page.Title, page.Content), sheets)
	if err != nil {
		return nil, done(fmt.Errorf("applying template: injecting styles: %w", err))
	}
	done(nil)

	// Rewrite root-relative links
	done = g.stage(input.Source, StageRewrite)
	htmlContent, err = pipeline.RewriteBasePath(htmlContent, g.cfg.basePath)
	if err != nil {
		return nil, done(fmt.Errorf("rewriting base path: %w", err))
	}
	done(nil)

	page.HTML = htmlContent
	return page, nil
}

// stage starts timing a stage and returns a function that reports it.
// The returned function passes err through for inline use.
func (g *Generator) stage(source string, s Stage) func(error) error {
	start := time.Now()
	return func(err error) error {
		g.observer.Observe(Event{
			Source:   source,
			Stage:    s,
			Duration: time.Since(start),
			Err:      err,
		})
		return err
	}
}

// converterFor returns the HTML converter for one document. The native
// engine gets a per-document converter when blocks are observed, so events
// carry the source.
func (g *Generator) converterFor(source string) pipeline.HTMLConverter {
	if g.blockObserver == nil || g.cfg.engine != EngineNative {
		return g.htmlConverter
	}
	return pipeline.NewNativeConverter(func(index int, _ string, class markdown.Classification) {
		g.blockObserver(BlockEvent{
			Source: source,
			Index:  index,
			Kind:   class.Kind.String(),
			Level:  class.Level,
		})
	})
}

// template returns the parsed page template for name, loading it once.
func (g *Generator) template(name string) (*pipeline.PageTemplate, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if tmpl, ok := g.templates[name]; ok {
		return tmpl, nil
	}

	body, err := g.assetLoader.LoadTemplate(name)
	if err != nil {
		return nil, fmt.Errorf("loading template %q: %w", name, err)
	}
	tmpl, err := pipeline.NewPageTemplate(name, body)
	if err != nil {
		return nil, err
	}
	g.templates[name] = tmpl
	return tmpl, nil
}

// stylesheets returns the site style followed by the page's own style.
// Page styles are loaded by name once and shared between documents.
func (g *Generator) stylesheets(pageStyle string) ([]pipeline.Stylesheet, error) {
	sheets := []pipeline.Stylesheet{g.style}
	if pageStyle == "" || pageStyle == g.cfg.styleInput {
		return sheets, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	css, ok := g.styles[pageStyle]
	if !ok {
		var err error
		if css, err = g.assetLoader.LoadStyle(pageStyle); err != nil {
			return nil, fmt.Errorf("loading style %q: %w", pageStyle, err)
		}
		g.styles[pageStyle] = css
	}
	return append(sheets, pipeline.Stylesheet{Name: pageStyle, CSS: css}), nil
}

// resolveAssetLoader picks the public loader, a path-based resolver, or the
// embedded defaults, in that order.
func (g *Generator) resolveAssetLoader() error {
	if g.publicAssetLoader != nil {
		g.assetLoader = g.publicAssetLoader
		return nil
	}
	loader, err := NewAssetLoader(g.cfg.assetPath)
	if err != nil {
		return err
	}
	g.assetLoader = loader
	return nil
}

// resolveStyle resolves the style input (name or path) to CSS content.
func (g *Generator) resolveStyle() error {
	input := g.cfg.styleInput
	if input == "" {
		return nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		g.style = pipeline.Stylesheet{Name: name, CSS: string(content)}
		return nil
	}

	css, err := g.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	g.style = pipeline.Stylesheet{Name: input, CSS: css}
	return nil
}

// resolveTitle applies title precedence: explicit input, front matter,
// then the first level-one heading of the body.
func resolveTitle(explicit, fromMeta, body string) (string, error) {
	if t := strings.TrimSpace(explicit); t != "" {
		return t, nil
	}
	if t := strings.TrimSpace(fromMeta); t != "" {
		return t, nil
	}
	return markdown.ExtractTitle(body)
}

// toFrontMatter converts internal front matter to the public type.
func toFrontMatter(m markdown.FrontMatter) FrontMatter {
	return FrontMatter{
		Title:    m.Title,
		Template: m.Template,
		Style:    m.Style,
		Draft:    m.Draft,
		Extra:    m.Extra,
	}
}
