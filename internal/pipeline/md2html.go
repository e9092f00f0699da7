package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/markdown"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// Stage names used to wrap conversion errors.
const (
	StageCompile = "compiling markdown"
	StageRender  = "rendering html"
)

// HTMLConverter abstracts Markdown to HTML conversion.
// Implementations return an HTML fragment, not a full document.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// Compile-time interface checks.
var (
	_ HTMLConverter = (*NativeConverter)(nil)
	_ HTMLConverter = (*GoldmarkConverter)(nil)
)

// NativeConverter converts Markdown with the built-in block compiler.
// Output is the serialized root <div>.
type NativeConverter struct {
	compiler markdown.Compiler
}

// NewNativeConverter creates a NativeConverter. observer may be nil.
func NewNativeConverter(observer markdown.BlockObserver) *NativeConverter {
	return &NativeConverter{compiler: markdown.Compiler{Observer: observer}}
}

// ToHTML compiles content and serializes the resulting tree.
func (c *NativeConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	root, err := c.compiler.Compile(content)
	if err != nil {
		return "", fmt.Errorf("%s: %w", StageCompile, err)
	}

	out, err := htmlnode.Render(root)
	if err != nil {
		return "", fmt.Errorf("%s: %w", StageRender, err)
	}
	return out, nil
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and syntax highlighting.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes so site styles control colors
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Anchor targets for in-page links
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// WithUnsafe() is not used: raw HTML in Markdown is omitted.
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%s: %w: %v", StageRender, ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
