package pipeline

import (
	"context"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Stylesheet is one named CSS source placed in a page head.
type Stylesheet struct {
	Name string // Reported in the data-style attribute; may be empty
	CSS  string
}

// StyleInjector places stylesheets into a templated page.
type StyleInjector interface {
	InjectStyles(ctx context.Context, page string, sheets []Stylesheet) (string, error)
}

// HeadInjection inserts <style> blocks into the page head.
//
// Placement follows the page template:
//   - before the first </head> end tag
//   - without one, in a new <head> before the <body> start tag
//   - without either, at the start of the page
//
// The page is scanned with the HTML tokenizer, so "</head>" inside comments,
// scripts or attribute values is not mistaken for the end of the head.
// All other bytes are copied unchanged.
type HeadInjection struct{}

// InjectStyles returns page with a <style> block per non-empty sheet, in order.
func (h *HeadInjection) InjectStyles(ctx context.Context, page string, sheets []Stylesheet) (string, error) {
	block := styleBlocks(sheets)
	if block == "" {
		return page, nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf strings.Builder
	buf.Grow(len(page) + len(block) + len("<head></head>"))

	injected := false
	z := html.NewTokenizer(strings.NewReader(page))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			break
		}

		raw := string(z.Raw())
		if !injected {
			switch name, _ := z.TagName(); {
			case tt == html.EndTagToken && string(name) == "head":
				buf.WriteString(block)
				injected = true
			case tt == html.StartTagToken && string(name) == "body":
				buf.WriteString("<head>" + block + "</head>")
				injected = true
			}
		}
		buf.WriteString(raw)
	}

	if !injected {
		return block + buf.String(), nil
	}
	return buf.String(), nil
}

// styleBlocks renders the non-empty sheets as consecutive <style> elements.
func styleBlocks(sheets []Stylesheet) string {
	var b strings.Builder
	for _, s := range sheets {
		if strings.TrimSpace(s.CSS) == "" {
			continue
		}
		b.WriteString("<style")
		if s.Name != "" {
			b.WriteString(` data-style="` + html.EscapeString(s.Name) + `"`)
		}
		b.WriteString(">")
		b.WriteString(escapeStyleText(s.CSS))
		b.WriteString("</style>")
	}
	return b.String()
}

// escapeStyleText keeps CSS from ending the <style> element early.
func escapeStyleText(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
