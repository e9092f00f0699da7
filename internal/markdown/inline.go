package markdown

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-md2site/internal/htmlnode"
)

// ErrMalformedMarkdown indicates an inline delimiter without a matching partner.
var ErrMalformedMarkdown = errors.New("malformed markdown")

// Inline delimiters, applied in this order.
var delimiters = []struct {
	marker string
	kind   SpanKind
}{
	{"**", SpanBold},
	{"_", SpanItalic},
	{"`", SpanCode},
}

var (
	// ![alt](url) with non-empty alt and url.
	imagePattern = regexp.MustCompile(`!\[([^\]]+)\]\(([^)]+)\)`)

	// [text](url). Matches preceded by "!" are rejected in splitLinks.
	linkPattern = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)
)

// ParseInline splits inline Markdown into spans.
// Text without any delimiter yields a single plain span holding the input.
// Empty text yields one empty plain span, so an item with no text (a bare ">"
// quote line, an empty list item) still renders its element instead of
// failing as a childless parent.
// Returns ErrMalformedMarkdown if a bold, italic or code delimiter is unmatched.
func ParseInline(text string) ([]Span, error) {
	if text == "" {
		return []Span{{Kind: SpanPlain}}, nil
	}

	spans := []Span{{Kind: SpanPlain, Text: text}}
	for _, d := range delimiters {
		var err error
		spans, err = splitDelimiter(spans, d.marker, d.kind)
		if err != nil {
			return nil, err
		}
	}
	spans = splitImages(spans)
	spans = splitLinks(spans)
	return spans, nil
}

// splitDelimiter splits every plain span on marker. Odd-indexed parts
// become spans of kind; even-indexed parts stay plain and are dropped when empty.
func splitDelimiter(spans []Span, marker string, kind SpanKind) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != SpanPlain {
			out = append(out, s)
			continue
		}

		parts := strings.Split(s.Text, marker)
		if len(parts)%2 == 0 {
			return nil, fmt.Errorf("%w: unmatched delimiter %q", ErrMalformedMarkdown, marker)
		}

		for i, part := range parts {
			if i%2 == 0 {
				if part != "" {
					out = append(out, Span{Kind: SpanPlain, Text: part})
				}
				continue
			}
			out = append(out, Span{Kind: kind, Text: part})
		}
	}
	return out, nil
}

// splitImages extracts ![alt](url) from plain spans.
func splitImages(spans []Span) []Span {
	return splitMatches(spans, SpanImage, func(text string) [][]int {
		return imagePattern.FindAllStringSubmatchIndex(text, -1)
	})
}

// splitLinks extracts [text](url) from plain spans, skipping image syntax.
func splitLinks(spans []Span) []Span {
	return splitMatches(spans, SpanLink, func(text string) [][]int {
		all := linkPattern.FindAllStringSubmatchIndex(text, -1)
		kept := all[:0]
		for _, m := range all {
			if m[0] > 0 && text[m[0]-1] == '!' {
				continue
			}
			kept = append(kept, m)
		}
		return kept
	})
}

// splitMatches replaces each match in plain spans with a span of kind,
// keeping the text around matches as plain spans.
func splitMatches(spans []Span, kind SpanKind, find func(string) [][]int) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != SpanPlain {
			out = append(out, s)
			continue
		}

		matches := find(s.Text)
		if len(matches) == 0 {
			out = append(out, s)
			continue
		}

		pos := 0
		for _, m := range matches {
			if m[0] > pos {
				out = append(out, Span{Kind: SpanPlain, Text: s.Text[pos:m[0]]})
			}
			out = append(out, Span{
				Kind:   kind,
				Text:   s.Text[m[2]:m[3]],
				Target: s.Text[m[4]:m[5]],
			})
			pos = m[1]
		}
		if pos < len(s.Text) {
			out = append(out, Span{Kind: SpanPlain, Text: s.Text[pos:]})
		}
	}
	return out
}

// TextToNodes parses inline text and projects the spans onto HTML nodes.
func TextToNodes(text string) ([]htmlnode.Node, error) {
	spans, err := ParseInline(text)
	if err != nil {
		return nil, err
	}
	return Nodes(spans), nil
}
