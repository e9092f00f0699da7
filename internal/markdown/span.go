package markdown

import "github.com/alnah/go-md2site/internal/htmlnode"

// SpanKind identifies the formatting of an inline span.
type SpanKind uint8

// Inline span kinds.
const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
	SpanLink
	SpanImage
)

// String returns the lowercase name of the kind.
func (k SpanKind) String() string {
	switch k {
	case SpanPlain:
		return "plain"
	case SpanBold:
		return "bold"
	case SpanItalic:
		return "italic"
	case SpanCode:
		return "code"
	case SpanLink:
		return "link"
	case SpanImage:
		return "image"
	default:
		return "unknown"
	}
}

// Span is a run of inline text with a single formatting kind.
// Target holds the URL for links and images and is empty otherwise.
type Span struct {
	Kind   SpanKind
	Text   string
	Target string
}

// Node projects the span onto an HTML node.
func (s Span) Node() htmlnode.Node {
	switch s.Kind {
	case SpanBold:
		return htmlnode.NewLeaf("b", s.Text)
	case SpanItalic:
		return htmlnode.NewLeaf("i", s.Text)
	case SpanCode:
		return htmlnode.NewLeaf("code", s.Text)
	case SpanLink:
		return htmlnode.NewLeaf("a", s.Text, htmlnode.Attr{Key: "href", Val: s.Target})
	case SpanImage:
		return htmlnode.NewLeaf("img", "",
			htmlnode.Attr{Key: "src", Val: s.Target},
			htmlnode.Attr{Key: "alt", Val: s.Text},
		)
	default:
		return htmlnode.Text(s.Text)
	}
}

// Nodes projects each span in order.
func Nodes(spans []Span) []htmlnode.Node {
	nodes := make([]htmlnode.Node, 0, len(spans))
	for _, s := range spans {
		nodes = append(nodes, s.Node())
	}
	return nodes
}
