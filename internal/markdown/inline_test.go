package markdown

// Notes:
// - splitDelimiter/splitImages/splitLinks are tested through ParseInline except
//   where a single pass needs isolating (delimiter edge cases).
// - Underscores inside identifiers are split as italic on purpose; the test
//   pins that behavior so a change is deliberate.

import (
	"errors"
	"reflect"
	"testing"

	"github.com/alnah/go-md2site/internal/htmlnode"
)

// ---------------------------------------------------------------------------
// TestSplitDelimiter - Single delimiter pass
// ---------------------------------------------------------------------------

func TestSplitDelimiter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		marker string
		kind   SpanKind
		want   []Span
	}{
		{
			name:   "code in the middle",
			text:   "This is text with a `code block` word",
			marker: "`",
			kind:   SpanCode,
			want: []Span{
				{Kind: SpanPlain, Text: "This is text with a "},
				{Kind: SpanCode, Text: "code block"},
				{Kind: SpanPlain, Text: " word"},
			},
		},
		{
			name:   "delimiter at start drops empty plain part",
			text:   "`code` follows",
			marker: "`",
			kind:   SpanCode,
			want: []Span{
				{Kind: SpanCode, Text: "code"},
				{Kind: SpanPlain, Text: " follows"},
			},
		},
		{
			name:   "multiple pairs",
			text:   "This has `one` and then `two` code blocks",
			marker: "`",
			kind:   SpanCode,
			want: []Span{
				{Kind: SpanPlain, Text: "This has "},
				{Kind: SpanCode, Text: "one"},
				{Kind: SpanPlain, Text: " and then "},
				{Kind: SpanCode, Text: "two"},
				{Kind: SpanPlain, Text: " code blocks"},
			},
		},
		{
			name:   "bold",
			text:   "This has **bold** text",
			marker: "**",
			kind:   SpanBold,
			want: []Span{
				{Kind: SpanPlain, Text: "This has "},
				{Kind: SpanBold, Text: "bold"},
				{Kind: SpanPlain, Text: " text"},
			},
		},
		{
			name:   "empty pair keeps empty special span",
			text:   "a````b",
			marker: "`",
			kind:   SpanCode,
			want: []Span{
				{Kind: SpanPlain, Text: "a"},
				{Kind: SpanCode, Text: ""},
				{Kind: SpanCode, Text: ""},
				{Kind: SpanPlain, Text: "b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := splitDelimiter([]Span{{Kind: SpanPlain, Text: tt.text}}, tt.marker, tt.kind)
			if err != nil {
				t.Fatalf("splitDelimiter() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitDelimiter() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSplitDelimiter_SkipsNonPlain(t *testing.T) {
	t.Parallel()

	in := []Span{{Kind: SpanBold, Text: "a`b"}}
	got, err := splitDelimiter(in, "`", SpanCode)
	if err != nil {
		t.Fatalf("splitDelimiter() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Errorf("splitDelimiter() = %#v, want input unchanged", got)
	}
}

// ---------------------------------------------------------------------------
// TestParseInline - Full inline pipeline
// ---------------------------------------------------------------------------

func TestParseInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []Span
	}{
		{
			name: "plain text is one span",
			text: "just some words (and [brackets]) here",
			want: []Span{{Kind: SpanPlain, Text: "just some words (and [brackets]) here"}},
		},
		{
			name: "empty text is one empty plain span",
			text: "",
			want: []Span{{Kind: SpanPlain, Text: ""}},
		},
		{
			name: "bold and italic",
			text: "This is **bold** and _italic_.",
			want: []Span{
				{Kind: SpanPlain, Text: "This is "},
				{Kind: SpanBold, Text: "bold"},
				{Kind: SpanPlain, Text: " and "},
				{Kind: SpanItalic, Text: "italic"},
				{Kind: SpanPlain, Text: "."},
			},
		},
		{
			name: "image only",
			text: "![alt](http://x/y.png)",
			want: []Span{{Kind: SpanImage, Text: "alt", Target: "http://x/y.png"}},
		},
		{
			name: "two images with text",
			text: "This is text with an ![image](https://i.imgur.com/zjjcJKZ.png) and another ![second image](https://i.imgur.com/3elNhQu.png)",
			want: []Span{
				{Kind: SpanPlain, Text: "This is text with an "},
				{Kind: SpanImage, Text: "image", Target: "https://i.imgur.com/zjjcJKZ.png"},
				{Kind: SpanPlain, Text: " and another "},
				{Kind: SpanImage, Text: "second image", Target: "https://i.imgur.com/3elNhQu.png"},
			},
		},
		{
			name: "link with trailing text",
			text: "see [docs](https://example.com/docs) now",
			want: []Span{
				{Kind: SpanPlain, Text: "see "},
				{Kind: SpanLink, Text: "docs", Target: "https://example.com/docs"},
				{Kind: SpanPlain, Text: " now"},
			},
		},
		{
			name: "image and link are not confused",
			text: "![logo](/logo.png)[home](/)",
			want: []Span{
				{Kind: SpanImage, Text: "logo", Target: "/logo.png"},
				{Kind: SpanLink, Text: "home", Target: "/"},
			},
		},
		{
			name: "image with empty alt is not a link",
			text: "![](x.png)",
			want: []Span{{Kind: SpanPlain, Text: "![](x.png)"}},
		},
		{
			name: "link text inside bold is not parsed",
			text: "**[a](b)**",
			want: []Span{{Kind: SpanBold, Text: "[a](b)"}},
		},
		{
			name: "code content keeps underscores when split first",
			text: "`a` b",
			want: []Span{
				{Kind: SpanCode, Text: "a"},
				{Kind: SpanPlain, Text: " b"},
			},
		},
		{
			name: "snake_case is split as italic",
			text: "call snake_case_name now",
			want: []Span{
				{Kind: SpanPlain, Text: "call snake"},
				{Kind: SpanItalic, Text: "case"},
				{Kind: SpanPlain, Text: "name now"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseInline(tt.text)
			if err != nil {
				t.Fatalf("ParseInline(%q) unexpected error: %v", tt.text, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseInline(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseInline_Malformed - Unmatched delimiters fail
// ---------------------------------------------------------------------------

func TestParseInline_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{name: "single backtick", text: "a `b"},
		{name: "three backticks", text: "`a` `b"},
		{name: "unclosed bold", text: "**bold"},
		{name: "unclosed italic", text: "_italic"},
		{name: "odd underscores in identifiers", text: "my_var_name_x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseInline(tt.text)
			if !errors.Is(err, ErrMalformedMarkdown) {
				t.Errorf("ParseInline(%q) error = %v, want ErrMalformedMarkdown", tt.text, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseInline_Deterministic - Same input yields same spans
// ---------------------------------------------------------------------------

func TestParseInline_Deterministic(t *testing.T) {
	t.Parallel()

	text := "**a** _b_ `c` ![d](e) [f](g) h"
	first, err := ParseInline(text)
	if err != nil {
		t.Fatalf("ParseInline() unexpected error: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := ParseInline(text)
		if err != nil {
			t.Fatalf("ParseInline() unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("ParseInline() run %d = %#v, want %#v", i, again, first)
		}
	}
}

// ---------------------------------------------------------------------------
// TestSpan_Node - Span projection onto HTML nodes
// ---------------------------------------------------------------------------

func TestSpan_Node(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		span Span
		want string
	}{
		{name: "plain", span: Span{Kind: SpanPlain, Text: "This is a text node"}, want: "This is a text node"},
		{name: "bold", span: Span{Kind: SpanBold, Text: "b"}, want: "<b>b</b>"},
		{name: "italic", span: Span{Kind: SpanItalic, Text: "i"}, want: "<i>i</i>"},
		{name: "code", span: Span{Kind: SpanCode, Text: "x := 1"}, want: "<code>x := 1</code>"},
		{name: "link", span: Span{Kind: SpanLink, Text: "home", Target: "/"}, want: `<a href="/">home</a>`},
		{name: "image", span: Span{Kind: SpanImage, Text: "alt", Target: "/a.png"}, want: `<img src="/a.png" alt="alt"></img>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := htmlnode.Render(tt.span.Node())
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render(Node()) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpan_NodePlainIsTagless(t *testing.T) {
	t.Parallel()

	node := Span{Kind: SpanPlain, Text: "x"}.Node()
	if node.Tag() != "" {
		t.Errorf("Tag() = %q, want empty", node.Tag())
	}
}

func TestSpanKind_String(t *testing.T) {
	t.Parallel()

	want := map[SpanKind]string{
		SpanPlain:    "plain",
		SpanBold:     "bold",
		SpanItalic:   "italic",
		SpanCode:     "code",
		SpanLink:     "link",
		SpanImage:    "image",
		SpanKind(99): "unknown",
	}
	for kind, name := range want {
		if got := kind.String(); got != name {
			t.Errorf("SpanKind(%d).String() = %q, want %q", kind, got, name)
		}
	}
}
