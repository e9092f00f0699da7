package pipeline

// Notes:
// - Goldmark output is asserted with substrings only; exact markup depends
//   on the goldmark and chroma versions.

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/markdown"
)

// ---------------------------------------------------------------------------
// TestNativeConverter
// ---------------------------------------------------------------------------

func TestNativeConverter_ToHTML(t *testing.T) {
	t.Parallel()

	c := NewNativeConverter(nil)
	got, err := c.ToHTML(context.Background(), "# Hi\n\nThis is **bold** and _italic_.")
	if err != nil {
		t.Fatalf("ToHTML() unexpected error: %v", err)
	}

	want := "<div><h1>Hi</h1><p>This is <b>bold</b> and <i>italic</i>.</p></div>"
	if got != want {
		t.Errorf("ToHTML() = %q, want %q", got, want)
	}
}

func TestNativeConverter_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantErr   error
		wantStage string
	}{
		{
			name:      "malformed inline markup",
			input:     "text with **unclosed bold",
			wantErr:   markdown.ErrMalformedMarkdown,
			wantStage: StageCompile,
		},
		{
			name:      "empty document",
			input:     "\n\n",
			wantErr:   htmlnode.ErrStructural,
			wantStage: StageRender,
		},
	}

	c := NewNativeConverter(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.ToHTML(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ToHTML() error = %v, want %v", err, tt.wantErr)
			}
			if !strings.HasPrefix(err.Error(), tt.wantStage) {
				t.Errorf("error %q should start with stage %q", err, tt.wantStage)
			}
			if got != "" {
				t.Errorf("ToHTML() returned partial output %q", got)
			}
		})
	}
}

func TestNativeConverter_Observer(t *testing.T) {
	t.Parallel()

	var count int
	c := NewNativeConverter(func(int, string, markdown.Classification) { count++ })

	if _, err := c.ToHTML(context.Background(), "a\n\nb\n\nc"); err != nil {
		t.Fatalf("ToHTML() unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("observer called %d times, want 3", count)
	}
}

func TestNativeConverter_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewNativeConverter(nil).ToHTML(ctx, "# Hi")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestGoldmarkConverter
// ---------------------------------------------------------------------------

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
	}{
		{
			name:         "heading with id",
			input:        "# Hello",
			wantContains: []string{`<h1 id="hello">Hello</h1>`},
		},
		{
			name:         "emphasis",
			input:        "**bold** and *italic*",
			wantContains: []string{"<strong>bold</strong>", "<em>italic</em>"},
		},
		{
			name:         "table",
			input:        "| a | b |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:         "highlighted code",
			input:        "```go\nfunc main() {}\n```",
			wantContains: []string{`class="chroma"`},
		},
	}

	c := NewGoldmarkConverter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() unexpected error: %v", err)
			}
			if strings.Contains(got, "<html") {
				t.Errorf("ToHTML() should return a fragment, got %q", got)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML() missing %q\ngot: %s", want, got)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter().ToHTML(ctx, "# Hi")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}
