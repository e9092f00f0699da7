package pipeline

// Notes:
// - Stylesheets are site configuration and are trusted; escaping only keeps a
//   sheet from closing its own <style> element.
// - Placement is checked against page shapes the templates produce: a full
//   document, a body-only template and a bare fragment.

import (
	"context"
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestHeadInjection_InjectStyles - Placement
// ---------------------------------------------------------------------------

func TestHeadInjection_InjectStyles(t *testing.T) {
	t.Parallel()

	site := Stylesheet{Name: "default", CSS: "h1{color:teal}"}

	tests := []struct {
		name   string
		page   string
		sheets []Stylesheet
		want   string
	}{
		{
			name:   "no sheets leaves page unchanged",
			page:   "<html><head></head><body><h1>T</h1></body></html>",
			sheets: nil,
			want:   "<html><head></head><body><h1>T</h1></body></html>",
		},
		{
			name:   "blank sheets are skipped",
			page:   "<html><head></head><body></body></html>",
			sheets: []Stylesheet{{Name: "empty", CSS: "  \n"}},
			want:   "<html><head></head><body></body></html>",
		},
		{
			name:   "before closing head",
			page:   "<html><head><title>T</title></head><body></body></html>",
			sheets: []Stylesheet{site},
			want:   `<html><head><title>T</title><style data-style="default">h1{color:teal}</style></head><body></body></html>`,
		},
		{
			name:   "site then page sheet in order",
			page:   "<head></head>",
			sheets: []Stylesheet{site, {Name: "post", CSS: "p{margin:0}"}},
			want:   `<head><style data-style="default">h1{color:teal}</style><style data-style="post">p{margin:0}</style></head>`,
		},
		{
			name:   "unnamed sheet has no attribute",
			page:   "<head></head>",
			sheets: []Stylesheet{{CSS: "a{}"}},
			want:   "<head><style>a{}</style></head>",
		},
		{
			name:   "uppercase head keeps its bytes",
			page:   "<HTML><HEAD></HEAD><BODY></BODY></HTML>",
			sheets: []Stylesheet{site},
			want:   `<HTML><HEAD><style data-style="default">h1{color:teal}</style></HEAD><BODY></BODY></HTML>`,
		},
		{
			name:   "head end inside comment is ignored",
			page:   "<html><head><!-- </head> --></head><body></body></html>",
			sheets: []Stylesheet{site},
			want:   `<html><head><!-- </head> --><style data-style="default">h1{color:teal}</style></head><body></body></html>`,
		},
		{
			name:   "head end inside script is ignored",
			page:   `<head><script>var s = "</head>";</script></head>`,
			sheets: []Stylesheet{site},
			want:   `<head><script>var s = "</head>";</script><style data-style="default">h1{color:teal}</style></head>`,
		},
		{
			name:   "body-only template gets a head",
			page:   `<html><body class="post"><div></div></body></html>`,
			sheets: []Stylesheet{site},
			want:   `<html><head><style data-style="default">h1{color:teal}</style></head><body class="post"><div></div></body></html>`,
		},
		{
			name:   "fragment is prefixed",
			page:   "<div><p>x</p></div>",
			sheets: []Stylesheet{site},
			want:   `<style data-style="default">h1{color:teal}</style><div><p>x</p></div>`,
		},
		{
			name:   "closing sequences in css are escaped",
			page:   "<head></head>",
			sheets: []Stylesheet{{Name: "x", CSS: "</style><script>alert(1)</script>"}},
			want:   `<head><style data-style="x"><\/style><script>alert(1)<\/script></style></head>`,
		},
		{
			name:   "name is attribute-escaped",
			page:   "<head></head>",
			sheets: []Stylesheet{{Name: `a"b`, CSS: "p{}"}},
			want:   `<head><style data-style="a&#34;b">p{}</style></head>`,
		},
	}

	injector := &HeadInjection{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := injector.InjectStyles(context.Background(), tt.page, tt.sheets)
			if err != nil {
				t.Fatalf("InjectStyles() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("InjectStyles() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestHeadInjection_InjectStyles_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	injector := &HeadInjection{}
	_, err := injector.InjectStyles(ctx, "<head></head>", []Stylesheet{{CSS: "p{}"}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("InjectStyles() error = %v, want context.Canceled", err)
	}

	// Nothing to inject does not consult the context.
	if got, err := injector.InjectStyles(ctx, "<p></p>", nil); err != nil || got != "<p></p>" {
		t.Errorf("InjectStyles() = %q, %v; want page unchanged", got, err)
	}
}
