package pipeline

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// rewrittenAttrs are the attributes holding URLs that follow the base path.
var rewrittenAttrs = map[string]bool{
	"href": true,
	"src":  true,
}

// RewriteBasePath prefixes root-relative href and src values with basePath
// so a site can be served from a sub-directory.
// If basePath is empty or "/", returns the HTML unchanged.
//
// Rewrites:
//   - "/path" to basePath + "path"
//
// Does NOT rewrite:
//   - protocol-relative URLs ("//host/x")
//   - relative paths, anchors and absolute URLs
//   - text content, including code samples that look like attributes
//
// Tags without a rewritten attribute are copied byte for byte.
func RewriteBasePath(htmlContent, basePath string) (string, error) {
	base := NormalizeBasePath(basePath)
	if base == "/" {
		return htmlContent, nil
	}

	var buf strings.Builder
	buf.Grow(len(htmlContent))

	z := html.NewTokenizer(strings.NewReader(htmlContent))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			return buf.String(), nil
		}

		// Raw must be copied: reading the token lowercases the buffer in place.
		raw := string(z.Raw())
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			buf.WriteString(raw)
			continue
		}

		tok := z.Token()
		if !rewriteToken(&tok, base) {
			buf.WriteString(raw)
			continue
		}
		buf.WriteString(tok.String())
	}
}

// NormalizeBasePath returns basePath with leading and trailing slashes.
// An empty base path becomes "/".
func NormalizeBasePath(basePath string) string {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return "/"
	}
	if !strings.HasPrefix(basePath, "/") && !strings.Contains(basePath, "://") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath
}

// rewriteToken updates URL attributes of tok and reports whether any changed.
func rewriteToken(tok *html.Token, base string) bool {
	changed := false
	for i, attr := range tok.Attr {
		if !rewrittenAttrs[attr.Key] || !isRootRelative(attr.Val) {
			continue
		}
		tok.Attr[i].Val = base + strings.TrimPrefix(attr.Val, "/")
		changed = true
	}
	return changed
}

// isRootRelative returns true for "/x" but not for "//x".
func isRootRelative(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//")
}
