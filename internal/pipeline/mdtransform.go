package pipeline

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// byteOrderMark is the UTF-8 encoding of U+FEFF.
const byteOrderMark = "\uFEFF"

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// SourcePreprocessor cleans raw source files before compilation.
type SourcePreprocessor struct{}

// PreprocessMarkdown applies all transformations to prepare Markdown for conversion.
// Block segmentation splits on "\n\n", so Windows line endings must go first.
func (p *SourcePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = stripByteOrderMark(content)
	content = normalizeLineEndings(content)
	content = normalizeUnicode(content)
	return content
}

// stripByteOrderMark drops a leading UTF-8 BOM.
func stripByteOrderMark(content string) string {
	return strings.TrimPrefix(content, byteOrderMark)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// normalizeUnicode converts content to NFC so composed and decomposed
// accents produce identical output.
func normalizeUnicode(content string) string {
	if norm.NFC.IsNormalString(content) {
		return content
	}
	return norm.NFC.String(content)
}
