// Package pipeline implements the page generation pipeline around the
// Markdown compiler.
//
// This package handles the stages surrounding HTML conversion:
//   - Source preprocessing (BOM, line endings, Unicode normalization)
//   - Markdown to HTML conversion via the native compiler or Goldmark
//   - Page template substitution
//   - Base path rewriting of root-relative links
//   - CSS injection into the final page
//
// Title extraction and front matter live in internal/markdown. The root
// md2site package chains these stages for a single document, and the CLI
// runs it over a content directory.
package pipeline
