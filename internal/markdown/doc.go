// Package markdown compiles a small Markdown dialect into an htmlnode tree.
//
// Compilation runs in three stages:
//
//  1. Segment splits a document into blocks on blank lines.
//  2. Classify assigns each block a kind (paragraph, heading, code, quote,
//     unordered list, ordered list) from its textual shape.
//  3. A per-kind builder produces the block's subtree, calling ParseInline for
//     inline content (bold, italic, code, links, images).
//
// CompileDocument runs all three and wraps the blocks in a root <div>.
// The only failure is an unmatched inline delimiter (ErrMalformedMarkdown),
// which aborts the whole document.
//
// The dialect is deliberately small: no nested lists, tables, footnotes or
// escaping. Underscores inside words are treated as italic delimiters.
package markdown
