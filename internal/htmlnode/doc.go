// Package htmlnode models the HTML output tree produced by the Markdown compiler.
//
// A tree is built from two node kinds:
//   - Leaf: an optional tag wrapping a text value. A tagless leaf renders as raw text.
//   - Parent: a required tag wrapping an ordered list of child nodes.
//
// Attributes are kept in insertion order so rendering is deterministic.
// Rendering never escapes text or attribute values and never emits self-closing tags.
package htmlnode
