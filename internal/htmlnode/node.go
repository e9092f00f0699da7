package htmlnode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStructural indicates a node cannot be rendered because the tree is malformed.
var ErrStructural = errors.New("invalid HTML node structure")

// Attr is a single HTML attribute.
type Attr struct {
	Key string
	Val string
}

// Attrs is an ordered attribute list. Rendering follows slice order.
type Attrs []Attr

// Get returns the value of the first attribute named key.
func (a Attrs) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// writeTo renders each attribute as ` key="val"`.
func (a Attrs) writeTo(b *strings.Builder) {
	for _, attr := range a {
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(attr.Val)
		b.WriteByte('"')
	}
}

// Node is an element or text in the output tree.
// The interface is sealed: only *Leaf and *Parent implement it.
type Node interface {
	Tag() string
	Attrs() Attrs
	render(b *strings.Builder) error
}

// Leaf is a node with a text value and no children.
type Leaf struct {
	tag   string
	text  string
	attrs Attrs
}

// NewLeaf creates a leaf node. An empty tag produces a raw text node.
func NewLeaf(tag, text string, attrs ...Attr) *Leaf {
	return &Leaf{tag: tag, text: text, attrs: cloneAttrs(attrs)}
}

// Text creates a tagless leaf that renders as raw text.
func Text(text string) *Leaf {
	return &Leaf{text: text}
}

// Tag returns the leaf's tag name, or "" for raw text.
func (l *Leaf) Tag() string { return l.tag }

// Value returns the leaf's text.
func (l *Leaf) Value() string { return l.text }

// Attrs returns a copy of the leaf's attributes.
func (l *Leaf) Attrs() Attrs { return cloneAttrs(l.attrs) }

func (l *Leaf) render(b *strings.Builder) error {
	if l.tag == "" {
		b.WriteString(l.text)
		return nil
	}
	b.WriteByte('<')
	b.WriteString(l.tag)
	l.attrs.writeTo(b)
	b.WriteByte('>')
	b.WriteString(l.text)
	b.WriteString("</")
	b.WriteString(l.tag)
	b.WriteByte('>')
	return nil
}

// Parent is an element node that owns an ordered list of children.
type Parent struct {
	tag      string
	children []Node
	attrs    Attrs
}

// NewParent creates a parent node. The children slice is copied, so later
// changes to the caller's slice do not affect the node.
func NewParent(tag string, children []Node, attrs ...Attr) *Parent {
	frozen := make([]Node, len(children))
	copy(frozen, children)
	return &Parent{tag: tag, children: frozen, attrs: cloneAttrs(attrs)}
}

// Tag returns the parent's tag name.
func (p *Parent) Tag() string { return p.tag }

// Attrs returns a copy of the parent's attributes.
func (p *Parent) Attrs() Attrs { return cloneAttrs(p.attrs) }

// Children returns a copy of the parent's child list.
func (p *Parent) Children() []Node {
	out := make([]Node, len(p.children))
	copy(out, p.children)
	return out
}

// Len returns the number of children.
func (p *Parent) Len() int { return len(p.children) }

func (p *Parent) render(b *strings.Builder) error {
	if p.tag == "" {
		return fmt.Errorf("%w: parent node has no tag", ErrStructural)
	}
	if len(p.children) == 0 {
		return fmt.Errorf("%w: <%s> has no children", ErrStructural, p.tag)
	}

	b.WriteByte('<')
	b.WriteString(p.tag)
	p.attrs.writeTo(b)
	b.WriteByte('>')
	for _, child := range p.children {
		if child == nil {
			return fmt.Errorf("%w: <%s> has a nil child", ErrStructural, p.tag)
		}
		if err := child.render(b); err != nil {
			return err
		}
	}
	b.WriteString("</")
	b.WriteString(p.tag)
	b.WriteByte('>')
	return nil
}

func cloneAttrs(attrs Attrs) Attrs {
	if len(attrs) == 0 {
		return nil
	}
	out := make(Attrs, len(attrs))
	copy(out, attrs)
	return out
}

// Compile-time interface checks.
var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Parent)(nil)
)
