package htmlnode

import (
	"fmt"
	"strings"
)

// Render serializes a node and its descendants depth-first.
// Returns ErrStructural if any parent in the tree lacks a tag or children.
func Render(n Node) (string, error) {
	if n == nil {
		return "", fmt.Errorf("%w: nil node", ErrStructural)
	}
	var b strings.Builder
	if err := n.render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
