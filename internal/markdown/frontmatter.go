package markdown

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// ErrFrontMatter indicates the document's front matter could not be parsed.
var ErrFrontMatter = errors.New("invalid front matter")

// FrontMatter holds the page metadata recognized at the top of a document.
type FrontMatter struct {
	Title    string         `yaml:"title" toml:"title"`
	Template string         `yaml:"template" toml:"template"`
	Style    string         `yaml:"style" toml:"style"`
	Draft    bool           `yaml:"draft" toml:"draft"`
	Extra    map[string]any `yaml:",inline" toml:"-"`
}

// SplitFrontMatter separates optional YAML ("---") or TOML ("+++") front
// matter from the Markdown body. Documents without front matter are returned
// unchanged with a zero FrontMatter.
func SplitFrontMatter(document string) (FrontMatter, string, error) {
	var meta FrontMatter

	if !hasFrontMatter(document) {
		return meta, document, nil
	}

	body, err := frontmatter.Parse(strings.NewReader(document), &meta)
	if err != nil {
		return FrontMatter{}, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return meta, string(body), nil
}

// hasFrontMatter reports whether the first line is a front matter delimiter.
func hasFrontMatter(document string) bool {
	first, _, _ := strings.Cut(document, "\n")
	first = strings.TrimSpace(first)
	return first == "---" || first == "+++"
}
