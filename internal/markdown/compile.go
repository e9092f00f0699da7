package markdown

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/alnah/go-md2site/internal/htmlnode"
)

// RootTag is the tag of the container wrapping a compiled document.
const RootTag = "div"

// BlockObserver receives each block after it is classified.
// index is the block's position in the document.
type BlockObserver func(index int, block string, class Classification)

// Compiler turns Markdown documents into HTML trees.
// The zero value is ready to use.
type Compiler struct {
	// Observer, if set, is called once per block before it is compiled.
	Observer BlockObserver
}

// CompileDocument compiles markdown with a zero Compiler.
func CompileDocument(markdown string) (*htmlnode.Parent, error) {
	var c Compiler
	return c.Compile(markdown)
}

// Compile segments, classifies and compiles every block of markdown and
// returns them as children of a root <div>, in document order.
// The first inline error aborts compilation; no partial tree is returned.
func (c *Compiler) Compile(markdown string) (*htmlnode.Parent, error) {
	blocks := Segment(markdown)
	children := make([]htmlnode.Node, 0, len(blocks))

	for i, block := range blocks {
		class := Classify(block)
		if c.Observer != nil {
			c.Observer(i, block, class)
		}

		node, err := CompileBlock(block, class)
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i+1, class.Kind, err)
		}
		children = append(children, node)
	}

	return htmlnode.NewParent(RootTag, children), nil
}

// CompileBlock builds the HTML subtree for a single classified block.
func CompileBlock(block string, class Classification) (htmlnode.Node, error) {
	switch class.Kind {
	case BlockHeading:
		return buildHeading(block)
	case BlockCode:
		return buildCode(block), nil
	case BlockQuote:
		return buildQuote(block)
	case BlockUnorderedList:
		return buildUnorderedList(block)
	case BlockOrderedList:
		return buildOrderedList(block)
	case BlockParagraph:
		return buildParagraph(block)
	default:
		return nil, fmt.Errorf("unknown block kind %d", class.Kind)
	}
}

// buildHeading produces <hN> from "#... text". Levels above 6 are clamped.
func buildHeading(block string) (htmlnode.Node, error) {
	marker := countLeading(block, '#')
	level := min(marker, MaxHeadingLevel)

	text := strings.TrimLeftFunc(block[marker:], unicode.IsSpace)
	children, err := TextToNodes(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(fmt.Sprintf("h%d", level), children), nil
}

// buildCode produces <pre><code> holding the literal text between the fences.
func buildCode(block string) htmlnode.Node {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	start, end := -1, -1
	for i, line := range lines {
		if !strings.HasPrefix(line, codeFence) {
			continue
		}
		if start == -1 {
			start = i
			continue
		}
		end = i
		break
	}

	var content []string
	switch {
	case start != -1 && end != -1:
		content = lines[start+1 : end]
	case len(lines) > 2:
		content = lines[1 : len(lines)-1]
	}

	code := htmlnode.NewLeaf("code", strings.Join(content, "\n")+"\n")
	return htmlnode.NewParent("pre", []htmlnode.Node{code})
}

// buildQuote produces <blockquote> with the '>' markers stripped.
func buildQuote(block string) (htmlnode.Node, error) {
	lines := strings.Split(block, "\n")
	clean := make([]string, 0, len(lines))
	for _, line := range lines {
		if !strings.HasPrefix(line, ">") {
			continue
		}
		clean = append(clean, strings.TrimLeft(line[1:], " "))
	}

	children, err := TextToNodes(strings.Join(clean, "\n"))
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("blockquote", children), nil
}

// buildUnorderedList produces <ul> with one <li> per "- " line.
func buildUnorderedList(block string) (htmlnode.Node, error) {
	return buildList("ul", block, func(_ int, line string) string {
		return strings.TrimPrefix(line, "- ")
	})
}

// buildOrderedList produces <ol> with one <li> per "N. " line.
func buildOrderedList(block string) (htmlnode.Node, error) {
	return buildList("ol", block, func(i int, line string) string {
		return strings.TrimPrefix(line, orderedMarker(i+1))
	})
}

func buildList(tag, block string, stripMarker func(int, string) string) (htmlnode.Node, error) {
	lines := strings.Split(block, "\n")
	items := make([]htmlnode.Node, 0, len(lines))
	for i, line := range lines {
		text := strings.Trim(stripMarker(i, line), " ")
		children, err := TextToNodes(text)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, htmlnode.NewParent("li", children))
	}
	return htmlnode.NewParent(tag, items), nil
}

// buildParagraph produces <p>, joining the block's lines with single spaces.
func buildParagraph(block string) (htmlnode.Node, error) {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	children, err := TextToNodes(strings.Join(lines, " "))
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("p", children), nil
}
