package markdown

import (
	"strconv"
	"strings"
)

// BlockKind identifies the structural role of a block.
type BlockKind uint8

// Block kinds. Paragraph is the zero value and the fallback.
const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockCode
	BlockQuote
	BlockUnorderedList
	BlockOrderedList
)

// MaxHeadingLevel is the deepest heading level (<h6>).
const MaxHeadingLevel = 6

// codeFence opens and closes a code block.
const codeFence = "```"

// String returns the lowercase name of the kind.
func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockHeading:
		return "heading"
	case BlockCode:
		return "code"
	case BlockQuote:
		return "quote"
	case BlockUnorderedList:
		return "unordered_list"
	case BlockOrderedList:
		return "ordered_list"
	default:
		return "unknown"
	}
}

// Classification is the kind of a block. Level is set for headings only.
type Classification struct {
	Kind  BlockKind
	Level int
}

// Segment splits a document into blocks separated by blank lines.
// Each line of a block is trimmed; blocks left empty are dropped.
func Segment(document string) []string {
	chunks := strings.Split(document, "\n\n")
	blocks := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		lines := strings.Split(chunk, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSpace(line)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return blocks
}

// Classify inspects a block and returns its kind. The first matching rule
// wins: heading, code, quote, unordered list, ordered list, then paragraph.
func Classify(block string) Classification {
	if level := headingLevel(block); level > 0 {
		return Classification{Kind: BlockHeading, Level: level}
	}

	if strings.HasPrefix(block, codeFence) && strings.HasSuffix(block, codeFence) {
		return Classification{Kind: BlockCode}
	}

	lines := strings.Split(block, "\n")

	if allLines(lines, func(line string) bool { return strings.HasPrefix(line, ">") }) {
		return Classification{Kind: BlockQuote}
	}

	if allLines(lines, func(line string) bool { return strings.HasPrefix(line, "- ") }) {
		return Classification{Kind: BlockUnorderedList}
	}

	if isOrderedList(lines) {
		return Classification{Kind: BlockOrderedList}
	}

	return Classification{Kind: BlockParagraph}
}

// headingLevel returns the heading level of block, or 0 if it is not a heading.
// A heading is 1-6 '#' followed by a space and at least one more character.
func headingLevel(block string) int {
	n := countLeading(block, '#')
	if n < 1 || n > MaxHeadingLevel {
		return 0
	}
	if len(block) < n+2 || block[n] != ' ' {
		return 0
	}
	return n
}

// isOrderedList reports whether line i starts with "{i+1}. " for every line.
// Numbering must start at 1 without gaps.
func isOrderedList(lines []string) bool {
	for i, line := range lines {
		if !strings.HasPrefix(line, orderedMarker(i+1)) {
			return false
		}
	}
	return true
}

// orderedMarker returns the list marker for item n, e.g. "3. ".
func orderedMarker(n int) string {
	return strconv.Itoa(n) + ". "
}

func allLines(lines []string, pred func(string) bool) bool {
	for _, line := range lines {
		if !pred(line) {
			return false
		}
	}
	return true
}

func countLeading(s string, c byte) int {
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	return n
}
