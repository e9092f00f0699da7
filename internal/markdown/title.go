package markdown

import (
	"errors"
	"strings"
)

// ErrNoTitleFound indicates a document has no "# " title line.
var ErrNoTitleFound = errors.New("no title found")

// ExtractTitle returns the text of the first line that starts with "# "
// once surrounding whitespace is removed. The title itself is trimmed too,
// so "#   Title" yields "Title".
func ExtractTitle(markdown string) (string, error) {
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if title, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(title), nil
		}
	}
	return "", ErrNoTitleFound
}
