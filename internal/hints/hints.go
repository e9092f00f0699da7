// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2site/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-md2site) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-md2site") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForContentDirectory returns hints when the content directory is missing.
func ForContentDirectory(dir string) string {
	return format("create " + dir + " or pass --content <dir>")
}

// ForAssetNotFound returns hints for missing templates and styles.
func ForAssetNotFound(available []string) string {
	if len(available) == 0 {
		return format("set --assets to a directory with templates/ and styles/")
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForMalformedMarkdown returns hints for unbalanced inline delimiters.
func ForMalformedMarkdown() string {
	return formatHints([]string{
		"every **, _ and ` needs a closing match in the same block",
		"use --engine goldmark for full CommonMark",
	})
}

// ForNoTitle returns hints for pages without a level-one heading.
func ForNoTitle() string {
	return format(`start a line with "# " or set "title" in front matter`)
}

// ForInvalidTemplate returns hints for templates missing placeholders.
func ForInvalidTemplate() string {
	return format("templates must contain {{ Content }} and usually {{ Title }}")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
