package main

import (
	"errors"
	"os"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/hints"
)

// Exit codes for md2site CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or assets
	ExitIO      = 3 // File not found, permission denied
	ExitContent = 4 // A document could not be converted
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content errors (exit 4)
	if errors.Is(err, ErrBuildFailed) ||
		errors.Is(err, md2site.ErrMalformedMarkdown) ||
		errors.Is(err, md2site.ErrNoTitleFound) ||
		errors.Is(err, md2site.ErrStructural) ||
		errors.Is(err, md2site.ErrFrontMatter) ||
		errors.Is(err, md2site.ErrEmptyMarkdown) {
		return ExitContent
	}

	// Usage/config/asset errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) ||
		errors.Is(err, md2site.ErrInvalidEngine) ||
		errors.Is(err, md2site.ErrInvalidTemplate) ||
		errors.Is(err, md2site.ErrStyleNotFound) ||
		errors.Is(err, md2site.ErrTemplateNotFound) ||
		errors.Is(err, md2site.ErrInvalidAssetPath) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrNotDirectory) ||
		errors.Is(err, fileutil.ErrSameDir) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWritePage) ||
		errors.Is(err, ErrNoMarkdownFiles) {
		return ExitIO
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "" when none applies.
func hintFor(err error) string {
	switch {
	case errors.Is(err, md2site.ErrMalformedMarkdown):
		return hints.ForMalformedMarkdown()
	case errors.Is(err, md2site.ErrNoTitleFound):
		return hints.ForNoTitle()
	case errors.Is(err, md2site.ErrInvalidTemplate):
		return hints.ForInvalidTemplate()
	case errors.Is(err, md2site.ErrStyleNotFound),
		errors.Is(err, md2site.ErrTemplateNotFound):
		return hints.ForAssetNotFound(nil)
	case errors.Is(err, ErrWritePage):
		return hints.ForOutputDirectory()
	}
	return ""
}
