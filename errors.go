package md2site

import (
	"errors"

	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/markdown"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrInvalidEngine  = errors.New("invalid engine")
	ErrHTMLConversion = pipeline.ErrHTMLConversion

	// Content errors raised by the native engine.
	ErrMalformedMarkdown = markdown.ErrMalformedMarkdown
	ErrStructural        = htmlnode.ErrStructural
	ErrNoTitleFound      = markdown.ErrNoTitleFound
	ErrFrontMatter       = markdown.ErrFrontMatter

	// Template errors.
	ErrInvalidTemplate = pipeline.ErrInvalidTemplate

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
