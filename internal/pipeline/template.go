package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// Template placeholders substituted into every page.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// ErrInvalidTemplate indicates a page template cannot hold page content.
var ErrInvalidTemplate = errors.New("invalid page template")

// PageTemplate wraps converted content in a full HTML page.
type PageTemplate struct {
	name string
	body string
}

// NewPageTemplate validates body and returns a reusable template.
// name is only used in error messages.
func NewPageTemplate(name, body string) (*PageTemplate, error) {
	if !strings.Contains(body, ContentPlaceholder) {
		return nil, fmt.Errorf("%w: %q has no %s placeholder", ErrInvalidTemplate, name, ContentPlaceholder)
	}
	return &PageTemplate{name: name, body: body}, nil
}

// Name returns the template name.
func (t *PageTemplate) Name() string {
	return t.name
}

// Apply replaces every placeholder occurrence. Substituted values are not
// scanned again, so a title containing "{{ Content }}" stays literal.
func (t *PageTemplate) Apply(title, content string) string {
	r := strings.NewReplacer(
		TitlePlaceholder, title,
		ContentPlaceholder, content,
	)
	return r.Replace(t.body)
}
