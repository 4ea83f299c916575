package address

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-simplegmap/pkg/render/template"
)

// DefaultTemplate renders one line per span separated by <br> tags.
const DefaultTemplate = `<p class="address" translate="no">` +
	`{% for line in lines %}<span>{{ line }}</span>{% if not forloop.Last %}<br>` + "\n" +
	`{% endif %}{% endfor %}</p>`

// Formatter renders a structured address to markup.
type Formatter interface {
	Format(ctx context.Context, addr Address, langcode string) (string, error)
}

// TemplateFormatter renders addresses through a template engine. The
// template receives "address", "lines" and "langcode".
type TemplateFormatter struct {
	templates template.TemplateRenderer
	layout    string
}

var _ Formatter = (*TemplateFormatter)(nil)

// NewTemplateFormatter returns a formatter rendering layout with templates.
// layout is a template name or inline template content; empty means
// DefaultTemplate.
func NewTemplateFormatter(templates template.TemplateRenderer, layout string) (*TemplateFormatter, error) {
	if templates == nil {
		return nil, errors.New("address: template renderer required")
	}
	layout = strings.TrimSpace(layout)
	if layout == "" {
		layout = DefaultTemplate
	}
	return &TemplateFormatter{templates: templates, layout: layout}, nil
}

// Format renders addr. Empty addresses render to an empty string.
func (f *TemplateFormatter) Format(ctx context.Context, addr Address, langcode string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	lines := addr.Lines()
	if len(lines) == 0 {
		return "", nil
	}

	out, err := f.templates.Render(f.layout, map[string]any{
		"address":  addr,
		"lines":    lines,
		"langcode": langcode,
	})
	if err != nil {
		return "", fmt.Errorf("address: format: %w", err)
	}
	return out, nil
}
