package html

import (
	"io/fs"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-simplegmap/pkg/render/template"
)

// Option configures the HTML renderer.
type Option func(*config)

type config struct {
	renderer     template.TemplateRenderer
	templatesFS  fs.FS
	baseDir      string
	templateName string
	selector     theme.ThemeSelector
}

// WithTemplateRenderer uses an existing template engine instead of building
// one from WithTemplatesFS or WithBaseDir.
func WithTemplateRenderer(renderer template.TemplateRenderer) Option {
	return func(cfg *config) {
		cfg.renderer = renderer
	}
}

// WithTemplatesFS loads map templates from files.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templatesFS = files
	}
}

// WithBaseDir loads map templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithTemplateName overrides DefaultTemplateName.
func WithTemplateName(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.templateName = trimmed
		}
	}
}

// WithThemeSelector resolves themes per render. Themes may replace the map
// template and contribute tokens.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(cfg *config) {
		cfg.selector = selector
	}
}
