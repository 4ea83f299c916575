// Package html renders map descriptors through a user-supplied pongo2
// template. No markup ships with the package; callers point it at their own
// template set.
//
// Descriptor text fields (width, height, linkText, addressText, langCode)
// arrive HTML-escaped and must be printed with the |safe filter. The URL
// fields are plain and rely on autoescaping.
package html

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-simplegmap/pkg/mapdisplay"
	"github.com/goliatone/go-simplegmap/pkg/render"
	"github.com/goliatone/go-simplegmap/pkg/render/template"
	"github.com/goliatone/go-simplegmap/pkg/render/template/gotemplate"
)

const (
	// RendererName is the registry name of the HTML renderer.
	RendererName = "html"
	// DefaultTemplateName is rendered unless a theme or option overrides it.
	DefaultTemplateName = "simple-gmap-output"
	// ThemeTemplateKey is the manifest template key a theme uses to replace
	// the map template.
	ThemeTemplateKey = "gmap.output"
	// ThemeStylesheetKey is the asset key of an optional theme stylesheet.
	ThemeStylesheetKey = "gmap.stylesheet"
)

// Renderer renders descriptors to HTML.
type Renderer struct {
	templates    template.TemplateRenderer
	templateName string
	themes       *themeResolver
}

var _ render.Renderer = (*Renderer)(nil)

// New builds a Renderer. A template engine, an fs.FS or a base directory is
// required.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateName: DefaultTemplateName}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	templates := cfg.renderer
	if templates == nil {
		if cfg.templatesFS == nil && cfg.baseDir == "" {
			return nil, errors.New("html renderer: template renderer, templates fs or base dir required")
		}
		var engineOpts []gotemplate.Option
		if cfg.templatesFS != nil {
			engineOpts = append(engineOpts, gotemplate.WithFS(cfg.templatesFS))
		}
		if cfg.baseDir != "" {
			engineOpts = append(engineOpts, gotemplate.WithBaseDir(cfg.baseDir))
		}
		engine, err := gotemplate.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template engine: %w", err)
		}
		templates = engine
	}

	return &Renderer{
		templates:    templates,
		templateName: cfg.templateName,
		themes:       newThemeResolver(cfg.selector),
	}, nil
}

func (r *Renderer) Name() string { return RendererName }

func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render executes the map template with the descriptor view. The template
// name comes from the selected theme when it defines ThemeTemplateKey.
func (r *Renderer) Render(ctx context.Context, descriptor mapdisplay.Descriptor, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view := render.NewView(descriptor, options)
	templateName := r.templateName

	selected, err := r.themes.resolve(options.ThemeName, options.ThemeVariant)
	if err != nil {
		return nil, fmt.Errorf("html renderer: %w", err)
	}
	if selected != nil {
		view.Theme = &selected.context
		if selected.template != "" {
			templateName = selected.template
		}
	}

	out, err := r.templates.RenderTemplate(templateName, view)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render %q: %w", templateName, err)
	}
	return []byte(out), nil
}
