// Package formatter turns field values into rendered map output. The
// StringFormatter handles one-line address values; the AddressFormatter
// renders structured addresses first and builds the map from the result.
package formatter

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-simplegmap/pkg/logging"
	"github.com/goliatone/go-simplegmap/pkg/mapdisplay"
	"github.com/goliatone/go-simplegmap/pkg/render"
)

// Element is the output for one field item.
type Element struct {
	Descriptor mapdisplay.Descriptor
	// AddressMarkup is the rendered structured address the map was built
	// from. Empty for string values.
	AddressMarkup string
	Output        []byte
}

// Option configures a formatter.
type Option func(*base)

// WithLogger sets the logger fallbacks are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(b *base) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithConcurrency bounds how many items render at once. Values below 1 are
// ignored.
func WithConcurrency(limit int) Option {
	return func(b *base) {
		if limit > 0 {
			b.concurrency = limit
		}
	}
}

// WithRenderOptions sets the options passed to the renderer for every item.
func WithRenderOptions(options render.RenderOptions) Option {
	return func(b *base) {
		b.renderOptions = options
	}
}

type base struct {
	config        mapdisplay.FormatterConfig
	renderer      render.Renderer
	renderOptions render.RenderOptions
	logger        *slog.Logger
	concurrency   int
}

// DefaultConcurrency is the number of items rendered in parallel unless
// WithConcurrency says otherwise.
const DefaultConcurrency = 4

func newBase(cfg mapdisplay.FormatterConfig, renderer render.Renderer, options []Option) (base, error) {
	if renderer == nil {
		return base{}, errors.New("formatter: renderer required")
	}
	b := base{
		config:      cfg,
		renderer:    renderer,
		logger:      logging.Discard(),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&b)
		}
	}
	return b, nil
}

// Config returns the formatter configuration.
func (b base) Config() mapdisplay.FormatterConfig {
	return b.config
}

func (b base) logFallbacks(ctx context.Context, langcode string) {
	for _, fb := range mapdisplay.Fallbacks(langcode, b.config) {
		b.logger.DebugContext(ctx, "formatter setting fallback",
			slog.String("setting", fb.Setting),
			slog.String("value", fb.Value),
			slog.String("applied", fb.Applied),
		)
	}
}

func (b base) render(ctx context.Context, d mapdisplay.Descriptor) ([]byte, error) {
	return b.renderer.Render(ctx, d, b.renderOptions)
}

// each runs fn for every index in [0, n) and collects the elements in index
// order. The first error cancels the remaining items.
func (b base) each(ctx context.Context, n int, fn func(ctx context.Context, i int) (Element, error)) ([]Element, error) {
	elements := make([]Element, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i := range n {
		g.Go(func() error {
			el, err := fn(gctx, i)
			if err != nil {
				return err
			}
			elements[i] = el
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return elements, nil
}
