package formatter

import (
	"context"
	"fmt"

	"github.com/goliatone/go-simplegmap/pkg/mapdisplay"
	"github.com/goliatone/go-simplegmap/pkg/render"
)

// StringFormatter renders maps for plain text address values.
type StringFormatter struct {
	base
}

// NewStringFormatter returns a formatter rendering through renderer.
func NewStringFormatter(cfg mapdisplay.FormatterConfig, renderer render.Renderer, options ...Option) (*StringFormatter, error) {
	b, err := newBase(cfg, renderer, options)
	if err != nil {
		return nil, err
	}
	return &StringFormatter{base: b}, nil
}

// ViewElements builds and renders one element per item, in order.
func (f *StringFormatter) ViewElements(ctx context.Context, items []mapdisplay.FieldItem, langcode string) ([]Element, error) {
	if len(items) == 0 {
		return nil, nil
	}
	f.logFallbacks(ctx, langcode)

	descriptors := mapdisplay.BuildAll(items, langcode, f.config)
	return f.each(ctx, len(descriptors), func(ctx context.Context, delta int) (Element, error) {
		d := descriptors[delta]
		out, err := f.render(ctx, d)
		if err != nil {
			return Element{}, fmt.Errorf("formatter: render item %d: %w", delta, err)
		}
		return Element{Descriptor: d, Output: out}, nil
	})
}
