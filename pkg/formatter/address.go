package formatter

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-simplegmap/pkg/address"
	"github.com/goliatone/go-simplegmap/pkg/mapdisplay"
	"github.com/goliatone/go-simplegmap/pkg/render"
)

// AddressFormatter renders maps for structured addresses. Each address is
// formatted to markup first; PostRender then completes the pending
// descriptor from that markup and returns the map output in its place.
type AddressFormatter struct {
	base
	addresses address.Formatter
}

// NewAddressFormatter returns a formatter that renders addresses with
// addresses and maps with renderer.
func NewAddressFormatter(cfg mapdisplay.FormatterConfig, renderer render.Renderer, addresses address.Formatter, options ...Option) (*AddressFormatter, error) {
	if addresses == nil {
		return nil, errors.New("formatter: address formatter required")
	}
	b, err := newBase(cfg, renderer, options)
	if err != nil {
		return nil, err
	}
	return &AddressFormatter{base: b, addresses: addresses}, nil
}

// ViewElements renders one element per address, in order.
func (f *AddressFormatter) ViewElements(ctx context.Context, items []address.Address, langcode string) ([]Element, error) {
	if len(items) == 0 {
		return nil, nil
	}
	f.logFallbacks(ctx, langcode)

	return f.each(ctx, len(items), func(ctx context.Context, delta int) (Element, error) {
		pending := f.Pending(langcode)

		markup, err := f.addresses.Format(ctx, items[delta], langcode)
		if err != nil {
			return Element{}, fmt.Errorf("formatter: format address %d: %w", delta, err)
		}

		d := pending.Finalize(markup)
		out, err := f.render(ctx, d)
		if err != nil {
			return Element{}, fmt.Errorf("formatter: render address %d: %w", delta, err)
		}
		return Element{Descriptor: d, AddressMarkup: markup, Output: out}, nil
	})
}

// Pending resolves the address-independent part of the map for langcode.
// Hosts that render addresses themselves pair it with PostRender.
func (f *AddressFormatter) Pending(langcode string) mapdisplay.Pending {
	return mapdisplay.BuildPending(langcode, f.config)
}

// PostRender completes pending from already rendered address markup and
// returns the map output that replaces it.
func (f *AddressFormatter) PostRender(ctx context.Context, markup string, pending mapdisplay.Pending) ([]byte, error) {
	out, err := f.render(ctx, pending.Finalize(markup))
	if err != nil {
		return nil, fmt.Errorf("formatter: post render: %w", err)
	}
	return out, nil
}
