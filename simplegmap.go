// Package simplegmap turns address values into Google Maps output: an
// embedded map, a static map image, a link to the full map and the address
// text. It re-exports the pieces most callers need.
//
//	cfg := simplegmap.DefaultConfig()
//	cfg.IncludeLink = true
//	d := simplegmap.Build("1600 Amphitheatre Pkwy", "en", cfg)
//	fmt.Println(d.EmbedURL(), d.LinkURL())
package simplegmap

import (
	"github.com/goliatone/go-simplegmap/pkg/address"
	"github.com/goliatone/go-simplegmap/pkg/formatter"
	"github.com/goliatone/go-simplegmap/pkg/mapdisplay"
	"github.com/goliatone/go-simplegmap/pkg/render"
	"github.com/goliatone/go-simplegmap/pkg/renderers/html"
	"github.com/goliatone/go-simplegmap/pkg/settings"
)

// FormatterConfig aliases mapdisplay.FormatterConfig.
type FormatterConfig = mapdisplay.FormatterConfig

// Descriptor aliases mapdisplay.Descriptor, the view model for one value.
type Descriptor = mapdisplay.Descriptor

// FieldItem aliases mapdisplay.FieldItem.
type FieldItem = mapdisplay.FieldItem

// Pending aliases mapdisplay.Pending, a descriptor awaiting its address.
type Pending = mapdisplay.Pending

// Settings aliases settings.Settings, the stored form of a FormatterConfig.
type Settings = settings.Settings

// Address aliases address.Address.
type Address = address.Address

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// DefaultConfig returns the formatter defaults.
func DefaultConfig() FormatterConfig {
	return mapdisplay.DefaultConfig()
}

// LinkTextUseAddress makes the map link mirror the address text.
func LinkTextUseAddress() mapdisplay.LinkText {
	return mapdisplay.LinkTextUseAddress()
}

// LanguageFollowContent makes the map language follow the content language.
func LanguageFollowContent() mapdisplay.Language {
	return mapdisplay.LanguageFollowContent()
}

// Build resolves one field value. contentLangCode is used when the
// configured language follows the content.
func Build(fieldValue, contentLangCode string, cfg FormatterConfig) Descriptor {
	return mapdisplay.Build(fieldValue, contentLangCode, cfg)
}

// BuildPending starts the two-phase flow for values whose address text is
// rendered elsewhere; complete it with Pending.Finalize.
func BuildPending(contentLangCode string, cfg FormatterConfig) Pending {
	return mapdisplay.BuildPending(contentLangCode, cfg)
}

// NewRegistry returns a renderer registry with the JSON renderer registered.
// Pass html options to register the HTML renderer as well.
func NewRegistry(htmlOptions ...html.Option) (*render.Registry, error) {
	registry := render.NewRegistry()
	registry.MustRegister(render.NewJSONRenderer(""))
	if len(htmlOptions) == 0 {
		return registry, nil
	}
	renderer, err := html.New(htmlOptions...)
	if err != nil {
		return nil, err
	}
	if err := registry.Register(renderer); err != nil {
		return nil, err
	}
	return registry, nil
}

// NewStringFormatter aliases formatter.NewStringFormatter.
func NewStringFormatter(cfg FormatterConfig, renderer render.Renderer, options ...formatter.Option) (*formatter.StringFormatter, error) {
	return formatter.NewStringFormatter(cfg, renderer, options...)
}

// NewAddressFormatter aliases formatter.NewAddressFormatter.
func NewAddressFormatter(cfg FormatterConfig, renderer render.Renderer, addresses address.Formatter, options ...formatter.Option) (*formatter.AddressFormatter, error) {
	return formatter.NewAddressFormatter(cfg, renderer, addresses, options...)
}
