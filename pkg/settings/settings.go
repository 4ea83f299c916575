// Package settings holds the stored form of the map formatter settings and
// the ways to obtain them: defaults, loose settings bags handed over by a
// host platform, and YAML files layered with environment overrides.
//
// Settings keeps the storage keys (include_map, zoom_level, ...) and the raw
// sentinel strings. Config converts it into the typed
// mapdisplay.FormatterConfig used for rendering.
package settings

import (
	"github.com/goliatone/go-simplegmap/pkg/mapdisplay"
)

// Settings mirrors the persisted formatter settings.
type Settings struct {
	IncludeMap        bool   `koanf:"include_map" yaml:"include_map" json:"include_map"`
	IncludeStaticMap  bool   `koanf:"include_static_map" yaml:"include_static_map" json:"include_static_map"`
	IncludeLink       bool   `koanf:"include_link" yaml:"include_link" json:"include_link"`
	IncludeText       bool   `koanf:"include_text" yaml:"include_text" json:"include_text"`
	IframeWidth       string `koanf:"iframe_width" yaml:"iframe_width" json:"iframe_width" validate:"required"`
	IframeHeight      string `koanf:"iframe_height" yaml:"iframe_height" json:"iframe_height" validate:"required"`
	ZoomLevel         int    `koanf:"zoom_level" yaml:"zoom_level" json:"zoom_level" validate:"min=1,max=20"`
	InformationBubble bool   `koanf:"information_bubble" yaml:"information_bubble" json:"information_bubble"`
	LinkText          string `koanf:"link_text" yaml:"link_text" json:"link_text"`
	MapType           string `koanf:"map_type" yaml:"map_type" json:"map_type" validate:"oneof=m k h p"`
	Langcode          string `koanf:"langcode" yaml:"langcode" json:"langcode" validate:"langcode"`
}

// Defaults returns the stored defaults of a freshly configured formatter.
func Defaults() Settings {
	return FromConfig(mapdisplay.DefaultConfig())
}

// Config converts s into a typed formatter configuration. Sentinel strings
// become their tagged choices and unknown map types fall back to the default.
func (s Settings) Config() mapdisplay.FormatterConfig {
	return mapdisplay.FormatterConfig{
		IncludeEmbeddedMap: s.IncludeMap,
		IncludeStaticMap:   s.IncludeStaticMap,
		IncludeLink:        s.IncludeLink,
		IncludeText:        s.IncludeText,
		IframeWidth:        s.IframeWidth,
		IframeHeight:       s.IframeHeight,
		ZoomLevel:          s.ZoomLevel,
		InformationBubble:  s.InformationBubble,
		LinkText:           mapdisplay.ParseLinkText(s.LinkText),
		MapType:            mapdisplay.ParseMapType(s.MapType),
		Language:           mapdisplay.ParseLanguage(s.Langcode),
	}
}

// FromConfig returns the stored form of cfg.
func FromConfig(cfg mapdisplay.FormatterConfig) Settings {
	return Settings{
		IncludeMap:        cfg.IncludeEmbeddedMap,
		IncludeStaticMap:  cfg.IncludeStaticMap,
		IncludeLink:       cfg.IncludeLink,
		IncludeText:       cfg.IncludeText,
		IframeWidth:       cfg.IframeWidth,
		IframeHeight:      cfg.IframeHeight,
		ZoomLevel:         cfg.ZoomLevel,
		InformationBubble: cfg.InformationBubble,
		LinkText:          cfg.LinkText.String(),
		MapType:           string(cfg.MapType),
		Langcode:          cfg.Language.String(),
	}
}
