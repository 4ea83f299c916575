package mapdisplay

import (
	"html"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Build resolves one field value against cfg. contentLangCode is only used
// when cfg.Language follows the content.
func Build(fieldValue, contentLangCode string, cfg FormatterConfig) Descriptor {
	addressValue := html.EscapeString(fieldValue)

	d := resolveDisplay(contentLangCode, cfg)
	d.URLAddressToken = url.QueryEscape(addressValue)
	if cfg.IncludeText {
		d.AddressText = addressValue
	}
	if cfg.IncludeLink && cfg.LinkText.UsesAddress() {
		d.LinkText = addressValue
	}
	return d
}

// BuildAll builds one descriptor per item, preserving input order.
func BuildAll(items []FieldItem, contentLangCode string, cfg FormatterConfig) []Descriptor {
	if len(items) == 0 {
		return nil
	}
	out := make([]Descriptor, 0, len(items))
	for _, item := range items {
		out = append(out, Build(item.Value, contentLangCode, cfg))
	}
	return out
}

// resolveDisplay fills every field that does not depend on the address.
func resolveDisplay(contentLangCode string, cfg FormatterConfig) Descriptor {
	width := html.EscapeString(cfg.IframeWidth)
	height := html.EscapeString(cfg.IframeHeight)
	mapType := cfg.MapType.Normalize()

	d := Descriptor{
		IncludeEmbeddedMap: cfg.IncludeEmbeddedMap,
		IncludeStaticMap:   cfg.IncludeStaticMap,
		IncludeLink:        cfg.IncludeLink,
		IncludeText:        cfg.IncludeText,
		Width:              width,
		Height:             height,
		Zoom:               resolveZoom(cfg.ZoomLevel),
		InformationBubble:  cfg.InformationBubble,
		MapType:            mapType,
		StaticMapType:      mapType.StaticMapType(),
		LangCode:           resolveLangCode(cfg.Language, contentLangCode),
	}
	if cfg.IncludeStaticMap {
		d.StaticWidth = PixelSize(width)
		d.StaticHeight = PixelSize(height)
	}
	if cfg.IncludeLink && !cfg.LinkText.UsesAddress() {
		d.LinkText = html.EscapeString(cfg.LinkText.Text())
	}
	return d
}

func resolveZoom(zoom int) int {
	if zoom < MinZoomLevel || zoom > MaxZoomLevel {
		return DefaultZoomLevel
	}
	return zoom
}

func resolveLangCode(lang Language, contentLangCode string) string {
	if !lang.FollowsContent() {
		code := html.EscapeString(lang.Code())
		if code != FollowContentSentinel {
			return code
		}
	}
	content := strings.TrimSpace(contentLangCode)
	if undetermined(content) {
		return DefaultLangCode
	}
	return html.EscapeString(content)
}

// undetermined reports language codes the map service cannot interpret.
func undetermined(code string) bool {
	if code == "" || strings.EqualFold(code, "zxx") {
		return true
	}
	tag, err := language.Parse(code)
	if err != nil {
		return false
	}
	return tag == language.Und
}

// PixelSize reads the leading integer of a size string ("300", "300px"),
// the way static maps interpret the configured dimensions. Anything without
// leading digits, or a negative number, yields 0.
func PixelSize(raw string) int {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Fallback records a setting that Build will replace with a default.
type Fallback struct {
	Setting string
	Value   string
	Applied string
}

// Fallbacks lists the defaults Build applies for cfg and contentLangCode.
// Build itself never reports them; callers use this for diagnostics.
func Fallbacks(contentLangCode string, cfg FormatterConfig) []Fallback {
	var out []Fallback
	if !cfg.MapType.Valid() {
		out = append(out, Fallback{Setting: "map_type", Value: string(cfg.MapType), Applied: string(MapTypeMap)})
	}
	if resolveZoom(cfg.ZoomLevel) != cfg.ZoomLevel {
		out = append(out, Fallback{Setting: "zoom_level", Value: strconv.Itoa(cfg.ZoomLevel), Applied: strconv.Itoa(DefaultZoomLevel)})
	}
	if cfg.IncludeStaticMap {
		if PixelSize(cfg.IframeWidth) == 0 {
			out = append(out, Fallback{Setting: "iframe_width", Value: cfg.IframeWidth, Applied: "0"})
		}
		if PixelSize(cfg.IframeHeight) == 0 {
			out = append(out, Fallback{Setting: "iframe_height", Value: cfg.IframeHeight, Applied: "0"})
		}
	}
	if cfg.Language.FollowsContent() && undetermined(strings.TrimSpace(contentLangCode)) {
		out = append(out, Fallback{Setting: "langcode", Value: contentLangCode, Applied: DefaultLangCode})
	}
	return out
}
