package settings

import (
	"strings"

	"github.com/spf13/cast"
)

// FromMap reads a loose settings bag as handed over by a host platform, where
// checkboxes arrive as "1"/"0", ints or bools and numbers may be strings.
// Missing keys and values that cannot be coerced keep their defaults.
func FromMap(bag map[string]any) Settings {
	s := Defaults()
	if len(bag) == 0 {
		return s
	}

	setBool(bag, "include_map", &s.IncludeMap)
	setBool(bag, "include_static_map", &s.IncludeStaticMap)
	setBool(bag, "include_link", &s.IncludeLink)
	setBool(bag, "include_text", &s.IncludeText)
	setBool(bag, "information_bubble", &s.InformationBubble)

	setString(bag, "iframe_width", &s.IframeWidth)
	setString(bag, "iframe_height", &s.IframeHeight)
	setString(bag, "link_text", &s.LinkText)
	setString(bag, "map_type", &s.MapType)
	setString(bag, "langcode", &s.Langcode)

	if raw, ok := bag["zoom_level"]; ok && raw != nil {
		if zoom, err := cast.ToIntE(raw); err == nil {
			s.ZoomLevel = zoom
		}
	}
	return s
}

// Map returns s as a settings bag using the storage keys.
func (s Settings) Map() map[string]any {
	return map[string]any{
		"include_map":        s.IncludeMap,
		"include_static_map": s.IncludeStaticMap,
		"include_link":       s.IncludeLink,
		"include_text":       s.IncludeText,
		"iframe_width":       s.IframeWidth,
		"iframe_height":      s.IframeHeight,
		"zoom_level":         s.ZoomLevel,
		"information_bubble": s.InformationBubble,
		"link_text":          s.LinkText,
		"map_type":           s.MapType,
		"langcode":           s.Langcode,
	}
}

func setBool(bag map[string]any, key string, dest *bool) {
	raw, ok := bag[key]
	if !ok || raw == nil {
		return
	}
	if str, isString := raw.(string); isString && strings.TrimSpace(str) == "" {
		*dest = false
		return
	}
	if value, err := cast.ToBoolE(raw); err == nil {
		*dest = value
	}
}

func setString(bag map[string]any, key string, dest *string) {
	raw, ok := bag[key]
	if !ok || raw == nil {
		return
	}
	if value, err := cast.ToStringE(raw); err == nil {
		*dest = value
	}
}
