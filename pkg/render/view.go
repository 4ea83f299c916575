package render

import "github.com/goliatone/go-simplegmap/pkg/mapdisplay"

// View is the payload renderers hand to templates and JSON consumers: the
// descriptor fields plus the map URLs built from them.
type View struct {
	mapdisplay.Descriptor

	EmbedURL     string `json:"embedUrl,omitempty"`
	StaticMapURL string `json:"staticMapUrl,omitempty"`
	LinkURL      string `json:"linkUrl,omitempty"`

	Theme *ThemeContext  `json:"theme,omitempty"`
	Data  map[string]any `json:"data,omitempty"`
}

// ThemeContext exposes the resolved theme to templates. CSSVarsStyle is the
// tokens rendered as an inline style attribute value.
type ThemeContext struct {
	Name         string            `json:"name"`
	Variant      string            `json:"variant,omitempty"`
	Tokens       map[string]string `json:"tokens,omitempty"`
	CSSVars      map[string]string `json:"cssVars,omitempty"`
	CSSVarsStyle string            `json:"cssVarsStyle,omitempty"`
	Stylesheet   string            `json:"stylesheet,omitempty"`
}

// NewView builds the view for d. URLs are only set for the parts the
// descriptor includes.
func NewView(d mapdisplay.Descriptor, options RenderOptions) View {
	view := View{
		Descriptor: d,
		Data:       options.Data,
	}
	if d.IncludeEmbeddedMap {
		view.EmbedURL = d.EmbedURL()
	}
	if d.IncludeStaticMap {
		view.StaticMapURL = d.StaticMapURL(options.StaticMapAPIKey)
	}
	if d.IncludeLink {
		view.LinkURL = d.LinkURL()
	}
	return view
}

// TemplateContext returns the view keyed by JSON field name with numbers kept
// as int, so templates print pixel sizes and zoom as plain integers.
func (v View) TemplateContext() map[string]any {
	d := v.Descriptor
	ctx := map[string]any{
		"includeEmbeddedMap": d.IncludeEmbeddedMap,
		"includeStaticMap":   d.IncludeStaticMap,
		"includeLink":        d.IncludeLink,
		"includeText":        d.IncludeText,
		"width":              d.Width,
		"height":             d.Height,
		"urlAddressToken":    d.URLAddressToken,
		"zoom":               d.Zoom,
		"informationBubble":  d.InformationBubble,
		"linkText":           d.LinkText,
		"addressText":        d.AddressText,
		"mapType":            string(d.MapType),
		"staticMapType":      d.StaticMapType,
		"langCode":           d.LangCode,
		"staticWidth":        d.StaticWidth,
		"staticHeight":       d.StaticHeight,
		"embedUrl":           v.EmbedURL,
		"staticMapUrl":       v.StaticMapURL,
		"linkUrl":            v.LinkURL,
	}
	if v.Theme != nil {
		ctx["theme"] = map[string]any{
			"name":         v.Theme.Name,
			"variant":      v.Theme.Variant,
			"tokens":       v.Theme.Tokens,
			"cssVars":      v.Theme.CSSVars,
			"cssVarsStyle": v.Theme.CSSVarsStyle,
			"stylesheet":   v.Theme.Stylesheet,
		}
	}
	if v.Data != nil {
		ctx["data"] = v.Data
	}
	return ctx
}
