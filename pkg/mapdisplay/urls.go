package mapdisplay

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	mapsBaseURL       = "https://maps.google.com/maps"
	staticMapsBaseURL = "https://maps.googleapis.com/maps/api/staticmap"
)

// EmbedURL returns the iframe source for the embedded map.
func (d Descriptor) EmbedURL() string {
	var b strings.Builder
	b.WriteString(mapsBaseURL)
	b.WriteString("?q=")
	b.WriteString(d.URLAddressToken)
	b.WriteString("&output=embed")
	d.writeViewParams(&b)
	if d.InformationBubble {
		b.WriteString("&iwloc=A")
	} else {
		b.WriteString("&iwloc=near")
	}
	return b.String()
}

// LinkURL returns the URL of the full map page.
func (d Descriptor) LinkURL() string {
	var b strings.Builder
	b.WriteString(mapsBaseURL)
	b.WriteString("?q=")
	b.WriteString(d.URLAddressToken)
	d.writeViewParams(&b)
	if d.InformationBubble {
		b.WriteString("&iwloc=A")
	}
	return b.String()
}

// StaticMapURL returns the Static Maps API image URL. apiKey is optional.
func (d Descriptor) StaticMapURL(apiKey string) string {
	var b strings.Builder
	b.WriteString(staticMapsBaseURL)
	fmt.Fprintf(&b, "?size=%dx%d", d.StaticWidth, d.StaticHeight)
	b.WriteString("&zoom=")
	b.WriteString(strconv.Itoa(d.Zoom))
	b.WriteString("&language=")
	b.WriteString(url.QueryEscape(d.LangCode))
	b.WriteString("&maptype=")
	b.WriteString(d.StaticMapType)
	b.WriteString("&markers=color:red%7C")
	b.WriteString(d.URLAddressToken)
	if key := strings.TrimSpace(apiKey); key != "" {
		b.WriteString("&key=")
		b.WriteString(url.QueryEscape(key))
	}
	return b.String()
}

// writeViewParams appends zoom, map type and language. The address token is
// already encoded and is written by the callers untouched.
func (d Descriptor) writeViewParams(b *strings.Builder) {
	b.WriteString("&z=")
	b.WriteString(strconv.Itoa(d.Zoom))
	b.WriteString("&t=")
	b.WriteString(url.QueryEscape(string(d.MapType.Normalize())))
	b.WriteString("&hl=")
	b.WriteString(url.QueryEscape(d.LangCode))
}
