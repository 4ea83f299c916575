package gotemplate

import (
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-simplegmap/pkg/mapdisplay"
)

func registerMapFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("address_line") {
		_ = pongo2.RegisterFilter("address_line", filterAddressLine)
	}
	if !pongo2.FilterExists("css_size") {
		_ = pongo2.RegisterFilter("css_size", filterCSSSize)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterAddressLine flattens multi-line address markup into one
// comma-separated line.
func filterAddressLine(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(mapdisplay.ResolveAddress(in.String())), nil
}

// filterCSSSize appends "px" to bare integer sizes so the iframe width and
// height can be reused in inline styles. Other sizes pass through.
func filterCSSSize(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	size := strings.TrimSpace(in.String())
	if size == "" {
		return pongo2.AsValue(""), nil
	}
	for _, r := range size {
		if r < '0' || r > '9' {
			return pongo2.AsValue(size), nil
		}
	}
	return pongo2.AsValue(size + "px"), nil
}
