package mapdisplay

import (
	"html"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	addressPolicyOnce sync.Once
	addressPolicy     *bluemonday.Policy

	lineBreakMarkup = regexp.MustCompile(`(?i)<br\s*/?>|</(?:p|div|li|address)\s*>`)
)

// ResolveAddress flattens rendered address markup into a single line: tags
// are stripped, entities decoded, and each non-blank line becomes one
// comma-separated part.
func ResolveAddress(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}
	withBreaks := lineBreakMarkup.ReplaceAllString(markup, "\n")
	text := html.UnescapeString(addressSanitizer().Sanitize(withBreaks))
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.Split(text, "\n")
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, ",")
}

// PatchAddressFields returns a copy of d whose address fields come from the
// externally rendered address markup. URLAddressToken encodes the decoded
// address. AddressText is the decoded address HTML-escaped again, not the
// decoded text itself, so every descriptor text field has the same escaping:
// "Smith &amp; Sons" yields AddressText "Smith &amp; Sons" where the plain
// resolved text would be "Smith & Sons".
func PatchAddressFields(d Descriptor, renderedAddressMarkup string) Descriptor {
	resolved := ResolveAddress(renderedAddressMarkup)
	d.AddressText = html.EscapeString(resolved)
	d.URLAddressToken = url.QueryEscape(resolved)
	return d
}

// Pending is a descriptor waiting for its address. It is produced by
// BuildPending and completed by Finalize once the address markup exists.
type Pending struct {
	descriptor     Descriptor
	useAddressLink bool
}

// BuildPending resolves everything except the address-derived fields.
func BuildPending(contentLangCode string, cfg FormatterConfig) Pending {
	return Pending{
		descriptor:     resolveDisplay(contentLangCode, cfg),
		useAddressLink: cfg.IncludeLink && cfg.LinkText.UsesAddress(),
	}
}

// Descriptor returns the partially filled descriptor.
func (p Pending) Descriptor() Descriptor {
	return p.descriptor
}

// Finalize fills the address fields from renderedAddressMarkup. A link label
// configured to mirror the address is resolved here as well.
func (p Pending) Finalize(renderedAddressMarkup string) Descriptor {
	d := PatchAddressFields(p.descriptor, renderedAddressMarkup)
	if p.useAddressLink {
		d.LinkText = d.AddressText
	}
	return d
}

func addressSanitizer() *bluemonday.Policy {
	addressPolicyOnce.Do(func() {
		addressPolicy = bluemonday.StrictPolicy()
	})
	return addressPolicy
}
