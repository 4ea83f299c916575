// Package address holds structured postal addresses and the Formatter seam
// that renders them to markup before a map is built from the result.
package address

import (
	"strings"
)

// Address is a structured postal address as entered in an address field.
type Address struct {
	Organization       string `json:"organization,omitempty" yaml:"organization"`
	GivenName          string `json:"givenName,omitempty" yaml:"given_name"`
	FamilyName         string `json:"familyName,omitempty" yaml:"family_name"`
	AddressLine1       string `json:"addressLine1,omitempty" yaml:"address_line1"`
	AddressLine2       string `json:"addressLine2,omitempty" yaml:"address_line2"`
	Locality           string `json:"locality,omitempty" yaml:"locality"`
	AdministrativeArea string `json:"administrativeArea,omitempty" yaml:"administrative_area"`
	PostalCode         string `json:"postalCode,omitempty" yaml:"postal_code"`
	CountryCode        string `json:"countryCode,omitempty" yaml:"country_code"`
}

// IsEmpty reports whether no address part is set.
func (a Address) IsEmpty() bool {
	return len(a.Lines()) == 0
}

// Name joins the given and family names.
func (a Address) Name() string {
	return joinNonEmpty(" ", a.GivenName, a.FamilyName)
}

// Lines returns the non-empty display lines in a generic international
// order: recipient, organization, street lines, locality line, country.
func (a Address) Lines() []string {
	region := joinNonEmpty(" ", a.AdministrativeArea, a.PostalCode)
	locality := joinNonEmpty(", ", a.Locality, region)

	candidates := []string{
		a.Name(),
		a.Organization,
		a.AddressLine1,
		a.AddressLine2,
		locality,
		strings.ToUpper(strings.TrimSpace(a.CountryCode)),
	}
	lines := make([]string, 0, len(candidates))
	for _, line := range candidates {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, sep)
}
