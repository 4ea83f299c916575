// Package mapdisplay turns a stored address value plus formatter settings into
// a Descriptor: the renderer-ready view model behind an embedded Google Map, a
// static map image and/or a link to the full map.
//
// Build is pure and never fails. Malformed settings degrade to documented
// defaults (unknown map types become MapTypeMap, out-of-range zoom levels
// become DefaultZoomLevel, non-numeric static sizes become zero) so a bad
// display setting never prevents the surrounding content from rendering.
//
// Text fields on a Descriptor (Width, Height, LinkText, AddressText,
// LangCode) are HTML-escaped; URLAddressToken is query-encoded. Templates
// should print the text fields without escaping them again.
//
// Structured addresses whose single-line form is only known after an external
// formatter has rendered them use the two-phase flow: BuildPending produces a
// descriptor with empty address fields and Pending.Finalize fills them from
// the rendered markup.
package mapdisplay
