package mapdisplay

import "strings"

const (
	// DefaultZoomLevel is used when the configured zoom is outside
	// [MinZoomLevel, MaxZoomLevel].
	DefaultZoomLevel = 14
	MinZoomLevel     = 1
	MaxZoomLevel     = 20

	// DefaultLangCode is the fallback when neither the settings nor the
	// content supply a language the map service can interpret.
	DefaultLangCode = "en"

	// DefaultLinkText is the literal link label used by DefaultConfig.
	DefaultLinkText = "View larger map"

	// UseAddressSentinel is the stored link text that selects the address
	// itself as the link label.
	UseAddressSentinel = "use_address"

	// FollowContentSentinel is the stored language code that selects the
	// language of the content being rendered.
	FollowContentSentinel = "page"
)

// LinkText is the configured label for the link to the full map: either a
// literal string or the address being displayed.
type LinkText struct {
	text       string
	useAddress bool
}

// LinkTextLiteral returns a link label rendered verbatim (after escaping).
func LinkTextLiteral(text string) LinkText {
	return LinkText{text: text}
}

// LinkTextUseAddress returns a link label that mirrors the displayed address.
func LinkTextUseAddress() LinkText {
	return LinkText{useAddress: true}
}

// ParseLinkText maps a stored link text onto a LinkText. Only the exact
// UseAddressSentinel selects the address; padded values are literal labels.
func ParseLinkText(raw string) LinkText {
	if raw == UseAddressSentinel {
		return LinkTextUseAddress()
	}
	return LinkTextLiteral(raw)
}

// UsesAddress reports whether the label mirrors the address.
func (l LinkText) UsesAddress() bool { return l.useAddress }

// Text returns the literal label. It is empty when UsesAddress is true.
func (l LinkText) Text() string { return l.text }

// String returns the stored form, including the sentinel.
func (l LinkText) String() string {
	if l.useAddress {
		return UseAddressSentinel
	}
	return l.text
}

// Language selects the language requested from the map service.
type Language struct {
	code          string
	followContent bool
}

// LanguageExplicit requests a fixed language code.
func LanguageExplicit(code string) Language {
	return Language{code: strings.TrimSpace(code)}
}

// LanguageFollowContent requests the language of the rendered content.
func LanguageFollowContent() Language {
	return Language{followContent: true}
}

// ParseLanguage maps a stored language code onto a Language. Empty values and
// FollowContentSentinel follow the content language.
func ParseLanguage(raw string) Language {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == FollowContentSentinel {
		return LanguageFollowContent()
	}
	return LanguageExplicit(trimmed)
}

// FollowsContent reports whether the content language is used. An explicit
// language with an empty code behaves the same way.
func (l Language) FollowsContent() bool {
	return l.followContent || l.code == ""
}

// Code returns the explicit language code, empty when following content.
func (l Language) Code() string {
	if l.followContent {
		return ""
	}
	return l.code
}

// String returns the stored form, including the sentinel.
func (l Language) String() string {
	if l.FollowsContent() {
		return FollowContentSentinel
	}
	return l.code
}

// FormatterConfig holds the administrator-configured display settings.
// Use DefaultConfig as the starting point and override fields as needed.
type FormatterConfig struct {
	IncludeEmbeddedMap bool
	IncludeStaticMap   bool
	IncludeLink        bool
	IncludeText        bool

	// IframeWidth and IframeHeight accept any CSS size for the embedded map;
	// static maps only use their leading pixel integer.
	IframeWidth  string
	IframeHeight string

	ZoomLevel         int
	InformationBubble bool
	LinkText          LinkText
	MapType           MapType
	Language          Language
}

// DefaultConfig returns the formatter defaults.
func DefaultConfig() FormatterConfig {
	return FormatterConfig{
		IncludeEmbeddedMap: true,
		IncludeStaticMap:   false,
		IncludeLink:        false,
		IncludeText:        false,
		IframeWidth:        "200",
		IframeHeight:       "200",
		ZoomLevel:          DefaultZoomLevel,
		InformationBubble:  true,
		LinkText:           LinkTextLiteral(DefaultLinkText),
		MapType:            MapTypeMap,
		Language:           LanguageExplicit(DefaultLangCode),
	}
}

// FieldItem is one value of a multi-value address/text field.
type FieldItem struct {
	Value string `json:"value" yaml:"value"`
}

// Descriptor is the resolved view model for one field value. The JSON names
// are the contract templates depend on.
type Descriptor struct {
	IncludeEmbeddedMap bool `json:"includeEmbeddedMap" yaml:"includeEmbeddedMap"`
	IncludeStaticMap   bool `json:"includeStaticMap" yaml:"includeStaticMap"`
	IncludeLink        bool `json:"includeLink" yaml:"includeLink"`
	IncludeText        bool `json:"includeText" yaml:"includeText"`

	Width  string `json:"width" yaml:"width"`
	Height string `json:"height" yaml:"height"`

	URLAddressToken   string `json:"urlAddressToken" yaml:"urlAddressToken"`
	Zoom              int    `json:"zoom" yaml:"zoom"`
	InformationBubble bool   `json:"informationBubble" yaml:"informationBubble"`
	LinkText          string `json:"linkText" yaml:"linkText"`
	AddressText       string `json:"addressText" yaml:"addressText"`

	MapType       MapType `json:"mapType" yaml:"mapType"`
	StaticMapType string  `json:"staticMapType" yaml:"staticMapType"`
	LangCode      string  `json:"langCode" yaml:"langCode"`

	StaticWidth  int `json:"staticWidth" yaml:"staticWidth"`
	StaticHeight int `json:"staticHeight" yaml:"staticHeight"`
}
