package mapdisplay_test

import (
	"net/url"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-simplegmap/pkg/mapdisplay"
	"github.com/goliatone/go-simplegmap/pkg/testsupport"
)

func TestBuild_DefaultsScenario(t *testing.T) {
	cfg := mapdisplay.DefaultConfig()
	cfg.IncludeStaticMap = true
	cfg.IframeWidth = "400"
	cfg.IframeHeight = "300"

	got := mapdisplay.Build("Main St & 5th Ave", "en", cfg)

	want := mapdisplay.Descriptor{
		IncludeEmbeddedMap: true,
		IncludeStaticMap:   true,
		Width:              "400",
		Height:             "300",
		URLAddressToken:    url.QueryEscape("Main St &amp; 5th Ave"),
		Zoom:               14,
		InformationBubble:  true,
		MapType:            mapdisplay.MapTypeMap,
		StaticMapType:      "roadmap",
		LangCode:           "en",
		StaticWidth:        400,
		StaticHeight:       300,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_StaticMapTypeTable(t *testing.T) {
	cases := []struct {
		code       string
		wantType   mapdisplay.MapType
		wantStatic string
	}{
		{code: "m", wantType: mapdisplay.MapTypeMap, wantStatic: "roadmap"},
		{code: "k", wantType: mapdisplay.MapTypeSatellite, wantStatic: "satellite"},
		{code: "h", wantType: mapdisplay.MapTypeHybrid, wantStatic: "hybrid"},
		{code: "p", wantType: mapdisplay.MapTypeTerrain, wantStatic: "terrain"},
		{code: "x", wantType: mapdisplay.MapTypeMap, wantStatic: "roadmap"},
		{code: "", wantType: mapdisplay.MapTypeMap, wantStatic: "roadmap"},
		{code: "roadmap", wantType: mapdisplay.MapTypeMap, wantStatic: "roadmap"},
	}

	for _, tc := range cases {
		t.Run("code="+tc.code, func(t *testing.T) {
			cfg := mapdisplay.DefaultConfig()
			cfg.MapType = mapdisplay.MapType(tc.code)

			got := mapdisplay.Build("Somewhere", "en", cfg)
			if got.MapType != tc.wantType {
				t.Fatalf("map type: want %q, got %q", tc.wantType, got.MapType)
			}
			if got.StaticMapType != tc.wantStatic {
				t.Fatalf("static map type: want %q, got %q", tc.wantStatic, got.StaticMapType)
			}
		})
	}
}

func TestBuild_LinkTextEmptyWhenLinkExcluded(t *testing.T) {
	for _, linkText := range []mapdisplay.LinkText{
		mapdisplay.LinkTextLiteral("View larger map"),
		mapdisplay.LinkTextUseAddress(),
		mapdisplay.ParseLinkText("use_address"),
	} {
		cfg := mapdisplay.DefaultConfig()
		cfg.IncludeLink = false
		cfg.LinkText = linkText

		got := mapdisplay.Build("1 Infinite Loop", "en", cfg)
		if got.LinkText != "" {
			t.Fatalf("expected empty link text for %q, got %q", linkText, got.LinkText)
		}
	}
}

func TestParseLinkText_ExactSentinelOnly(t *testing.T) {
	if !mapdisplay.ParseLinkText("use_address").UsesAddress() {
		t.Fatal("sentinel should select the address")
	}

	padded := mapdisplay.ParseLinkText(" use_address ")
	if padded.UsesAddress() {
		t.Fatal("padded sentinel should stay a literal label")
	}

	cfg := mapdisplay.DefaultConfig()
	cfg.IncludeLink = true
	cfg.LinkText = padded
	got := mapdisplay.Build("1 Infinite Loop", "en", cfg)
	if got.LinkText != " use_address " {
		t.Fatalf("link text: want literal label, got %q", got.LinkText)
	}
}

func TestBuild_LinkTextUsesEscapedAddress(t *testing.T) {
	cfg := mapdisplay.DefaultConfig()
	cfg.IncludeLink = true
	cfg.LinkText = mapdisplay.ParseLinkText("use_address")

	got := mapdisplay.Build(`Tom's "Diner" <NYC>`, "en", cfg)

	want := "Tom&#39;s &#34;Diner&#34; &lt;NYC&gt;"
	if got.LinkText != want {
		t.Fatalf("link text: want %q, got %q", want, got.LinkText)
	}
}

func TestBuild_LinkTextLiteralIsEscaped(t *testing.T) {
	cfg := mapdisplay.DefaultConfig()
	cfg.IncludeLink = true
	cfg.LinkText = mapdisplay.LinkTextLiteral("Open <b>map</b>")

	got := mapdisplay.Build("Anywhere", "en", cfg)
	if got.LinkText != "Open &lt;b&gt;map&lt;/b&gt;" {
		t.Fatalf("unexpected link text %q", got.LinkText)
	}
}

func TestBuild_StaticDimensions(t *testing.T) {
	cases := []struct {
		name          string
		static        bool
		width, height string
		wantW, wantH  int
		wantWidthOut  string
	}{
		{name: "disabled", static: false, width: "300", height: "150", wantW: 0, wantH: 0, wantWidthOut: "300"},
		{name: "pixels", static: true, width: "300", height: "150", wantW: 300, wantH: 150, wantWidthOut: "300"},
		{name: "percent", static: true, width: "100%", height: "abc", wantW: 100, wantH: 0, wantWidthOut: "100%"},
		{name: "suffix", static: true, width: " 640px", height: "-20", wantW: 640, wantH: 0, wantWidthOut: " 640px"},
		{name: "empty", static: true, width: "", height: "", wantW: 0, wantH: 0, wantWidthOut: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := mapdisplay.DefaultConfig()
			cfg.IncludeStaticMap = tc.static
			cfg.IframeWidth = tc.width
			cfg.IframeHeight = tc.height

			got := mapdisplay.Build("Somewhere", "en", cfg)
			if got.StaticWidth != tc.wantW || got.StaticHeight != tc.wantH {
				t.Fatalf("static size: want %dx%d, got %dx%d", tc.wantW, tc.wantH, got.StaticWidth, got.StaticHeight)
			}
			if got.Width != tc.wantWidthOut {
				t.Fatalf("width passthrough: want %q, got %q", tc.wantWidthOut, got.Width)
			}
		})
	}
}

func TestBuild_DimensionsAreEscaped(t *testing.T) {
	cfg := mapdisplay.DefaultConfig()
	cfg.IframeWidth = `100"><script>`

	got := mapdisplay.Build("Somewhere", "en", cfg)
	if got.Width != "100&#34;&gt;&lt;script&gt;" {
		t.Fatalf("unexpected width %q", got.Width)
	}
}

func TestBuild_LanguageResolution(t *testing.T) {
	cases := []struct {
		name    string
		lang    mapdisplay.Language
		content string
		want    string
	}{
		{name: "explicit", lang: mapdisplay.LanguageExplicit("de"), content: "fr", want: "de"},
		{name: "page sentinel", lang: mapdisplay.ParseLanguage("page"), content: "fr", want: "fr"},
		{name: "empty", lang: mapdisplay.ParseLanguage(""), content: "fr", want: "fr"},
		{name: "zero value", lang: mapdisplay.Language{}, content: "pt-BR", want: "pt-BR"},
		{name: "undetermined content", lang: mapdisplay.LanguageFollowContent(), content: "und", want: "en"},
		{name: "missing content", lang: mapdisplay.LanguageFollowContent(), content: "", want: "en"},
		{name: "explicit escaped", lang: mapdisplay.LanguageExplicit("e<n"), content: "fr", want: "e&lt;n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := mapdisplay.DefaultConfig()
			cfg.Language = tc.lang

			got := mapdisplay.Build("Somewhere", tc.content, cfg)
			if got.LangCode != tc.want {
				t.Fatalf("lang code: want %q, got %q", tc.want, got.LangCode)
			}
		})
	}
}

func TestBuild_URLTokenRoundTrip(t *testing.T) {
	values := []string{
		"Main St & 5th Ave",
		"Champs-Élysées, 75008 Paris",
		`<img src=x onerror="alert(1)">`,
		"",
		"100% + 1",
	}

	for _, value := range values {
		cfg := mapdisplay.DefaultConfig()
		cfg.IncludeText = true

		got := mapdisplay.Build(value, "en", cfg)
		decoded, err := url.QueryUnescape(got.URLAddressToken)
		if err != nil {
			t.Fatalf("unescape %q: %v", got.URLAddressToken, err)
		}
		if decoded != got.AddressText {
			t.Fatalf("round trip: want %q, got %q", got.AddressText, decoded)
		}
	}
}

func TestBuild_AddressTextOnlyWhenIncluded(t *testing.T) {
	cfg := mapdisplay.DefaultConfig()
	if got := mapdisplay.Build("A & B", "en", cfg); got.AddressText != "" {
		t.Fatalf("expected empty address text, got %q", got.AddressText)
	}

	cfg.IncludeText = true
	if got := mapdisplay.Build("A & B", "en", cfg); got.AddressText != "A &amp; B" {
		t.Fatalf("expected escaped address text, got %q", got.AddressText)
	}
}

func TestBuild_ZoomFallback(t *testing.T) {
	for zoom, want := range map[int]int{0: 14, 1: 1, 20: 20, 21: 14, -3: 14, 9: 9} {
		cfg := mapdisplay.DefaultConfig()
		cfg.ZoomLevel = zoom
		if got := mapdisplay.Build("x", "en", cfg).Zoom; got != want {
			t.Fatalf("zoom %d: want %d, got %d", zoom, want, got)
		}
	}
}

func TestBuildAll_PreservesOrder(t *testing.T) {
	cfg := mapdisplay.DefaultConfig()
	cfg.IncludeText = true

	items := []mapdisplay.FieldItem{{Value: "first"}, {Value: "second"}, {Value: "third"}}
	got := mapdisplay.BuildAll(items, "en", cfg)
	if len(got) != len(items) {
		t.Fatalf("expected %d descriptors, got %d", len(items), len(got))
	}
	for i, item := range items {
		if got[i].AddressText != item.Value {
			t.Fatalf("descriptor %d: want %q, got %q", i, item.Value, got[i].AddressText)
		}
	}

	if out := mapdisplay.BuildAll(nil, "en", cfg); out != nil {
		t.Fatalf("expected nil for empty input, got %v", out)
	}
}

func TestFallbacks_ReportsDefaultsApplied(t *testing.T) {
	cfg := mapdisplay.DefaultConfig()
	cfg.MapType = "z"
	cfg.ZoomLevel = 40
	cfg.IncludeStaticMap = true
	cfg.IframeWidth = "100%"
	cfg.IframeHeight = "auto"
	cfg.Language = mapdisplay.LanguageFollowContent()

	got := mapdisplay.Fallbacks("und", cfg)
	want := []mapdisplay.Fallback{
		{Setting: "map_type", Value: "z", Applied: "m"},
		{Setting: "zoom_level", Value: "40", Applied: "14"},
		{Setting: "iframe_height", Value: "auto", Applied: "0"},
		{Setting: "langcode", Value: "und", Applied: "en"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fallbacks mismatch (-want +got):\n%s", diff)
	}

	if got := mapdisplay.Fallbacks("en", mapdisplay.DefaultConfig()); len(got) != 0 {
		t.Fatalf("expected no fallbacks for defaults, got %v", got)
	}
}

func TestBuild_FieldFixtures(t *testing.T) {
	cfg := mapdisplay.DefaultConfig()
	cfg.IncludeLink = true
	cfg.IncludeText = true
	cfg.LinkText = mapdisplay.LinkTextUseAddress()
	cfg.Language = mapdisplay.LanguageFollowContent()

	fixtures := testsupport.MustLoadFieldFixtures(t, filepath.Join("testdata", "fields.yaml"))
	if len(fixtures) == 0 {
		t.Fatal("expected field fixtures")
	}
	for _, fx := range fixtures {
		t.Run(fx.Name, func(t *testing.T) {
			got := mapdisplay.Build(fx.Value, fx.LangCode, cfg)
			if diff := testsupport.CompareGolden(fx.Want, got); diff != "" {
				t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
