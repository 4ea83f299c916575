package settings_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goliatone/go-simplegmap/pkg/settings"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, args ...any) (string, error) {
	if msg, ok := t[key]; ok {
		if len(args) > 0 {
			return fmt.Sprintf(msg, args...), nil
		}
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestSummary_Defaults(t *testing.T) {
	got := settings.Summary(settings.Defaults(), settings.SummaryOptions{})

	assert.Equal(t, []string{
		"Dynamic map: 200 x 200",
		"Map Type: Map",
		"Zoom Level: 14",
		"Information Bubble: Yes",
		"Language: en",
	}, got)
}

func TestSummary_AllSections(t *testing.T) {
	s := settings.Defaults()
	s.IncludeStaticMap = true
	s.IncludeLink = true
	s.IncludeText = true
	s.LinkText = "use_address"
	s.InformationBubble = false
	s.MapType = "p"
	s.Langcode = ""

	got := settings.Summary(s, settings.SummaryOptions{})
	assert.Equal(t, []string{
		"Dynamic map: 200 x 200",
		"Static map: 200 x 200",
		"Map link: use_address",
		"Map Type: Terrain",
		"Zoom Level: 14",
		"Information Bubble: No",
		"Language: en",
		"Original text displayed",
	}, got)
}

func TestSummary_TextOnly(t *testing.T) {
	s := settings.Defaults()
	s.IncludeMap = false
	s.IncludeText = true

	assert.Equal(t, []string{"Original text displayed"}, settings.Summary(s, settings.SummaryOptions{}))
}

func TestSummary_UsesTranslator(t *testing.T) {
	translator := stubTranslator{
		"summary.dynamic_map":        "Carte dynamique : %s x %s",
		"summary.map_type":           "Type de carte : %s",
		"map_type.k":                 "Satellite (FR)",
		"summary.yes":                "Oui",
		"summary.information_bubble": "Bulle : %s",
	}
	s := settings.Defaults()
	s.MapType = "k"

	got := settings.Summary(s, settings.SummaryOptions{Locale: "fr", Translator: translator})
	assert.Equal(t, []string{
		"Carte dynamique : 200 x 200",
		"Type de carte : Satellite (FR)",
		"Zoom Level: 14",
		"Bulle : Oui",
		"Language: en",
	}, got)
}

func TestZoomOptions(t *testing.T) {
	opts := settings.ZoomOptions()
	assert.Len(t, opts, 20)
	assert.Equal(t, "1 - Minimum", opts[0].Label)
	assert.Equal(t, "14 - Default", opts[13].Label)
	assert.Equal(t, "20 - Maximum", opts[19].Label)
	assert.Equal(t, "7", opts[6].Label)
}
