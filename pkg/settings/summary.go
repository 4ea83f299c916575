package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-simplegmap/pkg/mapdisplay"
)

// Translator resolves a message key for a locale. It matches the translator
// contract used by go-i18n style catalogs.
type Translator interface {
	Translate(locale string, key string, args ...any) (string, error)
}

// SummaryOptions configures Summary.
type SummaryOptions struct {
	Locale     string
	Translator Translator
}

type summaryLine struct {
	key      string
	fallback string
	args     []any
}

// Summary describes s in short human-readable lines, the way an admin screen
// lists a formatter's settings. Missing translations use English defaults.
func Summary(s Settings, opts SummaryOptions) []string {
	var lines []summaryLine

	if s.IncludeMap {
		lines = append(lines, summaryLine{"summary.dynamic_map", "Dynamic map: %s x %s", []any{s.IframeWidth, s.IframeHeight}})
	}
	if s.IncludeStaticMap {
		lines = append(lines, summaryLine{"summary.static_map", "Static map: %s x %s", []any{s.IframeWidth, s.IframeHeight}})
	}
	if s.IncludeLink {
		lines = append(lines, summaryLine{"summary.map_link", "Map link: %s", []any{s.LinkText}})
	}

	if s.IncludeLink || s.IncludeMap || s.IncludeStaticMap {
		mapType := mapdisplay.ParseMapType(s.MapType)
		bubble := summaryLine{"summary.no", "No", nil}
		if s.InformationBubble {
			bubble = summaryLine{"summary.yes", "Yes", nil}
		}
		lang := strings.TrimSpace(s.Langcode)
		if lang == "" {
			lang = mapdisplay.DefaultLangCode
		}

		lines = append(lines,
			summaryLine{"summary.map_type", "Map Type: %s", []any{translate(opts, summaryLine{"map_type." + string(mapType), mapType.Label(), nil})}},
			summaryLine{"summary.zoom_level", "Zoom Level: %s", []any{strconv.Itoa(s.ZoomLevel)}},
			summaryLine{"summary.information_bubble", "Information Bubble: %s", []any{translate(opts, bubble)}},
			summaryLine{"summary.language", "Language: %s", []any{lang}},
		)
	}
	if s.IncludeText {
		lines = append(lines, summaryLine{"summary.text", "Original text displayed", nil})
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, translate(opts, line))
	}
	return out
}

func translate(opts SummaryOptions, line summaryLine) string {
	if opts.Translator != nil {
		msg, err := opts.Translator.Translate(opts.Locale, line.key, line.args...)
		if err == nil && strings.TrimSpace(msg) != "" {
			return msg
		}
	}
	if len(line.args) == 0 {
		return line.fallback
	}
	return fmt.Sprintf(line.fallback, line.args...)
}

// ZoomOption is one selectable zoom level.
type ZoomOption struct {
	Level int
	Label string
}

// ZoomOptions lists the selectable zoom levels with their labels.
func ZoomOptions() []ZoomOption {
	out := make([]ZoomOption, 0, mapdisplay.MaxZoomLevel)
	for level := mapdisplay.MinZoomLevel; level <= mapdisplay.MaxZoomLevel; level++ {
		label := strconv.Itoa(level)
		switch level {
		case mapdisplay.MinZoomLevel:
			label += " - Minimum"
		case mapdisplay.DefaultZoomLevel:
			label += " - Default"
		case mapdisplay.MaxZoomLevel:
			label += " - Maximum"
		}
		out = append(out, ZoomOption{Level: level, Label: label})
	}
	return out
}
