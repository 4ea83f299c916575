// Package wizard walks a user through the map formatter settings in the
// terminal, in the same order an admin settings form presents them.
package wizard

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-simplegmap/pkg/mapdisplay"
	"github.com/goliatone/go-simplegmap/pkg/settings"
)

// Run prompts for every setting, using base as the defaults, and returns the
// edited settings. The result is validated before it is returned.
func Run(ctx context.Context, driver PromptDriver, base settings.Settings) (settings.Settings, error) {
	if driver == nil {
		return base, errors.New("wizard: prompt driver required")
	}
	s := base
	var err error

	if s.IncludeMap, err = driver.Confirm(ctx, ConfirmConfig{
		Message: "Include embedded dynamic map",
		Default: s.IncludeMap,
	}); err != nil {
		return base, err
	}
	if s.IncludeStaticMap, err = driver.Confirm(ctx, ConfirmConfig{
		Message: "Include embedded static map",
		Default: s.IncludeStaticMap,
	}); err != nil {
		return base, err
	}

	if s.IncludeMap || s.IncludeStaticMap {
		sizeHelp := "Note that static maps only accept sizes in pixels"
		if s.IframeWidth, err = driver.Input(ctx, InputConfig{
			Message:   "Width of embedded map",
			Default:   s.IframeWidth,
			Help:      sizeHelp,
			Validator: sizeValidator(s.IncludeStaticMap),
		}); err != nil {
			return base, err
		}
		if s.IframeHeight, err = driver.Input(ctx, InputConfig{
			Message:   "Height of embedded map",
			Default:   s.IframeHeight,
			Help:      sizeHelp,
			Validator: sizeValidator(s.IncludeStaticMap),
		}); err != nil {
			return base, err
		}
	}

	if s.IncludeLink, err = driver.Confirm(ctx, ConfirmConfig{
		Message: "Include link to map",
		Default: s.IncludeLink,
	}); err != nil {
		return base, err
	}
	if s.IncludeLink {
		if s.LinkText, err = driver.Input(ctx, InputConfig{
			Message: "Link text",
			Default: s.LinkText,
			Help:    "Enter the text to use for the link to the map, or " + mapdisplay.UseAddressSentinel + " to use the address text as the link text",
		}); err != nil {
			return base, err
		}
	}

	zoomOptions := settings.ZoomOptions()
	labels := make([]string, 0, len(zoomOptions))
	zoomDefault := mapdisplay.DefaultZoomLevel - 1
	for i, opt := range zoomOptions {
		labels = append(labels, opt.Label)
		if opt.Level == s.ZoomLevel {
			zoomDefault = i
		}
	}
	idx, err := driver.Select(ctx, SelectConfig{
		Message:      "Zoom level",
		Options:      labels,
		DefaultIndex: zoomDefault,
		PageSize:     10,
	})
	if err != nil {
		return base, err
	}
	if idx >= 0 && idx < len(zoomOptions) {
		s.ZoomLevel = zoomOptions[idx].Level
	}

	if s.InformationBubble, err = driver.Confirm(ctx, ConfirmConfig{
		Message: "Show information bubble",
		Default: s.InformationBubble,
		Help:    "If checked, the information bubble for the marker will be displayed when the embedded or linked map loads.",
	}); err != nil {
		return base, err
	}
	if s.IncludeText, err = driver.Confirm(ctx, ConfirmConfig{
		Message: "Include original address text",
		Default: s.IncludeText,
	}); err != nil {
		return base, err
	}

	mapTypes := mapdisplay.MapTypes()
	typeLabels := make([]string, 0, len(mapTypes))
	typeDefault := 0
	current := mapdisplay.ParseMapType(s.MapType)
	for i, mt := range mapTypes {
		typeLabels = append(typeLabels, mt.Label())
		if mt == current {
			typeDefault = i
		}
	}
	idx, err = driver.Select(ctx, SelectConfig{
		Message:      "Map type",
		Options:      typeLabels,
		DefaultIndex: typeDefault,
		Help:         "Choose a default map type for embedded and linked maps",
	})
	if err != nil {
		return base, err
	}
	if idx >= 0 && idx < len(mapTypes) {
		s.MapType = string(mapTypes[idx])
	}

	if s.Langcode, err = driver.Input(ctx, InputConfig{
		Message: "Language",
		Default: s.Langcode,
		Help:    "Enter a language code that Google Maps can recognize, or " + mapdisplay.FollowContentSentinel + " to use the content language",
	}); err != nil {
		return base, err
	}
	s.Langcode = strings.TrimSpace(s.Langcode)

	if err := settings.Validate(s); err != nil {
		return base, err
	}
	for _, line := range settings.Summary(s, settings.SummaryOptions{}) {
		if err := driver.Info(ctx, line); err != nil {
			return base, err
		}
	}
	return s, nil
}

func sizeValidator(static bool) func(string) error {
	return func(value string) error {
		value = strings.TrimSpace(value)
		if value == "" {
			return errors.New("a size is required")
		}
		if static && mapdisplay.PixelSize(value) == 0 {
			return errors.New("static maps need a size in pixels, e.g. 200")
		}
		return nil
	}
}
