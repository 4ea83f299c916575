package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-simplegmap/internal/wizard"
	"github.com/goliatone/go-simplegmap/pkg/render"
	"github.com/goliatone/go-simplegmap/pkg/settings"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr, defaultsDriver{})
	return stdout.String(), stderr.String(), err
}

func TestRun_JSONFromArgs(t *testing.T) {
	out, _, err := runCLI(t, "", "Main St & 5th")
	require.NoError(t, err)

	var view map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "Main+St+%26amp%3B+5th", view["urlAddressToken"])
	assert.Equal(t, "https://maps.google.com/maps?q=Main+St+%26amp%3B+5th&output=embed&z=14&t=m&hl=en&iwloc=A", view["embedUrl"])
}

func TestRun_ReadsStdinLines(t *testing.T) {
	out, _, err := runCLI(t, "First St\n\n  Second St  \n")
	require.NoError(t, err)

	decoder := json.NewDecoder(strings.NewReader(out))
	var tokens []string
	for decoder.More() {
		var view map[string]any
		require.NoError(t, decoder.Decode(&view))
		tokens = append(tokens, view["urlAddressToken"].(string))
	}
	assert.Equal(t, []string{"First+St", "Second+St"}, tokens)
}

func TestRun_LangFollowsContent(t *testing.T) {
	config := writeFile(t, "gmap.yaml", "langcode: page\ninclude_static_map: true\n")

	out, _, err := runCLI(t, "", "-config", config, "-lang", "de", "-static-map-key", "abc", "Berlin")
	require.NoError(t, err)

	var view map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "de", view["langCode"])
	assert.Contains(t, view["staticMapUrl"], "&language=de")
	assert.Contains(t, view["staticMapUrl"], "&key=abc")
}

func TestRun_HTMLRenderer(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "simple-gmap-output.tpl"),
		[]byte(`<a href="{{ embedUrl }}">{{ width|safe }}</a>`), 0o644))

	out, _, err := runCLI(t, "", "-renderer", "html", "-templates", dir, "Oak Ave")
	require.NoError(t, err)
	assert.Equal(t, `<a href="https://maps.google.com/maps?q=Oak+Ave&amp;output=embed&amp;z=14&amp;t=m&amp;hl=en&amp;iwloc=A">200</a>`+"\n", out)
}

func TestRun_UnknownRenderer(t *testing.T) {
	_, _, err := runCLI(t, "", "-renderer", "html", "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, render.ErrRendererNotFound))
	assert.Contains(t, err.Error(), "available: json")
}

func TestRun_Addresses(t *testing.T) {
	addresses := writeFile(t, "addresses.yaml", `
- organization: Acme & Co
  address_line1: 1 Main St
  locality: Springfield
  administrative_area: IL
  postal_code: "62701"
  country_code: us
`)
	config := writeFile(t, "gmap.yaml", "include_text: true\ninclude_link: true\nlink_text: use_address\n")

	out, _, err := runCLI(t, "", "-config", config, "-addresses", addresses)
	require.NoError(t, err)

	var view map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "Acme &amp; Co,1 Main St,Springfield, IL 62701,US", view["addressText"])
	assert.Equal(t, view["addressText"], view["linkText"])
}

func TestRun_Summary(t *testing.T) {
	out, _, err := runCLI(t, "", "-summary")
	require.NoError(t, err)
	assert.Equal(t, "Dynamic map: 200 x 200\nMap Type: Map\nZoom Level: 14\nInformation Bubble: Yes\nLanguage: en\n", out)
}

func TestRun_Validate(t *testing.T) {
	out, _, err := runCLI(t, "", "-validate")
	require.NoError(t, err)
	assert.Equal(t, "settings OK\n", out)

	config := writeFile(t, "bad.yaml", "zoom_level: 40\n")
	_, _, err = runCLI(t, "", "-validate", "-config", config)
	var verr *settings.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "zoom_level")
}

func TestRun_WizardWritesSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	_, _, err := runCLI(t, "", "-wizard", "-output", path)
	require.NoError(t, err)

	loaded, err := settings.Load(path, settings.WithoutEnv())
	require.NoError(t, err)
	assert.Equal(t, settings.Defaults(), loaded)
}

func TestRun_EnvFile(t *testing.T) {
	envFile := writeFile(t, ".env", "SIMPLEGMAP_ZOOM_LEVEL=5\n")
	t.Cleanup(func() { _ = os.Unsetenv("SIMPLEGMAP_ZOOM_LEVEL") })

	out, _, err := runCLI(t, "", "-env-file", envFile, "Somewhere")
	require.NoError(t, err)

	var view map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.EqualValues(t, 5, view["zoom"])
}

func TestRun_LogsFallbacksAtDebug(t *testing.T) {
	config := writeFile(t, "gmap.yaml", "map_type: x\n")

	_, stderr, err := runCLI(t, "", "-config", config, "-log-level", "debug", "-log-format", "json", "x")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"setting":"map_type"`)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// defaultsDriver accepts every default the wizard offers.
type defaultsDriver struct{}

func (defaultsDriver) Input(_ context.Context, cfg wizard.InputConfig) (string, error) {
	return cfg.Default, nil
}

func (defaultsDriver) Confirm(_ context.Context, cfg wizard.ConfirmConfig) (bool, error) {
	return cfg.Default, nil
}

func (defaultsDriver) Select(_ context.Context, cfg wizard.SelectConfig) (int, error) {
	return cfg.DefaultIndex, nil
}

func (defaultsDriver) Info(context.Context, string) error { return nil }
