package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-simplegmap/pkg/mapdisplay"
)

// FieldFixture is one case in a YAML field fixture: a raw field value, the
// language of the content it belongs to and the descriptor it should produce.
type FieldFixture struct {
	Name     string                `yaml:"name"`
	Value    string                `yaml:"value"`
	LangCode string                `yaml:"langcode"`
	Want     mapdisplay.Descriptor `yaml:"want"`
}

// MustLoadFieldFixtures reads a YAML list of FieldFixture.
func MustLoadFieldFixtures(t *testing.T, path string) []FieldFixture {
	t.Helper()

	fixtures, err := LoadFieldFixtures(path)
	if err != nil {
		t.Fatalf("load field fixtures: %v", err)
	}
	return fixtures
}

// LoadFieldFixtures reads a YAML list of FieldFixture without requiring
// testing.T.
func LoadFieldFixtures(path string) ([]FieldFixture, error) {
	if path == "" {
		return nil, errors.New("testsupport: fixture path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read fixtures: %w", err)
	}
	var out []FieldFixture
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("testsupport: unmarshal fixtures: %w", err)
	}
	return out, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput runs a render function that also writes to an
// io.Writer and returns both the result and what was written.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
