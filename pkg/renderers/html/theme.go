package html

import (
	"fmt"
	"path"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-simplegmap/pkg/render"
)

type themeResolver struct {
	selector theme.ThemeSelector
}

type resolvedTheme struct {
	context  render.ThemeContext
	template string
}

func newThemeResolver(selector theme.ThemeSelector) *themeResolver {
	return &themeResolver{selector: selector}
}

// resolve returns nil when no selector is configured or the selector has no
// manifest for the request.
func (r *themeResolver) resolve(name, variant string) (*resolvedTheme, error) {
	if r == nil || r.selector == nil {
		return nil, nil
	}
	selection, err := r.selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, nil
	}

	manifest := selection.Manifest
	tokens := mergeStrings(manifest.Tokens, nil)
	templates := mergeStrings(manifest.Templates, nil)
	assetFiles := mergeStrings(manifest.Assets.Files, nil)
	assetPrefix := manifest.Assets.Prefix

	if v, ok := manifest.Variants[selection.Variant]; ok {
		tokens = mergeStrings(tokens, v.Tokens)
		templates = mergeStrings(templates, v.Templates)
		assetFiles = mergeStrings(assetFiles, v.Assets.Files)
		if v.Assets.Prefix != "" {
			assetPrefix = v.Assets.Prefix
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	resolved := &resolvedTheme{
		context: render.ThemeContext{
			Name:         selection.Theme,
			Variant:      selection.Variant,
			Tokens:       tokens,
			CSSVars:      cssVars,
			CSSVarsStyle: cssVarsStyle(cssVars),
		},
		template: strings.TrimSpace(templates[ThemeTemplateKey]),
	}
	if file := assetFiles[ThemeStylesheetKey]; file != "" {
		resolved.context.Stylesheet = assetURL(assetPrefix, file)
	}
	return resolved, nil
}

func mergeStrings(base, overrides map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(overrides))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range overrides {
		out[key] = value
	}
	return out
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";")
	}
	return b.String()
}

func assetURL(prefix, file string) string {
	if prefix == "" || strings.HasPrefix(file, "/") || strings.Contains(file, "://") {
		return file
	}
	if strings.Contains(prefix, "://") {
		return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(file, "/")
	}
	return path.Join(prefix, file)
}
