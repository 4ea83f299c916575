package render

// RenderOptions describe per-request data that renderers can use without
// changing the descriptor itself.
type RenderOptions struct {
	// ThemeName and ThemeVariant select template overrides for renderers that
	// support themes. Empty values use the selector defaults.
	ThemeName    string
	ThemeVariant string
	// StaticMapAPIKey is appended to static map image URLs when set.
	StaticMapAPIKey string
	// Data carries extra template values such as wrapper classes.
	Data map[string]any
}
