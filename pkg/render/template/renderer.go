package template

import (
	"io"
)

// TemplateRenderer is the engine contract renderers rely on. Render accepts
// either a template name or inline template content.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}

// ContextProvider is implemented by values that build their own template
// context. Engines use the returned map as is, so numbers keep their Go type.
type ContextProvider interface {
	TemplateContext() map[string]any
}
