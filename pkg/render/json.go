package render

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-simplegmap/pkg/mapdisplay"
)

// JSONRendererName is the registry name of the JSON renderer.
const JSONRendererName = "json"

// JSONRenderer emits the View as JSON for clients that draw maps themselves.
type JSONRenderer struct {
	indent string
}

// NewJSONRenderer returns a renderer producing compact JSON, or indented JSON
// when indent is non-empty.
func NewJSONRenderer(indent string) *JSONRenderer {
	return &JSONRenderer{indent: indent}
}

var _ Renderer = (*JSONRenderer)(nil)

func (r *JSONRenderer) Name() string { return JSONRendererName }

func (r *JSONRenderer) ContentType() string { return "application/json" }

func (r *JSONRenderer) Render(ctx context.Context, descriptor mapdisplay.Descriptor, options RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	view := NewView(descriptor, options)

	var (
		out []byte
		err error
	)
	if r.indent != "" {
		out, err = json.MarshalIndent(view, "", r.indent)
	} else {
		out, err = json.Marshal(view)
	}
	if err != nil {
		return nil, fmt.Errorf("render: encode json: %w", err)
	}
	return out, nil
}
