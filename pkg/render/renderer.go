package render

import (
	"context"

	"github.com/goliatone/go-simplegmap/pkg/mapdisplay"
)

// Renderer turns a map descriptor into output markup or data.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, descriptor mapdisplay.Descriptor, options RenderOptions) ([]byte, error)
}
