// Package render defines the output boundary: renderers turn an
// assembled document into bytes for a specific delivery target.
package render

import (
	"context"

	"github.com/advocflow/docgen/pkg/document"
)

// Renderer converts a rendered document into a byte representation
// (print HTML, plain text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc document.Rendered, options Options) ([]byte, error)
}
