package mock

import "github.com/fwojciec/hjkl"

// Compile-time interface verification.
var _ hjkl.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of hjkl.Renderer.
type Renderer struct {
	RenderFn func(doc *hjkl.Document, width int) (string, error)
}

func (r *Renderer) Render(doc *hjkl.Document, width int) (string, error) {
	return r.RenderFn(doc, width)
}
