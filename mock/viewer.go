package mock

import (
	"context"

	"github.com/fwojciec/hjkl"
)

// Compile-time interface verification.
var _ hjkl.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of hjkl.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, doc *hjkl.Document) error
}

func (v *Viewer) View(ctx context.Context, doc *hjkl.Document) error {
	return v.ViewFn(ctx, doc)
}
