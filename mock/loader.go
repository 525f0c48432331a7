// Package mock provides test doubles for hjkl interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/hjkl"
)

// Compile-time interface verification.
var _ hjkl.Loader = (*Loader)(nil)

// Loader is a mock implementation of hjkl.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, path string) (*hjkl.Document, error)
}

func (l *Loader) Load(ctx context.Context, path string) (*hjkl.Document, error) {
	return l.LoadFn(ctx, path)
}
