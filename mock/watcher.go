package mock

import (
	"context"

	"github.com/fwojciec/hjkl"
)

// Compile-time interface verification.
var _ hjkl.Watcher = (*Watcher)(nil)

// Watcher is a mock implementation of hjkl.Watcher.
type Watcher struct {
	WatchFn func(ctx context.Context, path string) (<-chan struct{}, error)
}

func (w *Watcher) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	return w.WatchFn(ctx, path)
}
