package fs

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/fwojciec/hjkl"
)

// Compile-time interface verification.
var _ hjkl.Watcher = (*Watcher)(nil)

// Watcher reports writes to a single file using fsnotify.
type Watcher struct {
	debounce time.Duration
	logger   *log.Logger
}

// NewWatcher creates a Watcher that coalesces bursts of events arriving
// within debounce of each other. A nil logger discards output.
func NewWatcher(debounce time.Duration, logger *log.Logger) *Watcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Watcher{debounce: debounce, logger: logger}
}

// Watch signals on the returned channel after the file at path changes.
// The parent directory is watched so that editors replacing the file by
// rename are still seen. The channel is closed when ctx is done.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	changes := make(chan struct{}, 1)
	go w.loop(ctx, fw, abs, changes)
	return changes, nil
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher, path string, changes chan<- struct{}) {
	defer close(changes)
	defer func() { _ = fw.Close() }()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			w.logger.Debug("file event", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "err", err)

		case <-fire:
			fire = nil
			select {
			case changes <- struct{}{}:
			default: // a change is already pending
			}
		}
	}
}
