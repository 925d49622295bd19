// Package watch re-runs a callback whenever a file is written.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/aledsdavies/advent/internal/invariant"
)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 100 * time.Millisecond

// Watcher calls OnChange after path is written or re-created.
type Watcher struct {
	Path     string
	Debounce time.Duration
	OnChange func()
	Logger   *zap.Logger

	// ready, when set, is closed once the file system watch is in place.
	ready chan struct{}
}

// New returns a watcher with the default debounce.
func New(path string, onChange func(), logger *zap.Logger) *Watcher {
	invariant.NotNil(onChange, "onChange")
	invariant.NotNil(logger, "logger")
	return &Watcher{
		Path:     path,
		Debounce: DefaultDebounce,
		OnChange: onChange,
		Logger:   logger,
	}
}

// Run blocks until ctx is cancelled. The directory is watched rather than
// the file so that editors which save by rename are still seen. OnChange runs
// on the calling goroutine, one call at a time.
func (w *Watcher) Run(ctx context.Context) error {
	invariant.ContextNotBackground(ctx, "watch.Run")

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	target := filepath.Clean(w.Path)
	if err := fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}
	w.Logger.Debug("watching input", zap.String("path", target))
	if w.ready != nil {
		close(w.ready)
	}

	// Armed only after a matching event.
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.Logger.Debug("input changed", zap.String("path", target), zap.Stringer("op", event.Op))
				timer.Reset(w.Debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.Logger.Warn("watch error", zap.Error(err))

		case <-timer.C:
			w.OnChange()
		}
	}
}
