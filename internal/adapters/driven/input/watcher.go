package input

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/mower-cli/internal/core/ports/driven"
	"github.com/custodia-labs/mower-cli/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.InputWatcher = (*Watcher)(nil)

// DefaultSettle is the minimum time between two change signals.
const DefaultSettle = 250 * time.Millisecond

// ErrNoPath is returned when Watch is called without a path.
var ErrNoPath = errors.New("input: watch path is required")

// Watcher signals changes to a single file.
// Editors often save by writing a temporary file and renaming it over
// the original, so the parent directory is watched and events are
// filtered by name. Bursts of events are coalesced by a rate limiter.
type Watcher struct {
	settle time.Duration
}

// NewWatcher creates a watcher. A settle <= 0 uses DefaultSettle.
func NewWatcher(settle time.Duration) *Watcher {
	if settle <= 0 {
		settle = DefaultSettle
	}
	return &Watcher{settle: settle}
}

// Watch emits once per settled change to path until ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	if path == "" {
		return nil, ErrNoPath
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close() //nolint:errcheck
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	logger.Debug("Watching %s", abs)

	dirty := make(chan struct{}, 1)
	out := make(chan struct{})

	go func() {
		defer fsw.Close() //nolint:errcheck
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if !isRelevant(event, abs) {
					continue
				}
				logger.Debug("Change detected: %s", event)
				select {
				case dirty <- struct{}{}:
				default:
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("Watcher error: %v", err)
			}
		}
	}()

	go func() {
		defer close(out)
		limiter := rate.NewLimiter(rate.Every(w.settle), 1)
		for {
			select {
			case <-ctx.Done():
				return
			case <-dirty:
			}

			if err := limiter.Wait(ctx); err != nil {
				return
			}
			// Changes that arrived while waiting are covered by this signal.
			select {
			case <-dirty:
			default:
			}

			select {
			case out <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// isRelevant reports whether event changes the content at path.
func isRelevant(event fsnotify.Event, path string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
