// Package watch re-derives the dashboard whenever a workspace file
// changes, with debounce support for editors that write in bursts.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rmarchan/tablero/pkg/storage"
)

// Debouncer holds a callback until a quiet window passes with no further
// triggers, so editor write bursts collapse into one invocation.
type Debouncer struct {
	quiet time.Duration
	fire  func()

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer that fires after quiet elapses.
func NewDebouncer(quiet time.Duration, fire func()) *Debouncer {
	return &Debouncer{quiet: quiet, fire: fire}
}

// Trigger restarts the quiet window. The timer is allocated lazily on the
// first trigger and reused afterwards.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer == nil {
		d.timer = time.AfterFunc(d.quiet, d.fire)
		return
	}
	d.timer.Reset(d.quiet)
}

// Stop cancels a pending fire, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}

// ChangeEvent represents a workspace file change.
type ChangeEvent struct {
	File       string
	ChangeType string // "create", "write", "remove", "rename"
}

// workspaceFiles are the files inside .tablero whose changes invalidate
// the derived dashboard.
var workspaceFiles = map[string]bool{
	storage.SnapshotFile:   true,
	storage.StagesFile:     true,
	storage.WeightingsFile: true,
	storage.ProfilesFile:   true,
}

// WorkspaceWatcher watches a workspace's .tablero directory using fsnotify.
type WorkspaceWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func(ChangeEvent)
}

// NewWorkspaceWatcher creates a watcher over the workspace rooted at root.
func NewWorkspaceWatcher(root string, debounce time.Duration, onChange func(ChangeEvent)) (*WorkspaceWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := w.Add(filepath.Join(root, storage.TableroDir)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", storage.TableroDir, err)
	}
	if debounce == 0 {
		debounce = 500 * time.Millisecond
	}
	return &WorkspaceWatcher{
		watcher:  w,
		debounce: debounce,
		onChange: onChange,
	}, nil
}

// Run starts the event loop. It blocks until the context is cancelled.
func (w *WorkspaceWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var lastEvent ChangeEvent
	debouncer := NewDebouncer(w.debounce, func() {
		if w.onChange != nil {
			w.onChange(lastEvent)
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			changeType := opToChangeType(event.Op)
			if changeType == "" {
				continue
			}
			if !workspaceFiles[filepath.Base(event.Name)] {
				continue
			}

			lastEvent = ChangeEvent{File: filepath.Base(event.Name), ChangeType: changeType}
			debouncer.Trigger()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

func opToChangeType(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "create"
	case op.Has(fsnotify.Write):
		return "write"
	case op.Has(fsnotify.Remove):
		return "remove"
	case op.Has(fsnotify.Rename):
		return "rename"
	default:
		return ""
	}
}
