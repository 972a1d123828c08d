package viewer

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watcher reports changes to one file. It watches the parent directory so
// editors that replace the file on save are still seen.
type watcher struct {
	w    *fsnotify.Watcher
	name string
	log  *slog.Logger
}

func newWatcher(path string, log *slog.Logger) (*watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("viewer: watch: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("viewer: watch %s: %w", path, err)
	}
	return &watcher{w: w, name: abs, log: log}, nil
}

// Changed drains pending events without blocking and reports whether the
// file was written or recreated since the last call.
func (wt *watcher) Changed() bool {
	changed := false
	for {
		select {
		case ev, ok := <-wt.w.Events:
			if !ok {
				return changed
			}
			if filepath.Clean(ev.Name) == wt.name && (ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				changed = true
			}
		case err, ok := <-wt.w.Errors:
			if !ok {
				return changed
			}
			wt.log.Warn("watch error", "file", wt.name, "err", err)
		default:
			return changed
		}
	}
}

func (wt *watcher) Close() error {
	return wt.w.Close()
}
