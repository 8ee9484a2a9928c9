package content

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a content file into a Store whenever it changes on disk.
// It watches the parent directory so editors that save by renaming a temp
// file are picked up too.
type Watcher struct {
	path     string
	store    *Store
	log      *zap.Logger
	debounce time.Duration
}

func NewWatcher(path string, store *Store, log *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve content path: %w", err)
	}
	return &Watcher{
		path:     abs,
		store:    store,
		log:      log,
		debounce: 200 * time.Millisecond,
	}, nil
}

// Run watches until ctx is cancelled. A file that fails to load leaves the
// previous snapshot in place.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create content watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	w.log.Info("watching content file", zap.String("path", w.path))

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("content watcher error", zap.Error(err))

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	p, err := Load(w.path)
	if err != nil {
		w.log.Warn("content reload failed, keeping previous content", zap.Error(err))
		return
	}
	w.store.Set(p)
	w.log.Info("content reloaded",
		zap.Int("experience", len(p.Experience)),
		zap.Int("projects", len(p.Projects)),
		zap.Int("skills", len(p.Skills)))
}
