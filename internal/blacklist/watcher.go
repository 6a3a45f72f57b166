package blacklist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"phishguard/pkg/logger"
	"phishguard/pkg/storage"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 200 * time.Millisecond

// Watcher unions a local list file into a Store whenever it changes.
type Watcher struct {
	path     string
	store    *Store
	debounce time.Duration
}

// NewWatcher creates a Watcher for the list file at path.
func NewWatcher(path string, store *Store) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		store:    store,
		debounce: defaultDebounce,
	}
}

// Load unions the current content of the file into the store and returns
// the number of newly blacklisted domains.
func (w *Watcher) Load(ctx context.Context) (int, error) {
	f, err := os.Open(w.path)
	if err != nil {
		return 0, fmt.Errorf("could not open local list: %w", err)
	}
	defer func() { _ = f.Close() }()

	parsed, err := Parse(f)
	if err != nil {
		return 0, err
	}

	return w.store.Add(ctx, storage.SourceLocal, parsed.Domains...)
}

// Run loads the file and reloads it on every change until ctx is done. The
// parent directory is watched so that editors replacing the file are seen.
func (w *Watcher) Run(ctx context.Context) error {
	ctx = logger.WithFields(ctx, zap.String("localList", w.path))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("could not watch local list directory: %w", err)
	}

	w.reload(ctx)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				timer.Reset(w.debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn(ctx, "local list watcher error", zap.Error(err))
		case <-timer.C:
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	added, err := w.Load(ctx)
	if err != nil {
		logger.Warn(ctx, "could not load local list", zap.Error(err))

		return
	}
	logger.Info(ctx, "local list loaded", zap.Int("added", added), zap.Int("size", w.store.Size()))
}
