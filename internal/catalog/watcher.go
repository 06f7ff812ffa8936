package catalog

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/harrylevesque/qrverify/internal/models"
)

// Loader reads a dataset from its backing file.
type Loader interface {
	Path() string
	Load() (models.Dataset, error)
}

// Watcher reloads a catalog whenever its dataset file changes. A dataset
// that fails to load or validate is logged and the previous one stays live.
type Watcher struct {
	catalog  *Catalog
	loader   Loader
	logger   *zap.Logger
	debounce time.Duration

	// OnReload, if set, is called after every reload attempt.
	OnReload func(error)
}

// NewWatcher creates a watcher for loader's file.
func NewWatcher(c *Catalog, loader Loader, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		catalog:  c,
		loader:   loader,
		logger:   logger,
		debounce: 200 * time.Millisecond,
	}
}

// Run watches until ctx is done. The parent directory is watched so that
// editors and atomic saves which replace the file are picked up.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	path, err := filepath.Abs(w.loader.Path())
	if err != nil {
		return err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		return err
	}
	w.logger.Info("watching dataset", zap.String("path", path))

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("dataset watcher error", zap.Error(err))

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	ds, err := w.loader.Load()
	if err == nil {
		err = w.catalog.Replace(ds)
	}
	if err != nil {
		w.logger.Error("dataset reload failed, keeping previous", zap.String("path", w.loader.Path()), zap.Error(err))
	} else {
		w.logger.Info("dataset reloaded", zap.Int("codes", w.catalog.Len()))
	}
	if w.OnReload != nil {
		w.OnReload(err)
	}
}
