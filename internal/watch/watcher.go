// Package watch regenerates symbol tables when a catalog changes on disk.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// RegenerateFunc runs one full regeneration pass. The watcher never patches
// the table incrementally; any settled catalog change triggers a wholesale
// rebuild.
type RegenerateFunc func(ctx context.Context) error

// CatalogWatcher watches catalog directory trees and triggers regeneration
// after changes settle past the debounce window.
type CatalogWatcher struct {
	mu          sync.RWMutex
	watcher     *fsnotify.Watcher
	regenerate  RegenerateFunc
	roots       []string
	logger      *zap.Logger
	debounceMap map[string]time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool

	stats Stats
}

// Stats tracks watcher activity for debugging and tests.
type Stats struct {
	EventsSeen    int
	Regenerations int
	Errors        int
	LastEventTime time.Time
	LastEventPath string
}

// New creates a CatalogWatcher over the given catalog roots.
func New(roots []string, debounce time.Duration, regenerate RegenerateFunc, logger *zap.Logger) (*CatalogWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &CatalogWatcher{
		watcher:     watcher,
		regenerate:  regenerate,
		roots:       roots,
		logger:      logger,
		debounceMap: make(map[string]time.Time),
		debounceDur: debounce,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; the event loop runs in a goroutine
// until Stop is called or ctx is cancelled.
func (cw *CatalogWatcher) Start(ctx context.Context) error {
	cw.mu.Lock()
	if cw.running {
		cw.mu.Unlock()
		return nil
	}
	cw.running = true
	cw.mu.Unlock()

	// fsnotify does not recurse, so every directory under each root is
	// added individually. Directories created later are added on their
	// create events.
	for _, root := range cw.roots {
		if err := cw.addTree(root); err != nil {
			cw.logger.Warn("watch: initial add failed", zap.String("root", root), zap.Error(err))
		} else {
			cw.logger.Info("watch: watching catalog", zap.String("root", root))
		}
	}

	go cw.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to drain.
func (cw *CatalogWatcher) Stop() {
	cw.mu.Lock()
	if !cw.running {
		cw.mu.Unlock()
		return
	}
	cw.running = false
	cw.mu.Unlock()

	close(cw.stopCh)
	<-cw.doneCh

	if err := cw.watcher.Close(); err != nil {
		cw.logger.Error("watch: error closing watcher", zap.Error(err))
	}
}

// GetStats returns a snapshot of watcher activity.
func (cw *CatalogWatcher) GetStats() Stats {
	cw.mu.RLock()
	defer cw.mu.RUnlock()
	return cw.stats
}

func (cw *CatalogWatcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return cw.watcher.Add(path)
	})
}

// run is the main event loop.
func (cw *CatalogWatcher) run(ctx context.Context) {
	defer close(cw.doneCh)

	debounceTicker := time.NewTicker(100 * time.Millisecond)
	defer debounceTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-cw.stopCh:
			return

		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			cw.handleEvent(event)

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.logger.Error("watch: watcher error", zap.Error(err))
			cw.mu.Lock()
			cw.stats.Errors++
			cw.mu.Unlock()

		case <-debounceTicker.C:
			cw.processSettled(ctx)
		}
	}
}

// handleEvent records a catalog-relevant event for debounced processing.
func (cw *CatalogWatcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	// New imageset or group directories need to join the watch set.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := cw.addTree(event.Name); err != nil {
				cw.logger.Warn("watch: failed to watch new directory", zap.String("path", event.Name), zap.Error(err))
			}
		}
	}

	if !relevant(event.Name) {
		return
	}

	cw.logger.Debug("watch: catalog event", zap.String("op", event.Op.String()), zap.String("path", event.Name))

	cw.mu.Lock()
	cw.stats.EventsSeen++
	cw.stats.LastEventTime = time.Now()
	cw.stats.LastEventPath = event.Name
	cw.debounceMap[event.Name] = time.Now()
	cw.mu.Unlock()
}

// relevant reports whether a path can change the symbol table: imageset
// directories (add, remove, rename) and their Contents.json files.
func relevant(path string) bool {
	return strings.HasSuffix(path, ".imageset") || filepath.Base(path) == "Contents.json"
}

// processSettled triggers one regeneration when every recorded event has
// aged past the debounce window. Rapid saves collapse into a single pass.
func (cw *CatalogWatcher) processSettled(ctx context.Context) {
	cw.mu.Lock()
	if len(cw.debounceMap) == 0 {
		cw.mu.Unlock()
		return
	}
	now := time.Now()
	for _, eventTime := range cw.debounceMap {
		if now.Sub(eventTime) < cw.debounceDur {
			cw.mu.Unlock()
			return
		}
	}
	cw.debounceMap = make(map[string]time.Time)
	cw.mu.Unlock()

	cw.logger.Info("watch: catalog changed, regenerating")
	if err := cw.regenerate(ctx); err != nil {
		cw.logger.Error("watch: regeneration failed", zap.Error(err))
		cw.mu.Lock()
		cw.stats.Errors++
		cw.mu.Unlock()
		return
	}
	cw.mu.Lock()
	cw.stats.Regenerations++
	cw.mu.Unlock()
}
