//go:build !linux

package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const pollInterval = 250 * time.Millisecond

type Watcher struct {
	mu      sync.Mutex
	roots   map[string]struct{}
	modTime map[string]time.Time
	deb     *debouncer
}

// New creates a watcher that calls onChange with the absolute path of every
// changed file, at most once per delay window per path. A zero delay means
// DefaultDelay.
func New(delay time.Duration, onChange func(string)) (*Watcher, error) {
	return &Watcher{
		roots:   make(map[string]struct{}),
		modTime: make(map[string]time.Time),
		deb:     newDebouncer(delay, onChange),
	}, nil
}

// Add watches a file, or the direct children of a directory.
func (w *Watcher) Add(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(absPath); err != nil {
		return err
	}
	w.mu.Lock()
	w.roots[absPath] = struct{}{}
	w.mu.Unlock()
	w.scan(false)
	return nil
}

// Watch delivers events until ctx is done.
func (w *Watcher) Watch(ctx context.Context) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.deb.stop()
			return ctx.Err()
		case <-ticker.C:
			w.scan(true)
		}
	}
}

// scan records the modification time of every watched file; with report
// set, files that are new or newer than last time are triggered.
func (w *Watcher) scan(report bool) {
	w.mu.Lock()
	roots := make([]string, 0, len(w.roots))
	for root := range w.roots {
		roots = append(roots, root)
	}
	w.mu.Unlock()

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			w.check(root, info.ModTime(), report)
			continue
		}
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			fi, err := e.Info()
			if err != nil {
				continue
			}
			w.check(filepath.Join(root, e.Name()), fi.ModTime(), report)
		}
	}
}

func (w *Watcher) check(path string, mod time.Time, report bool) {
	w.mu.Lock()
	last, known := w.modTime[path]
	w.modTime[path] = mod
	w.mu.Unlock()

	if report && (!known || mod.After(last)) {
		w.deb.trigger(path)
	}
}

func (w *Watcher) Close() error {
	w.deb.stop()
	return nil
}
