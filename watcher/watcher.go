// Package watcher reports file changes under a set of watched paths. Linux
// uses inotify; other platforms poll modification times.
package watcher

import (
	"io/fs"
	"path/filepath"
	"sync"
	"time"
)

// DefaultDelay is how long a path must stay quiet before its change is
// reported. Editors often write a file several times per save.
const DefaultDelay = 500 * time.Millisecond

// debouncer coalesces bursts of events per path and runs onChange for one
// path at a time.
type debouncer struct {
	mu          sync.Mutex
	debounceMap map[string]*time.Timer
	delay       time.Duration

	callMu   sync.Mutex
	onChange func(string)
}

func newDebouncer(delay time.Duration, onChange func(string)) *debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &debouncer{
		debounceMap: make(map[string]*time.Timer),
		delay:       delay,
		onChange:    onChange,
	}
}

func (d *debouncer) trigger(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if timer, exists := d.debounceMap[path]; exists {
		timer.Stop()
	}

	d.debounceMap[path] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.debounceMap, path)
		d.mu.Unlock()

		d.callMu.Lock()
		defer d.callMu.Unlock()
		d.onChange(path)
	})
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for path, timer := range d.debounceMap {
		timer.Stop()
		delete(d.debounceMap, path)
	}
}

// AddTree watches root and every directory below it.
func (w *Watcher) AddTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
