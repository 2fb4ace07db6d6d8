//go:build linux

package watcher

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

const watchMask = unix.IN_MODIFY | unix.IN_CLOSE_WRITE | unix.IN_CREATE | unix.IN_MOVED_TO

// longest file name inotify can report
const nameMax = 255

type Watcher struct {
	fd       int
	mu       sync.Mutex
	watchMap map[int]string
	deb      *debouncer
}

// New creates a watcher that calls onChange with the absolute path of every
// changed file, at most once per delay window per path. A zero delay means
// DefaultDelay.
func New(delay time.Duration, onChange func(string)) (*Watcher, error) {
	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("inotify_init failed: %w", err)
	}
	return &Watcher{
		fd:       fd,
		watchMap: make(map[int]string),
		deb:      newDebouncer(delay, onChange),
	}, nil
}

// Add watches a file, or the direct children of a directory.
func (w *Watcher) Add(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	wd, err := unix.InotifyAddWatch(w.fd, absPath, watchMask)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	w.mu.Lock()
	w.watchMap[wd] = absPath
	w.mu.Unlock()
	return nil
}

// Watch delivers events until ctx is done.
func (w *Watcher) Watch(ctx context.Context) error {
	buf := make([]byte, (unix.SizeofInotifyEvent+nameMax+1)*16)

	for {
		select {
		case <-ctx.Done():
			w.deb.stop()
			return ctx.Err()
		default:
		}

		n, err := unix.Read(w.fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				time.Sleep(100 * time.Millisecond)
				continue
			}
			log.Printf("error reading inotify events: %v", err)
			time.Sleep(100 * time.Millisecond)
			continue
		}

		offset := 0
		for offset+unix.SizeofInotifyEvent <= n {
			event := (*unix.InotifyEvent)(unsafe.Pointer(&buf[offset]))
			nameStart := offset + unix.SizeofInotifyEvent
			nameEnd := nameStart + int(event.Len)
			offset = nameEnd

			if event.Mask&watchMask == 0 || event.Mask&unix.IN_ISDIR != 0 {
				continue
			}

			w.mu.Lock()
			path := w.watchMap[int(event.Wd)]
			w.mu.Unlock()
			if path == "" {
				continue
			}
			if event.Len > 0 && nameEnd <= n {
				name := string(bytes.TrimRight(buf[nameStart:nameEnd], "\x00"))
				path = filepath.Join(path, name)
			}
			w.deb.trigger(path)
		}
	}
}

func (w *Watcher) Close() error {
	w.deb.stop()
	return unix.Close(w.fd)
}
