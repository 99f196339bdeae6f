package game

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// FileWatcher polls file modification times and triggers a callback on change.
type FileWatcher struct {
	Paths     []string
	Interval  time.Duration
	onChange  func(string) // called with path that changed
	lastMTime map[string]time.Time
}

// NewFileWatcher creates a watcher for given paths and interval.
func NewFileWatcher(paths []string, interval time.Duration, onChange func(string)) *FileWatcher {
	return &FileWatcher{
		Paths:     paths,
		Interval:  interval,
		onChange:  onChange,
		lastMTime: make(map[string]time.Time),
	}
}

// Start polls in a goroutine until ctx is done.
func (w *FileWatcher) Start(ctx context.Context) {
	// prime cache before returning so edits right after Start are seen
	w.scanAll(true)
	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.scanAll(false)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// scanAll invokes onChange for files created or modified since the last scan.
func (w *FileWatcher) scanAll(prime bool) {
	for _, p := range w.Paths {
		fi, err := os.Stat(p)
		if err != nil {
			continue
		}
		mt := fi.ModTime()
		last, ok := w.lastMTime[p]
		if ok && !mt.After(last) {
			continue
		}
		w.lastMTime[p] = mt
		if !prime && w.onChange != nil {
			w.onChange(p)
		}
	}
}

// Watch reloads l whenever its file changes. Failed reloads are logged and
// keep the previous snapshot.
func (l *Loader) Watch(ctx context.Context, interval time.Duration) *FileWatcher {
	w := NewFileWatcher([]string{l.path}, interval, func(path string) {
		if err := l.Reload(); err != nil {
			logrus.WithField("path", path).Errorf("banner config reload failed: %v", err)
		}
	})
	w.Start(ctx)
	return w
}
