package game

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Loader keeps the current banner snapshot for one YAML file.
type Loader struct {
	path string

	mu   sync.RWMutex
	snap Snapshot
}

// NewLoader loads path once. A missing file yields the built-in defaults.
func NewLoader(path string) (*Loader, error) {
	l := &Loader{path: path}
	if err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// Path is the watched file.
func (l *Loader) Path() string { return l.path }

// Current returns the active snapshot.
func (l *Loader) Current() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snap
}

// Reload re-reads the file. On error the previous snapshot stays active.
func (l *Loader) Reload() error {
	raw, err := readYAML(l.path)
	if err != nil {
		return fmt.Errorf("read %s: %w", l.path, err)
	}
	snap, err := Resolve(raw)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", l.path, err)
	}

	l.mu.Lock()
	l.snap = snap
	l.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"path":    l.path,
		"version": snap.Version,
		"banners": len(snap.Banners),
	}).Info("banner config loaded")
	return nil
}

// readYAML loads a YAML file into RawConfig. Missing files return zero cfg, no error.
func readYAML(path string) (RawConfig, error) {
	var cfg RawConfig
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, err
	}
	return cfg, nil
}
