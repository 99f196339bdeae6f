package datasource

import (
	"cmp"
	"maps"
	"slices"
	"sync"
)

// MergeByLevel folds a level-indexed table into one record. init seeds the
// record from the lowest level, then add runs for every level in order,
// the lowest included. ok is false when inner is empty.
func MergeByLevel[K cmp.Ordered, T, M any](inner map[K]T, init func(first T) M, add func(m *M, level K, v T)) (merged M, ok bool) {
	if len(inner) == 0 {
		return merged, false
	}
	levels := slices.Sorted(maps.Keys(inner))
	merged = init(inner[levels[0]])
	for _, lv := range levels {
		add(&merged, lv, inner[lv])
	}
	return merged, true
}

type textMap struct {
	once sync.Once
	mu   sync.RWMutex
	m    map[int64]string
}

// TextMap resolves localized string hashes. It is loaded once per process.
var TextMap = &textMap{}

// Init installs m. Only the first call has an effect.
func (t *textMap) Init(m map[int64]string) {
	t.once.Do(func() {
		t.mu.Lock()
		t.m = m
		t.mu.Unlock()
	})
}

// Ready reports whether Init has run.
func (t *textMap) Ready() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.m != nil
}

func (t *textMap) Lookup(hash int64) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.m[hash]
	return s, ok
}
