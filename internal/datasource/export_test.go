package datasource

import "sync"

func (t *textMap) reset() {
	t.mu.Lock()
	t.m = nil
	t.once = sync.Once{}
	t.mu.Unlock()
}
