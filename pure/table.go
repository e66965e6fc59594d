package pure

import "sync"

// Table memoizes values of a pure function by a comparable key.
// Entries are never evicted; a table lives as long as its owner.
type Table[K comparable, V any] struct {
	mu    sync.RWMutex
	memos map[K]V
}

// NewTable returns an empty table.
func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{
		memos: map[K]V{},
	}
}

func (t *Table[K, V]) Load(key K) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.memos[key]
	return v, ok
}

func (t *Table[K, V]) Store(key K, value V) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.memos[key] = value
}

// Len returns the number of distinct keys stored.
func (t *Table[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.memos)
}
