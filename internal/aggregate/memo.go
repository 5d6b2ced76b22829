package aggregate

import (
	"encoding/json"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// memo is a bounded cache evicting the oldest entry first.
type memo[V any] struct {
	mu    sync.Mutex
	size  int
	order []uint64
	items map[uint64]V
}

func newMemo[V any](size int) *memo[V] {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &memo[V]{
		size:  size,
		order: make([]uint64, 0, size),
		items: make(map[uint64]V, size),
	}
}

func (m *memo[V]) get(key uint64) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok
}

func (m *memo[V]) put(key uint64, v V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[key]; ok {
		m.items[key] = v
		return
	}
	if len(m.order) >= m.size {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.items, oldest)
	}
	m.order = append(m.order, key)
	m.items[key] = v
}

func (m *memo[V]) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// digest hashes the canonical JSON encoding of parts. A nil slice encodes as
// null and an empty one as [], so "not loaded" and "loaded, empty" never collide.
func digest(parts ...any) (uint64, error) {
	h := xxhash.New()
	enc := json.NewEncoder(h)
	for _, p := range parts {
		if err := enc.Encode(p); err != nil {
			return 0, err
		}
	}
	return h.Sum64(), nil
}
