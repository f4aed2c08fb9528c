// Package cache memoizes derived results keyed by a hash of the snapshot
// they were computed from.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Memo is a bounded, concurrency-safe memo table. Concurrent requests for the
// same key share one computation. When full, the oldest entry is evicted.
type Memo[V any] struct {
	mu      sync.Mutex
	max     int
	entries map[string]V
	order   []string
	group   singleflight.Group
}

// NewMemo returns a memo holding at most max entries. A max of 0 disables
// storage; calls still compute and share in-flight work.
func NewMemo[V any](max int) *Memo[V] {
	return &Memo[V]{
		max:     max,
		entries: make(map[string]V),
	}
}

// Key hashes the given byte slices into a memo key.
func Key(parts ...[]byte) string {
	h := sha256.New()
	for _, p := range parts {
		// hash.Hash writes never return an error.
		_, _ = h.Write(p)
		_, _ = h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the memoized value for key, computing it when absent. The
// boolean reports whether the value came from the table.
func (m *Memo[V]) Get(key string, compute func() (V, error)) (V, bool, error) {
	if v, ok := m.lookup(key); ok {
		return v, true, nil
	}

	res, err, _ := m.group.Do(key, func() (interface{}, error) {
		if v, ok := m.lookup(key); ok {
			return v, nil
		}
		v, err := compute()
		if err != nil {
			return v, err
		}
		m.store(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, false, err
	}
	return res.(V), false, nil
}

func (m *Memo[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Memo[V]) lookup(key string) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return v, ok
}

func (m *Memo[V]) store(key string, v V) {
	if m.max <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; ok {
		return
	}
	for len(m.order) >= m.max {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.entries, oldest)
	}
	m.entries[key] = v
	m.order = append(m.order, key)
}
