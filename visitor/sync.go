package visitor

import "sync"

// SyncMap is a thread-safe map
type SyncMap[K comparable, V any] struct {
	m   map[K]V
	mux sync.RWMutex
}

// Get returns a value from the map
func (m *SyncMap[K, V]) Get(k K) (V, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	v, ok := m.m[k]
	return v, ok
}

// Put adds a value to the map
func (m *SyncMap[K, V]) Put(k K, v V) {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.m[k] = v
}

// GetOrCreate returns cached value or stores the one returned by create, errors are not cached
func (m *SyncMap[K, V]) GetOrCreate(k K, create func() (V, error)) (V, error) {
	if v, ok := m.Get(k); ok {
		return v, nil
	}
	v, err := create()
	if err != nil {
		return v, err
	}
	m.mux.Lock()
	defer m.mux.Unlock()
	if prev, ok := m.m[k]; ok {
		return prev, nil
	}
	m.m[k] = v
	return v, nil
}

// Len returns number of entries
func (m *SyncMap[K, V]) Len() int {
	m.mux.RLock()
	defer m.mux.RUnlock()
	return len(m.m)
}

func NewSyncMap[K comparable, V any]() *SyncMap[K, V] {
	return &SyncMap[K, V]{m: make(map[K]V)}
}
