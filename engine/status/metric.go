package status

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
)

// AtomicFloat is a float64 stored as atomic bits
type AtomicFloat struct {
	bits atomic.Uint64
}

// Load returns the current value
func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Store sets the current value
func (f *AtomicFloat) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

// MetricMap holds named metric cells of one type
// Get returns a stable pointer; callers cache it and write without further lookups
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// NewMetricMap creates an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric cell for key, creating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	v, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return v
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok = m.items[key]; ok {
		return v
	}
	v = new(T)
	m.items[key] = v
	return v
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Keys returns registered metric names in sorted order
func (m *MetricMap[T]) Keys() []string {
	m.mu.RLock()
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	m.mu.RUnlock()
	sort.Strings(keys)
	return keys
}
