package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry[V any] struct {
	expiresAt time.Time // zero = never
	storedAt  time.Time
	value     V
}

func (e memoryEntry[V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Memory is an in-process cache.
// When MaxEntries is reached, expired entries are purged first and then the oldest entry is dropped.
type Memory[V any] struct {
	items      map[string]memoryEntry[V]
	now        func() time.Time
	defaultTTL time.Duration
	maxEntries int
	mu         sync.Mutex
}

// MemoryOption configures a Memory cache.
type MemoryOption func(*memoryConfig)

type memoryConfig struct {
	now        func() time.Time
	defaultTTL time.Duration
	maxEntries int
}

// WithDefaultTTL sets the TTL used when Set is called with zero.
// Default: 1 minute.
func WithDefaultTTL(d time.Duration) MemoryOption {
	return func(c *memoryConfig) {
		c.defaultTTL = d
	}
}

// WithMaxEntries bounds the number of stored entries. Zero means unbounded.
// Default: 10000.
func WithMaxEntries(n int) MemoryOption {
	return func(c *memoryConfig) {
		c.maxEntries = n
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(c *memoryConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// NewMemory creates an in-memory cache.
//
// Example:
//
//	counts := cache.NewMemory[int](cache.WithDefaultTTL(30 * time.Second))
func NewMemory[V any](opts ...MemoryOption) *Memory[V] {
	cfg := &memoryConfig{
		now:        time.Now,
		defaultTTL: time.Minute,
		maxEntries: 10000,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Memory[V]{
		items:      make(map[string]memoryEntry[V]),
		now:        cfg.now,
		defaultTTL: cfg.defaultTTL,
		maxEntries: cfg.maxEntries,
	}
}

// Get returns the value stored under key.
func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}
	if e.expired(m.now()) {
		delete(m.items, key)
		var zero V
		return zero, ErrNotFound
	}
	return e.value, nil
}

// Set stores value under key.
func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if ttl == 0 {
		ttl = m.defaultTTL
	}

	e := memoryEntry[V]{value: value, storedAt: now}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}

	if _, exists := m.items[key]; !exists && m.maxEntries > 0 && len(m.items) >= m.maxEntries {
		m.evict(now)
	}

	m.items[key] = e
	return nil
}

// Delete removes key.
func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	return nil
}

// Len returns the number of stored entries, including expired ones not yet purged.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.items)
}

// evict must be called with the mutex held.
func (m *Memory[V]) evict(now time.Time) {
	for k, e := range m.items {
		if e.expired(now) {
			delete(m.items, k)
		}
	}
	if len(m.items) < m.maxEntries {
		return
	}

	var (
		oldestKey string
		oldest    time.Time
	)
	for k, e := range m.items {
		if oldestKey == "" || e.storedAt.Before(oldest) {
			oldestKey, oldest = k, e.storedAt
		}
	}
	delete(m.items, oldestKey)
}

var _ Cache[any] = (*Memory[any])(nil)
