package kvstore

import (
	"context"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMemoryCapacity bounds the number of keys a MemoryBackend admits.
const DefaultMemoryCapacity = 1024

// MemoryBackend keeps entries in process memory. It refuses new keys once
// capacity is reached instead of evicting, the way a browser storage quota
// behaves.
type MemoryBackend struct {
	mu       sync.Mutex
	cache    *lru.Cache[string, string]
	capacity int
}

func NewMemoryBackend(capacity int) (*MemoryBackend, error) {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	cache, err := lru.New[string, string](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create memory backend: %w", err)
	}
	return &MemoryBackend{cache: cache, capacity: capacity}, nil
}

func (m *MemoryBackend) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.cache.Peek(key)
	return v, ok, nil
}

func (m *MemoryBackend) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.cache.Contains(key) && m.cache.Len() >= m.capacity {
		return fmt.Errorf("%w: %d keys", ErrQuotaExceeded, m.capacity)
	}
	m.cache.Add(key, value)
	return nil
}

func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	m.cache.Remove(key)
	return nil
}

func (m *MemoryBackend) Keys(_ context.Context) ([]string, error) {
	return m.cache.Keys(), nil
}

func (m *MemoryBackend) Clear(_ context.Context) error {
	m.cache.Purge()
	return nil
}

// Len returns the number of stored keys.
func (m *MemoryBackend) Len() int {
	return m.cache.Len()
}
