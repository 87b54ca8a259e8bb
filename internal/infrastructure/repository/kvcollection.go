package repository

import (
	"context"
	"sync"
	"time"
)

// kvCollection persists a whole slice under one key. Callers hold mu around
// every read-modify-write; it only serialises writers in this process.
type kvCollection[T any] struct {
	mu    sync.Mutex
	store KVStore
	key   string
	ttl   time.Duration
}

func newKVCollection[T any](store KVStore, key string, ttl time.Duration) *kvCollection[T] {
	return &kvCollection[T]{store: store, key: key, ttl: ttl}
}

// load returns the stored items, or an empty slice when the key is absent.
func (c *kvCollection[T]) load(ctx context.Context) []T {
	var items []T
	if !c.store.Get(ctx, c.key, &items) || items == nil {
		return []T{}
	}
	return items
}

func (c *kvCollection[T]) save(ctx context.Context, items []T) error {
	return c.store.Set(ctx, c.key, items, c.ttl)
}
