package kvstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/orris-inc/socialdash/internal/infrastructure/database"
	"github.com/orris-inc/socialdash/internal/shared/biztime"
	"github.com/orris-inc/socialdash/internal/shared/config"
	"github.com/orris-inc/socialdash/internal/shared/logger"
)

// Settings selects and configures the byte-store behind a Store.
type Settings struct {
	Storage  config.StorageConfig
	Redis    config.RedisConfig
	Database config.DatabaseConfig
}

// Handle is an opened Store together with the connections it owns.
type Handle struct {
	Store *Store
	// Redis is set only for the redis backend.
	Redis   *redis.Client
	closers []func() error
}

// Close releases the backend connections.
func (h *Handle) Close() error {
	var firstErr error
	for i := len(h.closers) - 1; i >= 0; i-- {
		if err := h.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	h.closers = nil
	return firstErr
}

// Open connects the configured backend and wraps it in a Store.
func Open(ctx context.Context, s Settings, clock biztime.Clock, log logger.Interface) (*Handle, error) {
	h := &Handle{}

	var backend Backend
	switch s.Storage.Backend {
	case config.StorageBackendMemory, "":
		mem, err := NewMemoryBackend(s.Storage.MemoryCapacity)
		if err != nil {
			return nil, err
		}
		backend = mem

	case config.StorageBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     s.Redis.GetAddr(),
			Password: s.Redis.Password,
			DB:       s.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		log.Infow("redis connection established", "address", s.Redis.GetAddr())
		h.Redis = client
		h.closers = append(h.closers, client.Close)
		backend = NewRedisBackend(client, s.Storage.Namespace)

	case config.StorageBackendSQLite:
		db, err := database.Open(&s.Database, log)
		if err != nil {
			return nil, err
		}
		h.closers = append(h.closers, func() error { return database.Close(db) })
		sqlBackend, err := NewSQLBackend(db, s.Storage.Namespace)
		if err != nil {
			_ = h.Close()
			return nil, err
		}
		backend = sqlBackend

	default:
		return nil, fmt.Errorf("unsupported storage backend %q", s.Storage.Backend)
	}

	h.Store = NewStore(backend,
		WithClock(clock),
		WithDefaultTTL(s.Storage.DefaultTTL),
		WithLogger(log),
	)
	log.Infow("key/value store opened", "backend", s.Storage.Backend, "namespace", s.Storage.Namespace)
	return h, nil
}
