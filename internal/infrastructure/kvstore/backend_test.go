package kvstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "kv.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func backends() map[string]func(t *testing.T, namespace string) Backend {
	return map[string]func(t *testing.T, namespace string) Backend{
		"memory": func(t *testing.T, _ string) Backend {
			b, err := NewMemoryBackend(8)
			require.NoError(t, err)
			return b
		},
		"redis": func(t *testing.T, namespace string) Backend {
			_, client := setupTestRedis(t)
			return NewRedisBackend(client, namespace)
		},
		"sqlite": func(t *testing.T, namespace string) Backend {
			b, err := NewSQLBackend(setupTestDB(t), namespace)
			require.NoError(t, err)
			return b
		},
	}
}

func TestBackendConformance(t *testing.T) {
	for name, build := range backends() {
		t.Run(name, func(t *testing.T) {
			b := build(t, "test:")
			ctx := context.Background()

			_, ok, err := b.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, b.Set(ctx, "a", "1"))
			require.NoError(t, b.Set(ctx, "b", "2"))
			require.NoError(t, b.Set(ctx, "a", "3"))

			v, ok, err := b.Get(ctx, "a")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "3", v)

			keys, err := b.Keys(ctx)
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"a", "b"}, keys)

			require.NoError(t, b.Delete(ctx, "a"))
			require.NoError(t, b.Delete(ctx, "a"))
			_, ok, err = b.Get(ctx, "a")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, b.Clear(ctx))
			keys, err = b.Keys(ctx)
			require.NoError(t, err)
			assert.Empty(t, keys)
		})
	}
}

func TestRedisBackendIsolatesNamespace(t *testing.T) {
	mr, client := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("other:key", "untouched"))
	b := NewRedisBackend(client, "dash:")
	require.NoError(t, b.Set(ctx, "key", "mine"))

	assert.Equal(t, "mine", must(mr.Get("dash:key")))

	require.NoError(t, b.Clear(ctx))
	assert.True(t, mr.Exists("other:key"))
	assert.False(t, mr.Exists("dash:key"))
}

func TestSQLBackendIsolatesNamespace(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	first, err := NewSQLBackend(db, "one")
	require.NoError(t, err)
	second, err := NewSQLBackend(db, "two")
	require.NoError(t, err)

	require.NoError(t, first.Set(ctx, "k", "1"))
	require.NoError(t, second.Set(ctx, "k", "2"))
	require.NoError(t, first.Clear(ctx))

	v, ok, err := second.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestStoreOverRedisExpiry(t *testing.T) {
	_, client := setupTestRedis(t)
	s, _, clock := newTestStoreOver(t, NewRedisBackend(client, "dash:"))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "v", time.Minute))
	clock.Advance(time.Minute)

	removed, err := s.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func must(v string, err error) string {
	if err != nil {
		panic(err)
	}
	return v
}
