package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"

	"github.com/orris-inc/socialdash/internal/shared/errors"
	"github.com/orris-inc/socialdash/internal/shared/utils"
)

// Counter increments the hit count of a fixed window key.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisCounter shares window counters between instances through Redis.
type RedisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	// Set TTL on the key for the first request in this window
	if count == 1 {
		r.client.Expire(ctx, key, window+time.Second)
	}
	return count, nil
}

// MemoryCounter keeps window counters in a process-local expiring LRU.
type MemoryCounter struct {
	cache *expirable.LRU[string, int64]
}

func NewMemoryCounter(size int, window time.Duration) *MemoryCounter {
	return &MemoryCounter{cache: expirable.NewLRU[string, int64](size, nil, window+time.Second)}
}

func (m *MemoryCounter) Incr(_ context.Context, key string, _ time.Duration) (int64, error) {
	count, _ := m.cache.Get(key)
	count++
	m.cache.Add(key, count)
	return count, nil
}

// RateLimiter provides IP rate limiting using a fixed-window counter.
type RateLimiter struct {
	counter Counter
	limit   int
	window  time.Duration
}

// NewRateLimiter creates a rate limiter.
// limit is the maximum number of requests allowed per window.
// window is the duration of the fixed time window.
func NewRateLimiter(counter Counter, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counter: counter,
		limit:   limit,
		window:  window,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		windowBucket := time.Now().Unix() / int64(rl.window.Seconds())
		key := fmt.Sprintf("ratelimit:ip:%s:%d", clientIP, windowBucket)

		count, err := rl.counter.Incr(c.Request.Context(), key, rl.window)
		if err != nil {
			// Counter unavailable: let the request through.
			c.Next()
			return
		}

		remaining := max(int64(rl.limit)-count, 0)
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(rl.limit) {
			utils.ErrorResponseWithError(c, errors.NewRateLimitError("rate limit exceeded, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
