package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/orris-inc/socialdash/internal/infrastructure/metrics"
	"github.com/orris-inc/socialdash/internal/shared/biztime"
	"github.com/orris-inc/socialdash/internal/shared/logger"
)

// DefaultTTL applies when Set is called with a non-positive ttl.
const DefaultTTL = 24 * time.Hour

// Store layers JSON encoding and expiry over a Backend. Reads never fail:
// anything that cannot be decoded is reported as absent.
type Store struct {
	backend    Backend
	clock      biztime.Clock
	defaultTTL time.Duration
	logger     logger.Interface
}

type Option func(*Store)

func WithClock(clock biztime.Clock) Option {
	return func(s *Store) { s.clock = clock }
}

func WithDefaultTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.defaultTTL = ttl
		}
	}
}

func WithLogger(log logger.Interface) Option {
	return func(s *Store) { s.logger = log }
}

// NewStore creates a Store over backend.
func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend:    backend,
		clock:      biztime.SystemClock(),
		defaultTTL: DefaultTTL,
		logger:     logger.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set writes value under key. A ttl <= 0 uses the store default.
func (s *Store) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: failed to encode %q: %v", ErrIOFailure, key, err)
	}

	raw, err := json.Marshal(newEnvelope(data, s.clock.Now(), ttl))
	if err != nil {
		return fmt.Errorf("%w: failed to encode envelope for %q: %v", ErrIOFailure, key, err)
	}

	if err := s.backend.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("%w: failed to write %q: %w", ErrIOFailure, key, err)
	}
	return nil
}

// Get decodes the live entry under key into dest and reports whether it did.
// Expired entries are deleted as a side effect.
func (s *Store) Get(ctx context.Context, key string, dest any) bool {
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		metrics.StoreReadFailures.WithLabelValues(metrics.ReasonBackend).Inc()
		s.logger.Warnw("failed to read storage entry", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}

	env, err := decodeEnvelope(raw)
	if err != nil {
		metrics.StoreReadFailures.WithLabelValues(metrics.ReasonEnvelope).Inc()
		s.logger.Warnw("ignoring unreadable storage entry", "key", key, "error", err)
		return false
	}

	if env.expired(s.clock.Now()) {
		metrics.StoreExpired.Inc()
		if err := s.backend.Delete(ctx, key); err != nil {
			s.logger.Warnw("failed to delete expired storage entry", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(env.Data, dest); err != nil {
		metrics.StoreReadFailures.WithLabelValues(metrics.ReasonPayload).Inc()
		s.logger.Warnw("failed to decode storage payload", "key", key, "error", err)
		return false
	}
	return true
}

// Remove deletes key. Removing a missing key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.backend.Delete(ctx, key); err != nil {
		return fmt.Errorf("%w: failed to delete %q: %w", ErrIOFailure, key, err)
	}
	return nil
}

// Sweep deletes every expired entry and returns how many were removed.
// Entries that cannot be parsed are left alone.
func (s *Store) Sweep(ctx context.Context) (int, error) {
	keys, err := s.backend.Keys(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to list keys: %w", ErrIOFailure, err)
	}

	now := s.clock.Now()
	removed := 0
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		raw, ok, err := s.backend.Get(ctx, key)
		if err != nil {
			s.logger.Warnw("sweep skipped unreadable key", "key", key, "error", err)
			continue
		}
		if !ok {
			continue
		}

		env, err := decodeEnvelope(raw)
		if err != nil || !env.expired(now) {
			continue
		}

		if err := s.backend.Delete(ctx, key); err != nil {
			return removed, fmt.Errorf("%w: failed to delete %q: %w", ErrIOFailure, key, err)
		}
		removed++
	}

	if removed > 0 {
		metrics.StoreSweepRemoved.Add(float64(removed))
		s.logger.Infow("expired storage entries removed", "count", removed)
	}
	return removed, nil
}

// Execute runs Sweep so the store can be scheduled as a batch job.
func (s *Store) Execute(ctx context.Context) (int, error) {
	return s.Sweep(ctx)
}

// ClearAll removes every entry of the namespace.
func (s *Store) ClearAll(ctx context.Context) error {
	if err := s.backend.Clear(ctx); err != nil {
		return fmt.Errorf("%w: failed to clear storage: %w", ErrIOFailure, err)
	}
	s.logger.Infow("storage cleared")
	return nil
}
