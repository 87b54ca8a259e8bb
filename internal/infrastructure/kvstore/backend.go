// Package kvstore implements a JSON key/value store whose entries expire
// after a per-entry time-to-live. Entries are kept in a pluggable string
// byte-store (memory, Redis or SQLite).
package kvstore

import (
	"context"
	"errors"
)

var (
	// ErrIOFailure wraps every failure to write to or delete from the backend.
	ErrIOFailure = errors.New("storage io failure")

	// ErrQuotaExceeded is returned by capacity-bounded backends when a new key
	// cannot be admitted.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Backend is a namespaced string byte-store. Implementations must be safe for
// concurrent use. Get reports a missing key with ok=false and a nil error.
type Backend interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}
