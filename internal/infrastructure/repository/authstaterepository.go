package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/orris-inc/socialdash/internal/domain/authstate"
)

var _ authstate.Repository = (*AuthStateRepository)(nil)

// AuthStateRepository keeps the single pending AuthState. Writes are
// last-writer-wins with no locking.
type AuthStateRepository struct {
	store KVStore
	ttl   time.Duration
}

func NewAuthStateRepository(store KVStore, ttl time.Duration) *AuthStateRepository {
	return &AuthStateRepository{store: store, ttl: ttl}
}

func (r *AuthStateRepository) Save(ctx context.Context, state *authstate.AuthState) error {
	if err := r.store.Set(ctx, KeyAuthState, state, r.ttl); err != nil {
		return fmt.Errorf("failed to save auth state: %w", err)
	}
	return nil
}

func (r *AuthStateRepository) Load(ctx context.Context) (*authstate.AuthState, bool) {
	var state authstate.AuthState
	if !r.store.Get(ctx, KeyAuthState, &state) || state.Token == "" {
		return nil, false
	}
	return &state, true
}

func (r *AuthStateRepository) Delete(ctx context.Context) error {
	if err := r.store.Remove(ctx, KeyAuthState); err != nil {
		return fmt.Errorf("failed to delete auth state: %w", err)
	}
	return nil
}
