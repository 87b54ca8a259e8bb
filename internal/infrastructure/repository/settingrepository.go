package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/orris-inc/socialdash/internal/domain/setting"
)

var (
	_ setting.Repository       = (*SettingRepository)(nil)
	_ setting.APIKeyRepository = (*APIKeyRepository)(nil)
)

// SettingRepository implements setting.Repository.
type SettingRepository struct {
	store KVStore
	ttl   time.Duration
}

func NewSettingRepository(store KVStore, ttl time.Duration) *SettingRepository {
	return &SettingRepository{store: store, ttl: ttl}
}

func (r *SettingRepository) Load(ctx context.Context) (setting.UserSettings, bool) {
	var s setting.UserSettings
	if !r.store.Get(ctx, KeyUserSettings, &s) {
		return setting.UserSettings{}, false
	}
	return s, true
}

func (r *SettingRepository) Save(ctx context.Context, s setting.UserSettings) error {
	if err := r.store.Set(ctx, KeyUserSettings, s, r.ttl); err != nil {
		return fmt.Errorf("failed to save user settings: %w", err)
	}
	return nil
}

// APIKeyRepository implements setting.APIKeyRepository.
type APIKeyRepository struct {
	store KVStore
	ttl   time.Duration
}

func NewAPIKeyRepository(store KVStore, ttl time.Duration) *APIKeyRepository {
	return &APIKeyRepository{store: store, ttl: ttl}
}

func (r *APIKeyRepository) Load(ctx context.Context) (setting.APIKeys, bool) {
	var keys setting.APIKeys
	if !r.store.Get(ctx, KeyAPIKeys, &keys) || keys == nil {
		return nil, false
	}
	return keys, true
}

func (r *APIKeyRepository) Save(ctx context.Context, keys setting.APIKeys) error {
	if err := r.store.Set(ctx, KeyAPIKeys, keys, r.ttl); err != nil {
		return fmt.Errorf("failed to save api keys: %w", err)
	}
	return nil
}
