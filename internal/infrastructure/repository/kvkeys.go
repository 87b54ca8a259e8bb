package repository

import (
	"context"
	"time"
)

// Storage keys. Each key expires independently.
const (
	KeyConnectedAccounts = "connected_social_accounts"
	KeyAuthState         = "auth_state"
	KeyPosts             = "social_media_posts"
	KeyMedia             = "social_media_media"
	KeyUserSettings      = "user_settings"
	KeyAPIKeys           = "social_media_api_keys"
)

// KVStore is the subset of kvstore.Store the repositories need.
type KVStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string, dest any) bool
	Remove(ctx context.Context, key string) error
}
