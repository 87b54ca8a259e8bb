package account

import (
	"context"
	"time"
)

// Repository persists connected accounts.
type Repository interface {
	// List returns every connected account in insertion order.
	List(ctx context.Context) []*ConnectedAccount

	// FindByPlatform returns the account connected for platformID.
	FindByPlatform(ctx context.Context, platformID string) (*ConnectedAccount, bool)

	// IsConnected reports whether an account exists for platformID.
	IsConnected(ctx context.Context, platformID string) bool

	// Upsert stores acct as the single account for platformID, replacing any
	// existing one.
	Upsert(ctx context.Context, platformID string, acct *ConnectedAccount) (UpsertResult, error)

	// Remove deletes the account for platformID. It returns false when none existed.
	Remove(ctx context.Context, platformID string) (bool, error)

	// UpdateTokens replaces the token triple of the account for platformID.
	// It returns false when no account is connected.
	UpdateTokens(ctx context.Context, platformID, accessToken, refreshToken string, expiresAt time.Time) (bool, error)
}
