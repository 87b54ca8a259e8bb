package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/orris-inc/socialdash/internal/domain/account"
	"github.com/orris-inc/socialdash/internal/domain/platform"
	"github.com/orris-inc/socialdash/internal/shared/logger"
	"github.com/orris-inc/socialdash/internal/shared/mapper"
)

var _ account.Repository = (*AccountRepository)(nil)

// AccountRepository implements account.Repository over a single store key.
type AccountRepository struct {
	accounts *kvCollection[*account.ConnectedAccount]
	registry *platform.Registry
	logger   logger.Interface
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(store KVStore, registry *platform.Registry, ttl time.Duration, logger logger.Interface) *AccountRepository {
	return &AccountRepository{
		accounts: newKVCollection[*account.ConnectedAccount](store, KeyConnectedAccounts, ttl),
		registry: registry,
		logger:   logger,
	}
}

func (r *AccountRepository) List(ctx context.Context) []*account.ConnectedAccount {
	return mapper.Filter(r.accounts.load(ctx), func(a *account.ConnectedAccount) bool {
		return a != nil
	})
}

func (r *AccountRepository) FindByPlatform(ctx context.Context, platformID string) (*account.ConnectedAccount, bool) {
	return mapper.Find(r.List(ctx), func(a *account.ConnectedAccount) bool {
		return a.Platform == platformID
	})
}

func (r *AccountRepository) IsConnected(ctx context.Context, platformID string) bool {
	_, ok := r.FindByPlatform(ctx, platformID)
	return ok
}

// Upsert removes any account of platformID and appends acct in one write.
func (r *AccountRepository) Upsert(ctx context.Context, platformID string, acct *account.ConnectedAccount) (account.UpsertResult, error) {
	if !r.registry.Has(platformID) {
		return 0, fmt.Errorf("%w: %s", platform.ErrPlatformNotFound, platformID)
	}
	if acct == nil || acct.Platform != platformID {
		return 0, account.ErrPlatformMismatch
	}

	r.accounts.mu.Lock()
	defer r.accounts.mu.Unlock()

	result := account.Inserted
	next := make([]*account.ConnectedAccount, 0, 4)
	for _, a := range r.List(ctx) {
		if a.Platform == platformID {
			result = account.Replaced
			continue
		}
		next = append(next, a)
	}
	next = append(next, acct.Clone())

	if err := r.accounts.save(ctx, next); err != nil {
		r.logger.Errorw("failed to save connected account", "platform", platformID, "error", err)
		return 0, fmt.Errorf("failed to save connected account: %w", err)
	}

	r.logger.Infow("connected account stored", "platform", platformID, "account_id", acct.ID, "result", result.String())
	return result, nil
}

func (r *AccountRepository) Remove(ctx context.Context, platformID string) (bool, error) {
	r.accounts.mu.Lock()
	defer r.accounts.mu.Unlock()

	current := r.List(ctx)
	next := make([]*account.ConnectedAccount, 0, len(current))
	for _, a := range current {
		if a.Platform != platformID {
			next = append(next, a)
		}
	}
	if len(next) == len(current) {
		return false, nil
	}

	if err := r.accounts.save(ctx, next); err != nil {
		r.logger.Errorw("failed to remove connected account", "platform", platformID, "error", err)
		return false, fmt.Errorf("failed to remove connected account: %w", err)
	}
	return true, nil
}

func (r *AccountRepository) UpdateTokens(ctx context.Context, platformID, accessToken, refreshToken string, expiresAt time.Time) (bool, error) {
	r.accounts.mu.Lock()
	defer r.accounts.mu.Unlock()

	current := r.List(ctx)
	found := false
	for _, a := range current {
		if a.Platform == platformID {
			a.AccessToken = accessToken
			a.RefreshToken = refreshToken
			a.ExpiresAt = expiresAt
			found = true
			break
		}
	}
	if !found {
		return false, nil
	}

	if err := r.accounts.save(ctx, current); err != nil {
		r.logger.Errorw("failed to update account tokens", "platform", platformID, "error", err)
		return false, fmt.Errorf("failed to update account tokens: %w", err)
	}
	return true, nil
}
