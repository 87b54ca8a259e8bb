package handlers

import (
	"context"

	"github.com/orris-inc/socialdash/internal/application/oauth"
	"github.com/orris-inc/socialdash/internal/domain/account"
	"github.com/orris-inc/socialdash/internal/domain/platform"
)

// Service interfaces for OAuthHandler

type oauthService interface {
	InitiateOAuth(ctx context.Context, platformID string) (*oauth.InitiateResult, error)
	SimulateOAuthCallback(ctx context.Context, platformID, code, state string) (*oauth.CallbackResult, error)
	DisconnectAccount(ctx context.Context, platformID string) (bool, error)
	RefreshToken(ctx context.Context, platformID string) (bool, error)
	PendingFlow(ctx context.Context) *oauth.PendingFlow
	Accounts(ctx context.Context) []*account.ConnectedAccount
	Account(ctx context.Context, platformID string) (*account.ConnectedAccount, bool)
}

type platformCatalog interface {
	All() []platform.Platform
	ByID(id string) (platform.Platform, bool)
}
