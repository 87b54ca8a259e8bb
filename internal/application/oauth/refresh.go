package oauth

import (
	"context"

	"github.com/orris-inc/socialdash/internal/infrastructure/metrics"
)

// RefreshToken issues a new token pair for the account of platformID,
// valid for the configured token lifetime from now. False means the
// platform is not connected.
func (s *Service) RefreshToken(ctx context.Context, platformID string) (bool, error) {
	if err := s.sleeper.Sleep(ctx, s.cfg.RefreshDelay); err != nil {
		return false, err
	}

	if !s.accounts.IsConnected(ctx, platformID) {
		metrics.AccountOperations.WithLabelValues("refresh", "not_connected").Inc()
		return false, nil
	}

	access, refresh := s.generator.NewTokens(platformID)
	// Read after the refresh delay: expiry is one lifetime past completion,
	// not past the call.
	expiresAt := s.clock.Now().Add(s.cfg.TokenLifetime)

	updated, err := s.accounts.UpdateTokens(ctx, platformID, access, refresh, expiresAt)
	if err != nil {
		metrics.AccountOperations.WithLabelValues("refresh", "error").Inc()
		return false, err
	}
	if !updated {
		metrics.AccountOperations.WithLabelValues("refresh", "not_connected").Inc()
		return false, nil
	}

	metrics.AccountOperations.WithLabelValues("refresh", "refreshed").Inc()
	s.logger.Infow("account tokens refreshed", "platform", platformID, "expires_at", expiresAt)
	return true, nil
}
