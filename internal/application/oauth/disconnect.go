package oauth

import (
	"context"

	"github.com/orris-inc/socialdash/internal/infrastructure/metrics"
)

// DisconnectAccount removes the account of platformID. False means there
// was nothing to disconnect.
func (s *Service) DisconnectAccount(ctx context.Context, platformID string) (bool, error) {
	if err := s.delay(ctx, s.cfg.DisconnectDelayMin, s.cfg.DisconnectDelayMax); err != nil {
		return false, err
	}

	removed, err := s.accounts.Remove(ctx, platformID)
	if err != nil {
		metrics.AccountOperations.WithLabelValues("disconnect", "error").Inc()
		return false, err
	}

	outcome := "not_connected"
	if removed {
		outcome = "removed"
		s.logger.Infow("account disconnected", "platform", platformID)
	}
	metrics.AccountOperations.WithLabelValues("disconnect", outcome).Inc()
	return removed, nil
}
