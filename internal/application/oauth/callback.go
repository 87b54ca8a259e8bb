package oauth

import (
	"context"
	"errors"
	"fmt"

	"github.com/orris-inc/socialdash/internal/domain/account"
	"github.com/orris-inc/socialdash/internal/infrastructure/metrics"
	"github.com/orris-inc/socialdash/internal/infrastructure/mockdata"
	"github.com/orris-inc/socialdash/internal/shared/random"
)

// SimulateOAuthCallback plays the provider redirect and token exchange.
// Expected failures come back as a CallbackResult with Success=false; an
// error is returned only for storage failures or ctx cancellation.
//
// code is accepted for interface fidelity and ignored.
func (s *Service) SimulateOAuthCallback(ctx context.Context, platformID, code, stateToken string) (*CallbackResult, error) {
	if err := s.delay(ctx, s.cfg.CallbackDelayMin, s.cfg.CallbackDelayMax); err != nil {
		return nil, err
	}

	pending, ok := s.states.Load(ctx)
	if !ok || !pending.Matches(platformID, stateToken) {
		s.logger.Warnw("oauth callback rejected", "platform", platformID, "reason", FailureInvalidAuthState)
		return s.recordFailure(platformID, failure(FailureInvalidAuthState, MsgInvalidAuthState)), nil
	}

	// From here on the state is spent whatever the outcome.
	if err := s.states.Delete(ctx); err != nil {
		s.logger.Errorw("failed to consume auth state", "platform", platformID, "error", err)
		return nil, err
	}

	if s.cfg.FailureRate > 0 && random.Chance(s.src, s.cfg.FailureRate) {
		reason := s.cfg.RejectionReasons[s.src.IntN(len(s.cfg.RejectionReasons))]
		s.logger.Infow("simulated provider rejection", "platform", platformID, "reason", reason)
		return s.recordFailure(platformID, failure(FailureProviderRejection, reason)), nil
	}

	p, ok := s.registry.ByID(platformID)
	if !ok {
		return s.recordFailure(platformID, failure(FailurePlatformNotFound, "Platform not found")), nil
	}

	acct, err := s.generator.Generate(p.ID, p.DisplayName)
	if err != nil {
		if errors.Is(err, mockdata.ErrUnknownPlatform) {
			return s.recordFailure(platformID, failure(FailurePlatformNotFound, "Platform not found")), nil
		}
		return nil, fmt.Errorf("failed to generate account: %w", err)
	}

	result, err := s.accounts.Upsert(ctx, p.ID, acct)
	if err != nil {
		metrics.AccountOperations.WithLabelValues("upsert", "error").Inc()
		return nil, err
	}
	metrics.AccountOperations.WithLabelValues("upsert", result.String()).Inc()
	metrics.OAuthCallbacks.WithLabelValues(p.ID, string(FlowSucceeded)).Inc()

	s.logger.Infow("account connected",
		"platform", p.ID,
		"account_id", acct.ID,
		"username", acct.Username,
		"replaced", result == account.Replaced,
	)

	return &CallbackResult{
		Success:   true,
		Account:   acct,
		Replaced:  result == account.Replaced,
		FlowState: FlowSucceeded,
	}, nil
}

func (s *Service) recordFailure(platformID string, res *CallbackResult) *CallbackResult {
	metrics.OAuthCallbacks.WithLabelValues(s.platformLabel(platformID), string(res.FailureKind)).Inc()
	return res
}

// platformLabel keeps the platform label bounded to the registry.
func (s *Service) platformLabel(platformID string) string {
	if s.registry.Has(platformID) {
		return platformID
	}
	return metrics.PlatformUnknown
}
