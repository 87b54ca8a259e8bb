package oauth

import (
	"context"
	"fmt"

	"github.com/orris-inc/socialdash/internal/domain/authstate"
	"github.com/orris-inc/socialdash/internal/domain/platform"
	"github.com/orris-inc/socialdash/internal/infrastructure/metrics"
	"github.com/orris-inc/socialdash/internal/shared/id"
)

// InitiateOAuth starts a flow for platformID and returns the authorization
// URL with its state token. Any earlier pending initiation is superseded.
func (s *Service) InitiateOAuth(ctx context.Context, platformID string) (*InitiateResult, error) {
	p, ok := s.registry.ByID(platformID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", platform.ErrPlatformNotFound, platformID)
	}

	token := id.NewStateToken(s.src)
	state := &authstate.AuthState{
		Platform:  p.ID,
		Token:     token,
		CreatedAt: s.clock.Now(),
	}
	if err := s.states.Save(ctx, state); err != nil {
		s.logger.Errorw("failed to persist auth state", "platform", p.ID, "error", err)
		return nil, err
	}

	metrics.OAuthFlows.WithLabelValues(p.ID).Inc()
	s.logger.Infow("oauth flow initiated", "platform", p.ID)

	return &InitiateResult{
		Platform:  p.ID,
		AuthURL:   s.urls.AuthURL(p, token),
		State:     token,
		FlowState: FlowInitiated,
	}, nil
}
