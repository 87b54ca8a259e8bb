// Package oauth simulates the OAuth authorization-code flow of the supported
// social platforms. No network call is made: provider latency, rejections
// and profile data are all generated locally.
package oauth

import (
	"context"
	"time"

	"github.com/orris-inc/socialdash/internal/domain/account"
	"github.com/orris-inc/socialdash/internal/domain/authstate"
	"github.com/orris-inc/socialdash/internal/domain/platform"
	"github.com/orris-inc/socialdash/internal/shared/biztime"
	"github.com/orris-inc/socialdash/internal/shared/config"
	"github.com/orris-inc/socialdash/internal/shared/logger"
	"github.com/orris-inc/socialdash/internal/shared/random"
)

// AccountGenerator fabricates provider profile data.
type AccountGenerator interface {
	Generate(platformID, platformName string) (*account.ConnectedAccount, error)
	NewTokens(platformID string) (accessToken, refreshToken string)
}

// AuthURLBuilder renders the provider authorization URL.
type AuthURLBuilder interface {
	AuthURL(p platform.Platform, state string) string
}

// Service is the OAuth simulation engine.
type Service struct {
	registry  *platform.Registry
	accounts  account.Repository
	states    authstate.Repository
	generator AccountGenerator
	urls      AuthURLBuilder
	cfg       config.SimulationConfig
	logger    logger.Interface

	src     random.Source
	clock   biztime.Clock
	sleeper Sleeper
}

type Option func(*Service)

func WithRandom(src random.Source) Option {
	return func(s *Service) { s.src = src }
}

func WithClock(clock biztime.Clock) Option {
	return func(s *Service) { s.clock = clock }
}

func WithSleeper(sleeper Sleeper) Option {
	return func(s *Service) { s.sleeper = sleeper }
}

// NewService creates a new Service
func NewService(
	registry *platform.Registry,
	accounts account.Repository,
	states authstate.Repository,
	generator AccountGenerator,
	urls AuthURLBuilder,
	cfg config.SimulationConfig,
	logger logger.Interface,
	opts ...Option,
) *Service {
	s := &Service{
		registry:  registry,
		accounts:  accounts,
		states:    states,
		generator: generator,
		urls:      urls,
		cfg:       cfg,
		logger:    logger,
		src:       random.New(),
		clock:     biztime.SystemClock(),
		sleeper:   TimerSleeper(),
	}
	for _, opt := range opts {
		opt(s)
	}
	defaults := config.DefaultSimulationConfig()
	if s.cfg.TokenLifetime <= 0 {
		s.cfg.TokenLifetime = defaults.TokenLifetime
	}
	if len(s.cfg.RejectionReasons) == 0 {
		s.cfg.RejectionReasons = defaults.RejectionReasons
	}
	return s
}

// PendingFlow reports the initiation awaiting a callback, or FlowIdle.
func (s *Service) PendingFlow(ctx context.Context) *PendingFlow {
	state, ok := s.states.Load(ctx)
	if !ok {
		return &PendingFlow{FlowState: FlowIdle}
	}
	createdAt := state.CreatedAt
	return &PendingFlow{
		FlowState: FlowInitiated,
		Platform:  state.Platform,
		CreatedAt: &createdAt,
	}
}

// Accounts exposes the read side of the account repository.
func (s *Service) Accounts(ctx context.Context) []*account.ConnectedAccount {
	return s.accounts.List(ctx)
}

// Account returns the account connected for platformID.
func (s *Service) Account(ctx context.Context, platformID string) (*account.ConnectedAccount, bool) {
	return s.accounts.FindByPlatform(ctx, platformID)
}

func (s *Service) delay(ctx context.Context, lo, hi time.Duration) error {
	return s.sleeper.Sleep(ctx, random.Between(s.src, lo, hi))
}
