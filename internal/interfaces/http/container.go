package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/socialdash/internal/application/dashboard"
	mediaApp "github.com/orris-inc/socialdash/internal/application/media"
	"github.com/orris-inc/socialdash/internal/application/oauth"
	postApp "github.com/orris-inc/socialdash/internal/application/post"
	settingApp "github.com/orris-inc/socialdash/internal/application/setting"
	"github.com/orris-inc/socialdash/internal/domain/platform"
	"github.com/orris-inc/socialdash/internal/infrastructure/auth"
	"github.com/orris-inc/socialdash/internal/infrastructure/config"
	"github.com/orris-inc/socialdash/internal/infrastructure/kvstore"
	"github.com/orris-inc/socialdash/internal/infrastructure/mockdata"
	"github.com/orris-inc/socialdash/internal/infrastructure/repository"
	"github.com/orris-inc/socialdash/internal/infrastructure/scheduler"
	"github.com/orris-inc/socialdash/internal/interfaces/http/handlers"
	"github.com/orris-inc/socialdash/internal/interfaces/http/middleware"
	"github.com/orris-inc/socialdash/internal/shared/biztime"
	"github.com/orris-inc/socialdash/internal/shared/logger"
	"github.com/orris-inc/socialdash/internal/shared/random"
)

// Container holds the store, services, handlers and the sweep scheduler.
// It wires everything together and owns their shutdown.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface
	clock  biztime.Clock

	storage  *kvstore.Handle
	registry *platform.Registry

	// Repositories
	accountRepo *repository.AccountRepository
	postRepo    *repository.PostRepository
	mediaRepo   *repository.MediaRepository

	// Services
	oauthService     *oauth.Service
	seeder           *dashboard.Seeder
	schedulerManager *scheduler.SchedulerManager

	// Handlers
	oauthHandler     *handlers.OAuthHandler
	postHandler      *handlers.PostHandler
	mediaHandler     *handlers.MediaHandler
	settingHandler   *handlers.SettingHandler
	dashboardHandler *handlers.DashboardHandler

	rateLimiter *middleware.RateLimiter
}

// ContainerOption customises a Container, mainly for tests.
type ContainerOption func(*containerOptions)

type containerOptions struct {
	clock   biztime.Clock
	src     random.Source
	sleeper oauth.Sleeper
}

func WithClock(clock biztime.Clock) ContainerOption {
	return func(o *containerOptions) { o.clock = clock }
}

func WithRandom(src random.Source) ContainerOption {
	return func(o *containerOptions) { o.src = src }
}

func WithSleeper(sleeper oauth.Sleeper) ContainerOption {
	return func(o *containerOptions) { o.sleeper = sleeper }
}

// NewContainer opens the configured store and builds every component on it.
func NewContainer(ctx context.Context, cfg *config.Config, log logger.Interface, opts ...ContainerOption) (*Container, error) {
	o := containerOptions{
		clock:   biztime.SystemClock(),
		src:     random.New(),
		sleeper: oauth.TimerSleeper(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	storage, err := kvstore.Open(ctx, kvstore.Settings{
		Storage:  cfg.Storage,
		Redis:    cfg.Redis,
		Database: cfg.Database,
	}, o.clock, log.Named("kvstore"))
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	c := &Container{
		engine:   gin.New(),
		cfg:      cfg,
		log:      log,
		clock:    o.clock,
		storage:  storage,
		registry: platform.Default(),
	}

	if err := c.initScheduler(); err != nil {
		_ = storage.Close()
		return nil, err
	}

	c.initServices(o)

	return c, nil
}

func (c *Container) initServices(o containerOptions) {
	store := c.storage.Store
	ttl := c.cfg.Storage.DefaultTTL
	log := c.log

	c.accountRepo = repository.NewAccountRepository(store, c.registry, ttl, log)
	c.postRepo = repository.NewPostRepository(store, ttl, log)
	c.mediaRepo = repository.NewMediaRepository(store, ttl, log)
	authStateRepo := repository.NewAuthStateRepository(store, c.cfg.Storage.AuthStateTTL)
	settingRepo := repository.NewSettingRepository(store, ttl)
	apiKeyRepo := repository.NewAPIKeyRepository(store, ttl)

	sim := c.cfg.Simulation
	generator := mockdata.NewGenerator(o.src, o.clock, sim.TokenLifetime)
	urls := auth.NewURLBuilder(sim)

	c.oauthService = oauth.NewService(
		c.registry, c.accountRepo, authStateRepo, generator, urls, sim, log.Named("oauth"),
		oauth.WithRandom(o.src),
		oauth.WithClock(o.clock),
		oauth.WithSleeper(o.sleeper),
	)
	postService := postApp.NewService(c.postRepo, o.clock, log)
	mediaService := mediaApp.NewService(c.mediaRepo, o.clock, log)
	settingService := settingApp.NewService(settingRepo, apiKeyRepo, c.registry, log)
	statsService := dashboard.NewService(c.registry, c.accountRepo, c.postRepo, c.mediaRepo)
	c.seeder = dashboard.NewSeeder(c.postRepo, c.mediaRepo, o.clock, log)

	c.oauthHandler = handlers.NewOAuthHandler(c.oauthService, c.registry, log)
	c.postHandler = handlers.NewPostHandler(postService, log)
	c.mediaHandler = handlers.NewMediaHandler(mediaService, log)
	c.settingHandler = handlers.NewSettingHandler(settingService, log)
	c.dashboardHandler = handlers.NewDashboardHandler(statsService, store, c.schedulerManager, log)

	var counter middleware.Counter
	if c.storage.Redis != nil {
		counter = middleware.NewRedisCounter(c.storage.Redis)
	} else {
		counter = middleware.NewMemoryCounter(4096, time.Minute)
	}
	c.rateLimiter = middleware.NewRateLimiter(counter, 30, time.Minute)
}

func (c *Container) initScheduler() error {
	manager, err := scheduler.NewSchedulerManager(c.log.Named("scheduler"))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := manager.RegisterSweepJob(c.storage.Store, c.cfg.Storage.SweepInterval); err != nil {
		return fmt.Errorf("failed to register sweep job: %w", err)
	}
	c.schedulerManager = manager
	return nil
}

// Seed inserts the sample posts and media when their collections are empty.
func (c *Container) Seed(ctx context.Context) error {
	_, err := c.seeder.Seed(ctx)
	return err
}

// StartBackground starts the periodic storage sweep.
func (c *Container) StartBackground() {
	c.schedulerManager.Start()
}

// Engine returns the Gin engine with routes registered by SetupRoutes.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown stops the scheduler and closes the store connections.
func (c *Container) Shutdown() error {
	var firstErr error
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			firstErr = err
		}
	}
	if err := c.storage.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
