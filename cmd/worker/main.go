package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/orris-inc/socialdash/internal/infrastructure/kvstore"
	"github.com/orris-inc/socialdash/internal/infrastructure/scheduler"
	"github.com/orris-inc/socialdash/internal/interfaces/cli/cliutil"
	"github.com/orris-inc/socialdash/internal/shared/biztime"
)

// The worker runs only the expiry sweep, for deployments where several API
// instances share one redis or sqlite backend.
func main() {
	cliutil.LoadDotEnv()

	// Parse environment from command line or env variable
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	env = cliutil.ResolveEnv(env)

	cfg, log, err := cliutil.Setup(env)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	log.Infow("starting storage sweep worker", "environment", env, "backend", cfg.Storage.Backend)

	ctx := context.Background()
	h, err := kvstore.Open(ctx, kvstore.Settings{
		Storage:  cfg.Storage,
		Redis:    cfg.Redis,
		Database: cfg.Database,
	}, biztime.SystemClock(), log)
	if err != nil {
		log.Fatalw("failed to open storage", "error", err)
	}
	defer h.Close()

	manager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		log.Fatalw("failed to create scheduler", "error", err)
	}
	if err := manager.RegisterSweepJob(h.Store, cfg.Storage.SweepInterval); err != nil {
		log.Fatalw("failed to register sweep job", "error", err)
	}
	manager.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	log.Infow("received signal, shutting down", "signal", sig)
	if err := manager.Stop(); err != nil {
		log.Errorw("scheduler stopped with error", "error", err)
	}
	log.Infow("storage sweep worker stopped")
}
