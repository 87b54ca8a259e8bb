package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/orris-inc/socialdash/internal/interfaces/cli/cliutil"
	httpRouter "github.com/orris-inc/socialdash/internal/interfaces/http"
	"github.com/orris-inc/socialdash/internal/shared/goroutine"
)

var (
	env    string
	noSeed bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the socialdash HTTP API with the storage sweep running in the background.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&noSeed, "no-seed", false, "Skip inserting sample posts and media on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	env = cliutil.ResolveEnv(env)

	cfg, log, err := cliutil.Setup(env)
	if err != nil {
		return err
	}

	log.Infow("starting server",
		"environment", env,
		"storage_backend", cfg.Storage.Backend)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	ctx := context.Background()

	container, err := httpRouter.NewContainer(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer func() {
		if err := container.Shutdown(); err != nil {
			log.Errorw("shutdown completed with error", "error", err)
		}
	}()

	if cfg.Seed.Enabled && !noSeed {
		if err := container.Seed(ctx); err != nil {
			log.Warnw("failed to seed sample data", "error", err)
		}
	}

	container.SetupRoutes()
	container.StartBackground()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := goroutine.Go(log, "http-server", func() error {
		log.Infow("server listening",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Infow("shutting down server", "signal", sig.String())
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}
