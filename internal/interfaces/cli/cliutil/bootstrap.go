// Package cliutil holds the start-up steps shared by every command.
package cliutil

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/orris-inc/socialdash/internal/infrastructure/config"
	"github.com/orris-inc/socialdash/internal/shared/logger"
)

// LoadDotEnv loads .env files into the process environment. Missing files
// are ignored; variables already set win.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// ResolveEnv lets the ENV variable override the --env flag.
func ResolveEnv(flag string) string {
	if envVar := os.Getenv("ENV"); envVar != "" {
		return envVar
	}
	return flag
}

// MapEnvToGinMode maps an environment name onto a gin mode.
func MapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}

// Setup loads configuration for env and initialises the process logger.
func Setup(env string) (*config.Config, logger.Interface, error) {
	mode := MapEnvToGinMode(env)

	cfg, err := config.Load(mode)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.Init(&cfg.Logger, mode)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, log, nil
}
