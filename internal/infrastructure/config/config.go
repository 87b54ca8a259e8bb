package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/orris-inc/socialdash/internal/shared/config"
)

type Config struct {
	Server     sharedConfig.ServerConfig     `mapstructure:"server"`
	Logger     sharedConfig.LoggerConfig     `mapstructure:"logger"`
	Storage    sharedConfig.StorageConfig    `mapstructure:"storage"`
	Database   sharedConfig.DatabaseConfig   `mapstructure:"database"`
	Redis      sharedConfig.RedisConfig      `mapstructure:"redis"`
	Simulation sharedConfig.SimulationConfig `mapstructure:"simulation"`
	Seed       sharedConfig.SeedConfig       `mapstructure:"seed"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
// A missing config file is not an error; defaults and environment apply.
func Load(env string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("SOCIALDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func validate(cfg *Config) error {
	switch cfg.Storage.Backend {
	case sharedConfig.StorageBackendMemory, sharedConfig.StorageBackendRedis, sharedConfig.StorageBackendSQLite:
	default:
		return fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
	}

	sim := cfg.Simulation
	if sim.FailureRate < 0 || sim.FailureRate > 1 {
		return fmt.Errorf("simulation.failure_rate must be within [0, 1], got %v", sim.FailureRate)
	}
	if sim.CallbackDelayMax < sim.CallbackDelayMin || sim.DisconnectDelayMax < sim.DisconnectDelayMin {
		return errors.New("simulation delay max must not be below min")
	}
	if len(sim.RejectionReasons) == 0 {
		return errors.New("simulation.rejection_reasons must not be empty")
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173", "http://localhost:8080"})

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Storage defaults
	v.SetDefault("storage.backend", sharedConfig.StorageBackendMemory)
	v.SetDefault("storage.namespace", "socialdash:")
	v.SetDefault("storage.default_ttl", "24h")
	v.SetDefault("storage.auth_state_ttl", "24h")
	v.SetDefault("storage.sweep_interval", "1h")
	v.SetDefault("storage.memory_capacity", 1024)

	// Database defaults (sqlite backend)
	v.SetDefault("database.path", "data/socialdash.db")
	v.SetDefault("database.max_open_conns", 1)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Simulation defaults
	sim := sharedConfig.DefaultSimulationConfig()
	v.SetDefault("simulation.redirect_base_url", sim.RedirectBaseURL)
	v.SetDefault("simulation.callback_path", sim.CallbackPath)
	v.SetDefault("simulation.client_id_suffix", sim.ClientIDSuffix)
	v.SetDefault("simulation.callback_delay_min", sim.CallbackDelayMin.String())
	v.SetDefault("simulation.callback_delay_max", sim.CallbackDelayMax.String())
	v.SetDefault("simulation.disconnect_delay_min", sim.DisconnectDelayMin.String())
	v.SetDefault("simulation.disconnect_delay_max", sim.DisconnectDelayMax.String())
	v.SetDefault("simulation.refresh_delay", sim.RefreshDelay.String())
	v.SetDefault("simulation.failure_rate", sim.FailureRate)
	v.SetDefault("simulation.rejection_reasons", sim.RejectionReasons)
	v.SetDefault("simulation.token_lifetime", sim.TokenLifetime.String())

	v.SetDefault("seed.enabled", true)
}
