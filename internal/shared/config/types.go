package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// Storage backends
const (
	StorageBackendMemory = "memory"
	StorageBackendRedis  = "redis"
	StorageBackendSQLite = "sqlite"
)

type StorageConfig struct {
	Backend        string        `mapstructure:"backend"`
	Namespace      string        `mapstructure:"namespace"`
	DefaultTTL     time.Duration `mapstructure:"default_ttl"`
	AuthStateTTL   time.Duration `mapstructure:"auth_state_ttl"`
	SweepInterval  time.Duration `mapstructure:"sweep_interval"`
	MemoryCapacity int           `mapstructure:"memory_capacity"`
}

type DatabaseConfig struct {
	Path            string `mapstructure:"path"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// SimulationConfig tunes the simulated OAuth provider.
type SimulationConfig struct {
	RedirectBaseURL    string        `mapstructure:"redirect_base_url"`
	CallbackPath       string        `mapstructure:"callback_path"`
	ClientIDSuffix     string        `mapstructure:"client_id_suffix"`
	CallbackDelayMin   time.Duration `mapstructure:"callback_delay_min"`
	CallbackDelayMax   time.Duration `mapstructure:"callback_delay_max"`
	DisconnectDelayMin time.Duration `mapstructure:"disconnect_delay_min"`
	DisconnectDelayMax time.Duration `mapstructure:"disconnect_delay_max"`
	RefreshDelay       time.Duration `mapstructure:"refresh_delay"`
	FailureRate        float64       `mapstructure:"failure_rate"`
	RejectionReasons   []string      `mapstructure:"rejection_reasons"`
	TokenLifetime      time.Duration `mapstructure:"token_lifetime"`
}

// GetRedirectURL returns the callback URL advertised in authorization URLs.
func (s *SimulationConfig) GetRedirectURL() string {
	return s.RedirectBaseURL + s.CallbackPath
}

// DefaultSimulationConfig returns the stock provider delays and failure rates.
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		RedirectBaseURL:    "http://localhost:8080",
		CallbackPath:       "/auth/callback",
		ClientIDSuffix:     "_client_id_simulation",
		CallbackDelayMin:   1500 * time.Millisecond,
		CallbackDelayMax:   2500 * time.Millisecond,
		DisconnectDelayMin: 800 * time.Millisecond,
		DisconnectDelayMax: 1200 * time.Millisecond,
		RefreshDelay:       500 * time.Millisecond,
		FailureRate:        0.1,
		RejectionReasons: []string{
			"User denied access",
			"Invalid credentials",
			"Rate limit exceeded",
			"Temporary service unavailable",
		},
		TokenLifetime: time.Hour,
	}
}

type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
