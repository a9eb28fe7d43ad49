// Package config loads porter settings from the environment
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-porter/internal/errors"
)

// Config holds every setting the porter commands read
type Config struct {
	RedisAddrs    []string `env:"PORTER_REDIS_ADDRS" envSeparator:"," envDefault:"localhost:6379"`
	RedisPoolSize int      `env:"PORTER_REDIS_POOL_SIZE" envDefault:"10"`
	RedisTLS      bool     `env:"PORTER_REDIS_TLS"`

	// ExportDir is the root of the per-game export directories
	ExportDir string `env:"PORTER_EXPORT_DIR" envDefault:"exports"`
	GameID    string `env:"PORTER_GAME_ID" envDefault:"default"`

	Debug   bool `env:"PORTER_DEBUG"`
	Verbose bool `env:"PORTER_VERBOSE"`

	// ShellTTL bounds how long an unregistered import shell is reserved
	ShellTTL time.Duration `env:"PORTER_SHELL_TTL" envDefault:"1h"`

	CatalogCacheTTL time.Duration `env:"PORTER_CATALOG_CACHE_TTL" envDefault:"10m"`

	SRDEnabled  bool          `env:"PORTER_SRD_ENABLED"`
	SRDBaseURL  string        `env:"PORTER_SRD_BASE_URL"`
	SRDCacheTTL time.Duration `env:"PORTER_SRD_CACHE_TTL" envDefault:"24h"`
}

// Load parses the environment into a validated Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings commands cannot run without
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if len(c.RedisAddrs) == 0 {
		vb.RequiredField("PORTER_REDIS_ADDRS")
	}
	errors.ValidateRequired("PORTER_EXPORT_DIR", c.ExportDir, vb)
	errors.ValidateRequired("PORTER_GAME_ID", c.GameID, vb)
	if c.ShellTTL <= 0 {
		vb.Field("PORTER_SHELL_TTL", "must be positive")
	}
	return vb.Build()
}
