package ratelimit

import (
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes the rate limit environment variables.
const EnvPrefix = "CONTENT_BINDER_RATE_LIMIT_"

// Config controls how many bound pages a single client may request.
type Config struct {
	Enabled         bool          `env:"ENABLED" envDefault:"true"`
	PagesPerMinute  int           `env:"PAGES_PER_MINUTE" envDefault:"120"` // 0 = unlimited
	Burst           int           `env:"BURST" envDefault:"20"`             // defaults to PagesPerMinute when 0
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"5m"`
	IdleTTL         time.Duration `env:"IDLE_TTL" envDefault:"1h"`
	Allowlist       []string      `env:"ALLOWLIST" envSeparator:","` // client IPs never limited
}

// Defaults returns the built-in limits.
func Defaults() Config {
	return Config{
		Enabled:         true,
		PagesPerMinute:  120,
		Burst:           20,
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
	}
}

// LoadConfig reads CONTENT_BINDER_RATE_LIMIT_* environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("error getting rate limit configs: %w", err)
	}
	if cfg.PagesPerMinute < 0 || cfg.Burst < 0 {
		return nil, fmt.Errorf("rate limit values must not be negative")
	}
	return &cfg, nil
}

func (c *Config) exempt(clientID string) bool {
	return slices.Contains(c.Allowlist, clientID)
}
