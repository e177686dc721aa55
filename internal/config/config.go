package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/nfrund/safebite/internal/locale"
)

// Config holds all configuration for the application.
type Config struct {
	Addr      string `env:"SERVER_ADDR" envDefault:":8080"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"debug"`

	// DefaultLocale is the locale a fresh page load starts in.
	DefaultLocale string `env:"ABOUT_DEFAULT_LOCALE" envDefault:"en"`
	// NegotiateLocale lets Accept-Language pick the initial locale when the
	// request carries no explicit lang parameter.
	NegotiateLocale bool `env:"ABOUT_NEGOTIATE_LOCALE" envDefault:"false"`

	RenderCacheTTL     time.Duration `env:"RENDER_CACHE_TTL" envDefault:"1h"`
	RenderCacheMaxCost int64         `env:"RENDER_CACHE_MAX_BYTES" envDefault:"8388608"`
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"120"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// New loads a .env file if present and then reads the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return Load()
}

// Load reads configuration from environment variables only.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if _, err := locale.Parse(cfg.DefaultLocale); err != nil {
		return nil, fmt.Errorf("ABOUT_DEFAULT_LOCALE: %w", err)
	}
	if cfg.RateLimitPerMinute <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %d", cfg.RateLimitPerMinute)
	}
	return cfg, nil
}

// Locale returns the configured default locale.
func (c *Config) Locale() locale.Locale {
	return locale.Normalize(c.DefaultLocale, locale.Default)
}
