// Package config loads server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// devSecret signs tokens when JWT_SECRET is unset. Fine for local
// development, never for a deployment.
const devSecret = "dev-secret-do-not-deploy"

// Config holds all server settings.
type Config struct {
	// Addr is the listen address.
	Addr string `env:"ADDR" envDefault:":8080"`

	// Store selects the backend: "memory" or "sqlite".
	Store string `env:"STORE" envDefault:"memory"`

	// DBPath is the SQLite database file (sqlite backend only).
	DBPath string `env:"DB_PATH" envDefault:"./data/evenshare.db"`

	// JWTSecret signs session tokens.
	JWTSecret string `env:"JWT_SECRET"`

	// TokenTTL is how long issued tokens remain valid.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// SeedDemo loads the sample data set on startup (memory backend only).
	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`
}

// Load reads .env if present, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.Store != "memory" && cfg.Store != "sqlite" {
		return Config{}, fmt.Errorf("unknown STORE %q: want memory or sqlite", cfg.Store)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = devSecret
	}
	return cfg, nil
}

// UsingDevSecret reports whether the insecure fallback secret is active.
func (c Config) UsingDevSecret() bool {
	return c.JWTSecret == devSecret
}
