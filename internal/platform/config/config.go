// Copyright (c) 2026 Eduka. All rights reserved.
// Author: minh.vuquang.dev@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, JWT) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Eduka API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Store (Redis) — token revocation list
	RedisURL string `env:"REDIS_URL,required"`

	// JWT signing and validation. The secret is shared-key HMAC material and
	// must be at least 32 bytes; absence is fatal at startup.
	JWTSecret        string `env:"JWT_SECRET,required"`
	JWTIssuer        string `env:"JWT_ISSUER"         envDefault:"eduka-api"`
	JWTAudience      string `env:"JWT_AUDIENCE"       envDefault:"eduka-clients"`
	JWTExpiryMinutes int    `env:"JWT_EXPIRY_MINUTES" envDefault:"60"`

	// Password hashing work factor (PBKDF2-SHA256 iterations).
	HashIterations int `env:"PBKDF2_ITERATIONS" envDefault:"120000"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// minimum acceptable values; anything below is a deployment mistake.
const (
	minSecretLength    = 32
	minHashIterations  = 10_000
	minTokenExpiryMins = 1
)

// Load parses environment variables into a [Config] struct.
//
// Beyond presence checks, it rejects configurations that would silently
// weaken security (short secrets, low iteration counts).
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if len(cfg.JWTSecret) < minSecretLength {
		return nil, fmt.Errorf("config: JWT_SECRET must be at least %d bytes", minSecretLength)
	}

	if cfg.JWTExpiryMinutes < minTokenExpiryMins {
		return nil, fmt.Errorf("config: JWT_EXPIRY_MINUTES must be positive")
	}

	if cfg.HashIterations < minHashIterations {
		return nil, fmt.Errorf("config: PBKDF2_ITERATIONS must be at least %d", minHashIterations)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the list of extra origins permitted by CORS,
// parsed from the comma-separated EXTRA_ORIGINS variable.
func (c *Config) AllowedOrigins() []string {
	if c.ExtraOrigins == "" {
		return nil
	}

	raw := strings.Split(c.ExtraOrigins, ",")
	origins := make([]string, 0, len(raw))
	for _, origin := range raw {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
