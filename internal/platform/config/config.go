// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct. An optional .env file is loaded first with 'joho/godotenv' so local
development does not need exported variables.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Every remote dependency is optional. Without DATABASE_URL the catalogue runs in
offline mode on the local store only; without REDIS_URL translations are not
cached; without AI_API_KEY reader translation is skipped.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Configuration Schema

// Config holds all runtime configuration for the Novelia server and CLI.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Remote content store (PostgreSQL). Empty means offline mode.
	DatabaseURL   string        `env:"DATABASE_URL"`
	MigrationPath string        `env:"MIGRATION_PATH"`
	RemoteTimeout time.Duration `env:"REMOTE_TIMEOUT" envDefault:"15s"`

	// Translation cache (Redis). Empty disables caching.
	RedisURL            string        `env:"REDIS_URL"`
	TranslationCacheTTL time.Duration `env:"TRANSLATION_CACHE_TTL" envDefault:"24h"`

	// Local fallback store (SQLite file on this device)
	LocalDBPath string `env:"LOCAL_DB_PATH" envDefault:"./data/novelia.db"`
	SeedLocal   bool   `env:"SEED_LOCAL"    envDefault:"true"`

	// OwnerPasskey gates the admin routes. Compared by plain equality.
	OwnerPasskey string `env:"OWNER_PASSKEY" envDefault:"040507"`

	// Generative-text API (OpenAI-compatible endpoint)
	AIAPIKey  string        `env:"AI_API_KEY"`
	AIBaseURL string        `env:"AI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/openai/"`
	AIModel   string        `env:"AI_MODEL"    envDefault:"gemini-3-flash-preview"`
	AITimeout time.Duration `env:"AI_TIMEOUT"  envDefault:"30s"`

	// Cross-Origin Resource Sharing, comma separated
	CORSOrigins string `env:"CORS_ORIGINS"`
}

// # Configuration Loading

// Load reads an optional .env file and parses environment variables into a [Config].
func Load(files ...string) (*Config, error) {

	// Missing .env files are normal outside local development
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.OwnerPasskey == "" {
		return nil, errors.New("config: OWNER_PASSKEY must not be empty")
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// RemoteEnabled reports whether a remote content store is configured.
func (c *Config) RemoteEnabled() bool {
	return strings.TrimSpace(c.DatabaseURL) != ""
}

// CacheEnabled reports whether a translation cache is configured.
func (c *Config) CacheEnabled() bool {
	return strings.TrimSpace(c.RedisURL) != ""
}

// AllowedOrigins splits CORSOrigins into a trimmed list.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
