// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port int

	// PostgreSQL connection string
	DatabaseURL string

	// Secret used to sign session tokens
	JWTSecret string

	// S3-compatible object storage (Backblaze B2 in the original deployment)
	S3KeyID    string
	S3Secret   string
	S3Endpoint string
	S3Bucket   string
	S3Region   string

	// Valkey (Redis-compatible) response cache. Optional — empty disables it.
	ValkeyAddr     string
	ValkeyPassword string

	// Optional admin seed. Empty email disables seeding.
	SeedAdminEmail    string
	SeedAdminPassword string
	SeedAdminName     string
}

// Load reads configuration from environment variables. Every variable the
// service cannot run without is required; a missing or unparseable value
// returns an error and the process should exit.
func Load() (*Config, error) {
	cfg := &Config{
		ValkeyAddr:        os.Getenv("VALKEY_ADDR"),
		ValkeyPassword:    os.Getenv("VALKEY_PASSWORD"),
		SeedAdminEmail:    os.Getenv("SEED_ADMIN_EMAIL"),
		SeedAdminPassword: os.Getenv("SEED_ADMIN_PASSWORD"),
		SeedAdminName:     os.Getenv("SEED_ADMIN_NAME"),
	}

	var err error
	if cfg.DatabaseURL, err = requireEnv("DATABASE_URL"); err != nil {
		return nil, err
	}
	if cfg.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.S3KeyID, err = requireEnv("S3_KEY_ID"); err != nil {
		return nil, err
	}
	if cfg.S3Secret, err = requireEnv("S3_KEY_SECRET"); err != nil {
		return nil, err
	}
	if cfg.S3Endpoint, err = requireEnv("S3_ENDPOINT"); err != nil {
		return nil, err
	}
	if cfg.S3Bucket, err = requireEnv("S3_BUCKET"); err != nil {
		return nil, err
	}
	if cfg.S3Region, err = requireEnv("S3_REGION"); err != nil {
		return nil, err
	}
	if cfg.Host, err = requireEnv("HOST"); err != nil {
		return nil, err
	}

	port, err := requireEnv("PORT")
	if err != nil {
		return nil, err
	}
	cfg.Port, err = strconv.Atoi(port)
	if err != nil {
		return nil, fmt.Errorf("PORT must be an integer, got %q", port)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT out of range: %d", cfg.Port)
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CacheEnabled reports whether a Valkey response cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyAddr != ""
}

// requireEnv reads an environment variable, erroring if unset or empty.
func requireEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return v, nil
}
