// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct shared by the backend
// server and the demo client.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// PostgreSQL catalog store. When DBHost is empty the server falls
	// back to the built-in fixture catalog.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible) home payload cache. Optional: empty
	// ValkeyHost disables it.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
	HomeCacheTTL   time.Duration

	// S3-compatible image storage. Optional: when unset, image URLs
	// resolve against StaticBaseURL.
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string

	// Base URL for locally served images when S3 is not configured.
	StaticBaseURL string

	// Rate limiting for the public API.
	RateLimit       int
	RateLimitWindow time.Duration

	// Client settings (cmd/shopdemo).
	CatalogBaseURL string
	CatalogTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8081"),
		Env:  envOrDefault("APP_ENV", "development"),

		DBHost:     os.Getenv("POSTGRES_HOST"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "bottleshop"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "bottleshop"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
		HomeCacheTTL:   durationOrDefault("HOME_CACHE_TTL_SEC", 5*time.Minute),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "bottleshop-images"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),

		RateLimit:       intOrDefault("RATE_LIMIT", 120),
		RateLimitWindow: durationOrDefault("RATE_LIMIT_WINDOW_SEC", time.Minute),

		CatalogBaseURL: envOrDefault("CATALOG_BASE_URL", "http://localhost:8081"),
		CatalogTimeout: durationOrDefault("CATALOG_TIMEOUT_SEC", 15*time.Second),
	}

	cfg.StaticBaseURL = envOrDefault("STATIC_BASE_URL",
		"http://localhost:"+cfg.Port+"/static")

	if cfg.Env == "production" && cfg.DBHost != "" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// DBConfigured reports whether a PostgreSQL catalog store is configured.
func (c *Config) DBConfigured() bool {
	return c.DBHost != ""
}

// CacheConfigured reports whether the Valkey home cache is configured.
func (c *Config) CacheConfigured() bool {
	return c.ValkeyHost != ""
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// intOrDefault reads a numeric environment variable, returning a fallback
// if unset or unparseable.
func intOrDefault(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// durationOrDefault reads a whole-seconds environment variable as a duration.
func durationOrDefault(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return time.Duration(n) * time.Second
}
