package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// Cache and session storage. Empty disables Redis: sessions stay in memory
	// and dictionary lookups go straight to PostgreSQL.
	RedisURL string
	CacheTTL time.Duration

	// Lookup endpoint the reader UI and CLI submit queries to.
	// Empty means the reader calls the in-process lookup service.
	LookupURL     string
	LookupTimeout time.Duration

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// Session
	SessionSecret      string // Used for signing cookies (min 32 chars)
	SessionIdleTimeout time.Duration
	JanitorInterval    time.Duration

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Features
	PruneMeanings bool // Drop meanings that cannot match a token's category before responding

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Yomu"
	SiteTagline string // env: SITE_TAGLINE, default: "Hover a word to read it"
	SiteFooter  string // env: SITE_FOOTER, default: "Yomu - Japanese sentence reader"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:           getEnv("ENV", "development"),
		ServerAddr:    getEnv("SERVER_ADDR", ":3000"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:   getEnv("DATABASE_URL", "postgres://localhost:5432/yomu?sslmode=disable"),
		RedisURL:      getEnv("REDIS_URL", ""),
		CacheTTL:      getDuration("CACHE_TTL", 24*time.Hour),
		LookupURL:     getEnv("LOOKUP_URL", ""),
		LookupTimeout: getDuration("LOOKUP_TIMEOUT", 10*time.Second),
		TLSEnabled:    getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:   getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:    getEnv("TLS_KEY_FILE", ""),

		SessionSecret:      getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		SessionIdleTimeout: getDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		JanitorInterval:    getDuration("JANITOR_INTERVAL", 5*time.Minute),
		CORSOrigins:        getEnv("CORS_ORIGINS", ""),
		PruneMeanings:      getBool("PRUNE_MEANINGS", false),

		SiteTitle:   getEnv("SITE_TITLE", "Yomu"),
		SiteTagline: getEnv("SITE_TAGLINE", "Hover a word to read it"),
		SiteFooter:  getEnv("SITE_FOOTER", "Yomu - Japanese sentence reader"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getDuration parses a Go duration ("90s", "15m"). Invalid values use the fallback.
func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return b
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// UsesRemoteLookup returns true if the reader calls a lookup endpoint over HTTP.
func (c *Config) UsesRemoteLookup() bool {
	return c.LookupURL != ""
}
