// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/ingest.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/albapepper/hoopstats-data/internal/provider"
)

// --------------------------------------------------------------------------
// Table names, shared by db.Schema and the upserter
// --------------------------------------------------------------------------

const (
	GameLogsTable = "PLAYER_GAME_LOGS"
	MetadataTable = "PLAYER_METADATA"
)

// Store drivers understood by db.Connector.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// DefaultHeadshotTemplate is keyed on the player ID.
const DefaultHeadshotTemplate = "https://cdn.nba.com/headshots/nba/latest/260x190/{player_id}.png"

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Database
	DBDriver       string
	DatabaseURL    string
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// Stats API
	StatsBaseURL     string
	StatsTimeout     time.Duration
	GameLogDelay     time.Duration
	MetadataDelay    time.Duration
	DefaultSeason    string
	HeadshotTemplate string
	IngestSchedule   string // cron spec for `ingest schedule`

	// Dashboard API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Cache
	CacheEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	dbURL := envOr("DATABASE_URL", "")
	if dbURL == "" {
		dbURL = postgresURLFromParts()
	}
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL or DB_HOST/DB_NAME must be set")
	}

	driver := envOr("DB_DRIVER", detectDriver(dbURL))
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	cfg := &Config{
		DBDriver:       driver,
		DatabaseURL:    dbURL,
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		StatsBaseURL:     envOr("NBA_STATS_BASE_URL", "https://stats.nba.com/stats"),
		StatsTimeout:     envDuration("NBA_STATS_TIMEOUT", 30*time.Second),
		GameLogDelay:     envDuration("GAMELOG_DELAY", 3*time.Second),
		MetadataDelay:    envDuration("METADATA_DELAY", time.Second),
		DefaultSeason:    envOr("DEFAULT_SEASON", provider.AllSeasons),
		HeadshotTemplate: envOr("HEADSHOT_URL_TEMPLATE", DefaultHeadshotTemplate),
		IngestSchedule:   envOr("INGEST_SCHEDULE", "0 9 * * *"),

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8501",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CacheEnabled: envBool("CACHE_ENABLED", true),
	}

	if cfg.GameLogDelay < 0 || cfg.MetadataDelay < 0 {
		return nil, fmt.Errorf("GAMELOG_DELAY and METADATA_DELAY must not be negative")
	}
	return cfg, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SQLitePath strips the sqlite: scheme so the remainder can be handed to the driver.
func (c *Config) SQLitePath() string {
	return strings.TrimPrefix(c.DatabaseURL, "sqlite:")
}

// postgresURLFromParts builds a DSN from discrete DB_* variables. The password
// never has a default.
func postgresURLFromParts() string {
	host := envOr("DB_HOST", "")
	name := envOr("DB_NAME", "")
	if host == "" || name == "" {
		return ""
	}
	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(host, envOr("DB_PORT", "5432")),
		Path:     "/" + name,
		RawQuery: "sslmode=" + envOr("DB_SSLMODE", "disable"),
	}
	user := envOr("DB_USER", "postgres")
	if pw, ok := os.LookupEnv("DB_PASSWORD"); ok {
		u.User = url.UserPassword(user, pw)
	} else {
		u.User = url.User(user)
	}
	return u.String()
}

func detectDriver(dbURL string) string {
	if strings.HasPrefix(dbURL, "sqlite:") || strings.HasPrefix(dbURL, "file:") {
		return DriverSQLite
	}
	return DriverPostgres
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

// envDuration accepts Go durations ("3s", "500ms") or a bare number of seconds.
func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return time.Duration(f * float64(time.Second))
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
