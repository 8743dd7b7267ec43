package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the server configuration resolved from the environment.
type Config struct {
	Port         string
	DBDriver     string
	DBPath       string
	DatabaseURL  string
	SeedPath     string
	CacheBackend string
	RedisURL     string
	CacheTTL     time.Duration
	OSRMBaseURL  string
	OSRMProfile  string
}

// Load reads an optional .env file and resolves settings with defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	ttl, err := GetDuration("CACHE_TTL", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:         Get("PORT", "8080"),
		DBDriver:     Get("DB_DRIVER", "sqlite"),
		DBPath:       Get("DB_PATH", "data/app.db"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		SeedPath:     Get("SEED_PATH", "data/seeds/route.json"),
		CacheBackend: Get("CACHE_BACKEND", "sql"),
		RedisURL:     Get("REDIS_URL", "redis://localhost:6379/0"),
		CacheTTL:     ttl,
		OSRMBaseURL:  Get("OSRM_BASE_URL", "https://router.project-osrm.org"),
		OSRMProfile:  Get("OSRM_PROFILE", "driving"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the driver and cache backend settings are coherent.
func (c Config) Validate() error {
	var errs []string

	switch c.DBDriver {
	case "sqlite":
		if strings.TrimSpace(c.DBPath) == "" {
			errs = append(errs, "DB_PATH is required for sqlite")
		}
	case "pgx":
		if strings.TrimSpace(c.DatabaseURL) == "" {
			errs = append(errs, "DATABASE_URL is required for pgx")
		}
	default:
		errs = append(errs, fmt.Sprintf("DB_DRIVER must be sqlite or pgx, got %q", c.DBDriver))
	}

	switch c.CacheBackend {
	case "sql", "none":
	case "redis":
		if strings.TrimSpace(c.RedisURL) == "" {
			errs = append(errs, "REDIS_URL is required for redis cache")
		}
	default:
		errs = append(errs, fmt.Sprintf("CACHE_BACKEND must be sql, redis or none, got %q", c.CacheBackend))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be a duration: %w", key, err)
	}
	return d, nil
}
