package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Env      string
	Port     int
	LogLevel string

	ModelPath string

	// DATABASE_URL selects Postgres; when empty the server falls back
	// to the embedded SQLite store at SQLitePath.
	DatabaseURL string
	SQLitePath  string

	SafeBrowsingKey string
	VirusTotalKey   string
	IntelTimeout    time.Duration
	IntelCacheTTL   time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AnalyzeTimeout    time.Duration
	RetentionDays     int
	RetentionInterval time.Duration
}

// Load reads the environment. Every knob has a default, so a bare
// `go run ./cmd/server` starts a working instance.
func Load() Config {
	return Config{
		Env:      getenv("APP_ENV", "development"),
		Port:     getenvInt("PORT", 8080),
		LogLevel: getenv("LOG_LEVEL", "info"),

		ModelPath: getenv("MODEL_PATH", "url_threat_model.json"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  getenv("SQLITE_PATH", "data/scans.db"),

		SafeBrowsingKey: os.Getenv("SAFE_BROWSING_API_KEY"),
		VirusTotalKey:   os.Getenv("VIRUSTOTAL_API_KEY"),
		IntelTimeout:    getenvDuration("INTEL_TIMEOUT", 8*time.Second),
		IntelCacheTTL:   getenvDuration("INTEL_CACHE_TTL", time.Hour),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getenvInt("REDIS_DB", 0),

		AnalyzeTimeout:    getenvDuration("ANALYZE_TIMEOUT", 15*time.Second),
		RetentionDays:     getenvInt("RETENTION_DAYS", 0),
		RetentionInterval: getenvDuration("RETENTION_INTERVAL", 12*time.Hour),
	}
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string { return fmt.Sprintf(":%d", c.Port) }

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		if _, err := fmt.Sscanf(v, "%d", &out); err == nil {
			return out
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
