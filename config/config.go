package config

import (
	"os"
	"time"

	str2duration "github.com/xhit/go-str2duration/v2"
)

// Config is the process-wide configuration, read once at startup. All of it
// is read-only after FromEnv returns.
type Config struct {
	ListenAddr      string
	MetricsAddr     string
	RedisHost       string
	CacheDisabled   bool
	CacheExpiration time.Duration
}

// FromEnv builds a Config from the environment, falling back to defaults.
// CACHE_EXPIRATION accepts extended duration strings such as "1d" or "2h30m".
func FromEnv() Config {
	cfg := Config{
		ListenAddr:      getenv("LISTEN_ADDR", ":7006"),
		MetricsAddr:     getenv("METRICS_ADDR", ":8081"),
		RedisHost:       getenv("REDIS_HOST", "localhost"),
		CacheDisabled:   os.Getenv("CACHE_DISABLED") != "",
		CacheExpiration: 30 * time.Minute,
	}
	if v := os.Getenv("CACHE_EXPIRATION"); v != "" {
		if d, err := str2duration.ParseDuration(v); err == nil {
			cfg.CacheExpiration = d
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
