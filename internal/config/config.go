// Package config loads service settings from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"pulse-share/pkg/log"

	"github.com/joho/godotenv"
)

// Config holds the service settings.
type Config struct {
	Port     string
	LogLevel log.Level

	// Remote generator; empty RemoteBaseURL disables it.
	RemoteBaseURL string
	RemoteTimeout time.Duration

	// APIToken gates the compatible generation endpoint when set.
	APIToken string

	CacheTTL time.Duration
	RedisURL string

	RateLimitPerMinute int
}

// Load reads .env (if present) and then the process environment.
func Load() *Config {
	// A missing .env is normal in production.
	_ = godotenv.Load()

	level, err := log.ParseLevel(getEnvOrDefault("LOG_LEVEL", "info"))
	if err != nil {
		level = log.Info
	}

	return &Config{
		Port:               getEnvOrDefault("PORT", "3000"),
		LogLevel:           level,
		RemoteBaseURL:      os.Getenv("REMOTE_BASE_URL"),
		RemoteTimeout:      time.Duration(getEnvAsIntOrDefault("REMOTE_TIMEOUT_MS", 5000)) * time.Millisecond,
		APIToken:           os.Getenv("API_TOKEN"),
		CacheTTL:           time.Duration(getEnvAsIntOrDefault("CACHE_TTL_MINUTES", 5)) * time.Minute,
		RedisURL:           os.Getenv("REDIS_URL"),
		RateLimitPerMinute: getEnvAsIntOrDefault("RATE_LIMIT_PER_MINUTE", 30),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getEnvAsIntOrDefault ignores unparsable and non-positive values.
func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		log.GlobalWarn("invalid integer setting, using default", "key", key, "value", val, "default", defaultVal)
		return defaultVal
	}
	return n
}
