package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP server
	Port       string
	CORSOrigin string

	// Database
	DatabaseURL string

	// Rate limiting for write endpoints
	RateLimitMax    int
	RateLimitWindow time.Duration

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "4000"),
		CORSOrigin:  getEnv("CORS_ORIGIN", "http://localhost:3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 60),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate checks the configuration and returns an error listing every problem.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		errs = append(errs, "DATABASE_URL is not set")
	}

	if c.RateLimitMax < 1 {
		errs = append(errs, fmt.Sprintf("invalid rate limit max %d: must be positive", c.RateLimitMax))
	}
	if c.RateLimitWindow <= 0 {
		errs = append(errs, "rate limit window must be positive")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return fallback
}
