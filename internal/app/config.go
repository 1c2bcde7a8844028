package app

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/cobaltlane/taskhub/pkg/jwtx"
)

type Config struct {
	Issuer        string        // Optional: issuer claim for tokens (default: taskhub)
	SigningSecret string        // Required: HMAC secret for access tokens (min 32 bytes)
	AccessTTL     time.Duration // Optional: access token lifetime (default: 30m)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./taskhub.db)
	PepperFile          string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Issuer:              getEnvOrDefault("TASKHUB_ISSUER", "taskhub"),
		SigningSecret:       os.Getenv("TASKHUB_SIGNING_SECRET"),
		AccessTTL:           getEnvDurationOrDefault("TASKHUB_ACCESS_TTL", jwtx.DefaultAccessTokenTTL),
		DatabaseFile:        getEnvOrDefault("TASKHUB_DATABASE_FILE", "taskhub.db"),
		PepperFile:          getEnvOrDefault("TASKHUB_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	// The secret has no sane default: a generated one would silently
	// invalidate every outstanding token on restart.
	if cfg.SigningSecret == "" {
		return Config{}, errors.New("TASKHUB_SIGNING_SECRET is required")
	}
	if len(cfg.SigningSecret) < jwtx.MinSecretLength {
		return Config{}, errors.New("TASKHUB_SIGNING_SECRET must be at least 32 bytes")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Accept duration strings ("1h", "30m") or bare integer minutes.
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
