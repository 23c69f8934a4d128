package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"

	devJWTSecret = "dev-secret"
)

type Config struct {
	Env               string
	Port              string
	MongoURI          string
	StoreDriver       string
	JWTSecret         string
	TokenTTL          time.Duration
	CookieSecure      bool
	RateLimit         int
	RateWindow        time.Duration
	CORSOrigins       []string
	NatsURL           string
	NatsToken         string
	EmptyListNotFound bool
	LogDir            string
	LogLevel          string
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads the service configuration from the environment, applying
// defaults for anything unset.
func Load() (Config, error) {
	cfg := Config{
		Env:         getEnv("APP_ENV", "development"),
		Port:        getEnv("MESTO_SERVICE_PORT", "3220"),
		MongoURI:    getEnv("MONGODB_URI", "mongodb://localhost:27017/mestodb"), // db name taken from the path
		StoreDriver: getEnv("STORE_DRIVER", StoreMongo),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		NatsURL:     os.Getenv("NATS_URL"),
		NatsToken:   os.Getenv("NATS_TOKEN"),
		LogDir:      os.Getenv("LOG_DIR"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.TokenTTL, err = time.ParseDuration(getEnv("TOKEN_TTL", "168h")); err != nil {
		return cfg, fmt.Errorf("invalid TOKEN_TTL value: %w", err)
	}
	if cfg.RateWindow, err = time.ParseDuration(getEnv("RATE_WINDOW", "15m")); err != nil {
		return cfg, fmt.Errorf("invalid RATE_WINDOW value: %w", err)
	}
	if cfg.RateLimit, err = strconv.Atoi(getEnv("RATE_LIMIT", "100")); err != nil {
		return cfg, fmt.Errorf("invalid RATE_LIMIT value: %w", err)
	}
	if cfg.CookieSecure, err = strconv.ParseBool(getEnv("COOKIE_SECURE", "false")); err != nil {
		return cfg, fmt.Errorf("invalid COOKIE_SECURE value: %w", err)
	}
	if cfg.EmptyListNotFound, err = strconv.ParseBool(getEnv("EMPTY_LIST_NOT_FOUND", "true")); err != nil {
		return cfg, fmt.Errorf("invalid EMPTY_LIST_NOT_FOUND value: %w", err)
	}

	if cfg.RateLimit <= 0 {
		return cfg, errors.New("RATE_LIMIT must be positive")
	}
	if cfg.TokenTTL <= 0 {
		return cfg, errors.New("TOKEN_TTL must be positive")
	}
	if cfg.StoreDriver != StoreMongo && cfg.StoreDriver != StoreMemory {
		return cfg, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return cfg, errors.New("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = devJWTSecret
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
