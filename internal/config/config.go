// Package config loads runtime settings from environment variables, with
// development defaults. A .env file, when present, is loaded first by main.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr        string
	DatabaseDSN string

	// RedisURL enables the public-listing cache when non-empty.
	RedisURL        string
	ListingCacheTTL time.Duration

	CaptchaSecret   string
	CaptchaEndpoint string
	CaptchaTimeout  time.Duration

	JWTSecret string
	TokenTTL  time.Duration
}

// Load builds a Config from the environment. Unset variables fall back to
// local development defaults; secrets have no usable defaults on purpose.
func Load() *Config {
	return &Config{
		Addr:            getEnv("ADDR", ":8080"),
		DatabaseDSN:     getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=gojobs port=5432 sslmode=disable"),
		RedisURL:        os.Getenv("REDIS_URL"),
		ListingCacheTTL: getDuration("LISTING_CACHE_TTL", 2*time.Minute),
		CaptchaSecret:   os.Getenv("RECAPTCHA_SECRET_KEY"),
		CaptchaEndpoint: getEnv("RECAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify"),
		CaptchaTimeout:  getDuration("RECAPTCHA_TIMEOUT", 5*time.Second),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret"),
		TokenTTL:        getDuration("TOKEN_TTL", 24*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
