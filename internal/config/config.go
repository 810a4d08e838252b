// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the API.
type Config struct {
	Addr               string
	CORSAllowedOrigins []string
	EnableHSTS         bool
	MaxBodyBytes       int64
	RateLimitRPS       float64
	RateLimitBurst     int
	SeedFile           string
	ShutdownTimeout    time.Duration
}

// Load reads .env and .env.local (without overriding variables already set
// by the runtime) and then builds a Config from the process environment.
// Missing files are skipped; unreadable or malformed ones are an error.
func Load() (Config, error) {
	for _, file := range []string{".env", ".env.local"} {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using getenv as the variable source.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:               withDefault(getenv("APP_ADDR"), ":9000"),
		CORSAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS")),
		EnableHSTS:         getenv("ENABLE_HSTS") == "true",
		SeedFile:           strings.TrimSpace(getenv("SEED_FILE")),
	}

	var err error
	if cfg.MaxBodyBytes, err = strconv.ParseInt(withDefault(getenv("MAX_BODY_BYTES"), "1048576"), 10, 64); err != nil || cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("invalid MAX_BODY_BYTES %q", getenv("MAX_BODY_BYTES"))
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(withDefault(getenv("RATE_LIMIT_RPS"), "20"), 64); err != nil || cfg.RateLimitRPS < 0 {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT_RPS %q", getenv("RATE_LIMIT_RPS"))
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(withDefault(getenv("RATE_LIMIT_BURST"), "40")); err != nil || cfg.RateLimitBurst < 1 {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT_BURST %q", getenv("RATE_LIMIT_BURST"))
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(withDefault(getenv("SHUTDOWN_TIMEOUT"), "10s")); err != nil {
		return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", getenv("SHUTDOWN_TIMEOUT"), err)
	}

	return cfg, nil
}

// RateLimitEnabled reports whether requests should be throttled.
func (c Config) RateLimitEnabled() bool {
	return c.RateLimitRPS > 0
}

func withDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
