// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/kamilpajak/codecompanion/internal/latency"
)

// Auth modes.
const (
	AuthMock     = "mock"
	AuthFirebase = "firebase"
)

// devSessionSecret is only accepted when LOG_MODE=dev.
const devSessionSecret = "codecompanion-dev-secret"

// Config holds everything the API server needs at startup.
type Config struct {
	Port    string
	LogMode string
	LogFile string

	DatabaseURL string

	AuthMode          string
	FirebaseProjectID string
	SessionSecret     string
	SessionTTLHours   int

	Delay latency.Simulator

	RateLimitRPS   float64
	RateLimitBurst int

	CORSOrigin string
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	return LoadWithDefaults(nil)
}

// LoadWithDefaults is Load with fallbacks for keys that are unset in both
// the environment and .env.
func LoadWithDefaults(defaults map[string]string) (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return defaults[key]
	})
}

// FromEnv builds a Config from a lookup function, applying defaults and
// validating the result.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	var errs []error
	atoi := func(key string, def int) int {
		n, err := strconv.Atoi(get(key, strconv.Itoa(def)))
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s: %w", key, err))
		}
		return n
	}

	cfg := &Config{
		Port:              get("PORT", "8080"),
		LogMode:           strings.ToLower(get("LOG_MODE", "prod")),
		LogFile:           get("LOG_FILE", ""),
		DatabaseURL:       get("DATABASE_URL", ""),
		AuthMode:          strings.ToLower(get("AUTH_MODE", AuthMock)),
		FirebaseProjectID: get("FIREBASE_PROJECT_ID", ""),
		SessionSecret:     get("SESSION_SECRET", ""),
		SessionTTLHours:   atoi("SESSION_TTL_HOURS", 24),
		Delay: latency.Simulator{
			Base:   time.Duration(atoi("DELAY_BASE_MS", int(latency.DefaultBase/time.Millisecond))) * time.Millisecond,
			Jitter: time.Duration(atoi("DELAY_JITTER_MS", int(latency.DefaultJitter/time.Millisecond))) * time.Millisecond,
		},
		RateLimitBurst: atoi("RATE_LIMIT_BURST", 10),
		CORSOrigin:     get("CORS_ORIGIN", "*"),
	}

	rps, err := strconv.ParseFloat(get("RATE_LIMIT_RPS", "5"), 64)
	if err != nil {
		errs = append(errs, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err))
	}
	cfg.RateLimitRPS = rps

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if cfg.AuthMode == AuthMock && cfg.SessionSecret == "" && cfg.LogMode == "dev" {
		cfg.SessionSecret = devSessionSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings are consistent.
func (c *Config) Validate() error {
	if _, err := strconv.ParseUint(c.Port, 10, 16); err != nil {
		return fmt.Errorf("PORT must be a port number, got %q", c.Port)
	}
	switch c.LogMode {
	case "dev", "prod":
	default:
		return fmt.Errorf("LOG_MODE must be dev or prod, got %q", c.LogMode)
	}
	switch c.AuthMode {
	case AuthFirebase:
		if c.FirebaseProjectID == "" {
			return errors.New("FIREBASE_PROJECT_ID is required when AUTH_MODE=firebase")
		}
	case AuthMock:
		if c.SessionSecret == "" {
			return errors.New("SESSION_SECRET is required when AUTH_MODE=mock")
		}
	default:
		return fmt.Errorf("AUTH_MODE must be mock or firebase, got %q", c.AuthMode)
	}
	if c.SessionTTLHours < 1 {
		return fmt.Errorf("SESSION_TTL_HOURS must be at least 1 hour, got: %d", c.SessionTTLHours)
	}
	if c.Delay.Base < 0 || c.Delay.Jitter < 0 {
		return errors.New("DELAY_BASE_MS and DELAY_JITTER_MS cannot be negative")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

// SessionTTL is the lifetime of mock session tokens.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
