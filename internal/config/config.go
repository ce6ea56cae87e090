package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config aggregates the service configuration. Values come from environment
// variables; see the nested types for prefixes and defaults.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	HTTP HTTP   `envPrefix:"HTTP_"`
	Log  Logger `envPrefix:"LOG_"`
	Auth Auth   `envPrefix:"AUTH_"`
	CORS CORS   `envPrefix:"CORS_"`
}

type HTTP struct {
	Port         uint16        `env:"PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	// MaxBodyBytes caps the size of payloads submitted for decoding.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`
}

// Logger selects the slog level ("debug", "info", "warn", "error") and the
// output format ("text" or "json").
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// Auth enables bearer token checks on the API routes when JWTSecret is set.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
}

type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SlogLevel converts the textual level. Unknown levels map to info.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// JSON reports whether JSON log output was requested.
func (c Logger) JSON() bool {
	return strings.EqualFold(c.Format, "json")
}

func (c Auth) Enabled() bool {
	return c.JWTSecret != ""
}
