package config

import (
	"net/url"
	"strings"

	"portuguese101/internal/errors"

	"github.com/caarlos0/env/v11"
)

// Config represents the complete server-side configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	API      APIConfig
	Log      LogConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL          string `env:"DATABASE_URL"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
}

// ServerConfig holds fragment server settings
type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
}

// APIConfig holds JSON API settings
type APIConfig struct {
	Port    string `env:"API_PORT" envDefault:"8081"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Development bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

// ClientConfig configures the fragment client CLI.
type ClientConfig struct {
	BaseURL string `env:"PORTUGUESE101_BASE_URL" envDefault:"http://localhost:8080/"`
	Log     LogConfig
}

// Load reads server configuration from the environment and validates it.
// Callers load any .env file beforehand.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WithCode(errors.CodeConfigInvalid, errors.Wrap(err, "failed to parse environment"))
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return cfg, nil
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.URL) == "" {
		return errors.ConfigInvalid("DATABASE_URL is required")
	}
	if c.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if c.API.Port == "" {
		return errors.ConfigInvalid("API_PORT must not be empty")
	}
	if c.Database.MaxOpenConns < 1 {
		return errors.ConfigInvalid("DB_MAX_OPEN_CONNS must be positive")
	}
	return nil
}

// LoadClient reads the fragment client configuration.
func LoadClient() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WithCode(errors.CodeConfigInvalid, errors.Wrap(err, "failed to parse environment"))
	}
	if err := ValidateBaseURL(cfg.BaseURL); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidateBaseURL requires an absolute http(s) URL.
func ValidateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.WithCode(errors.CodeConfigInvalid, errors.Wrapf(err, "invalid base URL %q", raw))
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.ConfigInvalid("base URL must be an absolute http(s) URL")
	}
	return nil
}
