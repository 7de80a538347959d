// Package config loads demo configuration from the environment, with optional
// .env support.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvAPIKey       = "GROQ_API_KEY"
	EnvModel        = "DEFAULT_GROQ_MODEL"
	EnvFirecrawlKey = "FIRECRAWL_API_KEY"
	EnvLogLevel     = "GROQ_LOG_LEVEL"

	DefaultModel = "llama-3.3-70b-versatile"
)

// ErrAPIKeyMissing is the only fatal-at-startup condition.
var ErrAPIKeyMissing = errors.New("GROQ_API_KEY environment variable is required")

type Config struct {
	GroqAPIKey      string
	Model           string
	FirecrawlAPIKey string
	LogLevel        string
}

func (c Config) FirecrawlEnabled() bool { return c.FirecrawlAPIKey != "" }

// Load reads configuration from a .env file (best-effort) and the process
// environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		GroqAPIKey:      getenv(EnvAPIKey),
		Model:           getenv(EnvModel),
		FirecrawlAPIKey: getenv(EnvFirecrawlKey),
		LogLevel:        getenv(EnvLogLevel),
	}
	if cfg.GroqAPIKey == "" {
		return Config{}, ErrAPIKeyMissing
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return cfg, nil
}
