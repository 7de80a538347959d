// Package groq is a small client for Groq's OpenAI-compatible chat completion
// API, including remote MCP tool descriptors.
package groq

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is Groq's OpenAI-compatible API surface.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

type Config struct {
	APIKey  string
	BaseURL string

	HTTPClient *http.Client

	MaxRetries int
	MinBackoff time.Duration
	MaxBackoff time.Duration

	// RequestTimeout bounds a single CreateChatCompletion call including
	// retries. Zero leaves the deadline to the caller's context.
	RequestTimeout time.Duration

	// Logger receives request-level diagnostics. Nil disables them.
	Logger *zerolog.Logger
}

type Client struct {
	cfg Config
	log zerolog.Logger
}

func NewClient(cfg Config) *Client {
	cfg = normalizeConfig(cfg)
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	return &Client{cfg: cfg, log: logger}
}

func (c *Client) Config() Config { return c.cfg }

func normalizeConfig(cfg Config) Config {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 2
	}
	if cfg.MinBackoff == 0 {
		cfg.MinBackoff = 250 * time.Millisecond
	}
	if cfg.MaxBackoff == 0 {
		cfg.MaxBackoff = 5 * time.Second
	}
	return cfg
}
