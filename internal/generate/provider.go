// Package generate talks to the text-generation backend that performs the
// actual rewrite. It knows nothing about style analysis; it only carries a
// system prompt and a user prompt to a chat model and returns the reply.
package generate

import (
	"context"
	"fmt"
	"time"

	"github.com/kamusis/quill-cli/internal/config"
)

// Request is a single chat turn: a system instruction plus the user message.
type Request struct {
	System string
	User   string
}

// Provider sends a chat request to a generation backend.
type Provider interface {
	ModelID() string
	Chat(ctx context.Context, req Request) (string, error)
}

// Pinger is implemented by providers that can check backend reachability
// without generating text.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Config contains the resolved generation configuration.
type Config struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Timeout     time.Duration
	MaxAttempts int
}

const (
	defaultProvider    = "ollama"
	defaultTimeout     = 5 * time.Minute
	defaultMaxAttempts = 2
)

// LoadConfig resolves generation config from environment variables first,
// then ~/.quill/.env, then the generate section of quill.yaml.
func LoadConfig(file config.GenerateConfig) (*Config, error) {
	pick := func(key, fallback string) (string, error) {
		v, err := config.GetConfigValue(key)
		if err != nil {
			return "", err
		}
		if v == "" {
			return fallback, nil
		}
		return v, nil
	}

	provider, err := pick("QUILL_GENERATE_PROVIDER", file.Provider)
	if err != nil {
		return nil, err
	}
	model, err := pick("QUILL_GENERATE_MODEL", file.Model)
	if err != nil {
		return nil, err
	}
	baseURL, err := pick("QUILL_GENERATE_BASE_URL", file.BaseURL)
	if err != nil {
		return nil, err
	}
	apiKey, err := pick("QUILL_GENERATE_API_KEY", "")
	if err != nil {
		return nil, err
	}
	if provider == "" {
		provider = defaultProvider
	}

	timeout := defaultTimeout
	if file.Timeout != "" {
		d, err := time.ParseDuration(file.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid generate.timeout %q: %w", file.Timeout, err)
		}
		timeout = d
	}
	attempts := file.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}

	return &Config{
		Provider:    provider,
		Model:       model,
		APIKey:      apiKey,
		BaseURL:     baseURL,
		Timeout:     timeout,
		MaxAttempts: attempts,
	}, nil
}

// NewFromConfig returns a provider wrapped with retry and timeout handling.
func NewFromConfig(cfg *Config) (Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("generation config is nil")
	}
	var p Provider
	switch cfg.Provider {
	case "ollama", "":
		p = NewOllama(cfg)
	case "openai":
		p = NewOpenAI(cfg)
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s", cfg.Provider)
	}
	return NewResilient(p, ResilientOptions{
		MaxAttempts: cfg.MaxAttempts,
		Timeout:     cfg.Timeout,
	}), nil
}
