package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultOpenAIURL = "https://api.openai.com/v1"

type openAIProvider struct {
	model   string
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewOpenAI constructs an OpenAI-compatible chat provider.
//
// It uses the REST endpoint:
//
//	POST {baseURL}/chat/completions
//
// with JSON body:
//
//	{"model": "...", "messages": [...]}
func NewOpenAI(cfg *Config) Provider {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultOpenAIURL
	}
	return &openAIProvider{
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (p *openAIProvider) ModelID() string {
	return "openai:" + p.model
}

func (p *openAIProvider) Chat(ctx context.Context, req Request) (string, error) {
	if p.model == "" {
		return "", fmt.Errorf("generation model is not configured (set QUILL_GENERATE_MODEL)")
	}
	if p.apiKey == "" {
		return "", fmt.Errorf("generation API key is not configured (set QUILL_GENERATE_API_KEY)")
	}

	b, err := json.Marshal(map[string]any{
		"model":    p.model,
		"messages": messages(req),
	})
	if err != nil {
		return "", err
	}

	hReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	hReq.Header.Set("Content-Type", "application/json")
	hReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(hReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("chat request failed: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("cannot parse chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat response missing choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

// Ping lists models with the configured key.
func (p *openAIProvider) Ping(ctx context.Context) error {
	hReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/models", nil)
	if err != nil {
		return err
	}
	hReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	resp, err := p.client.Do(hReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("model listing failed: HTTP %d", resp.StatusCode)
	}
	return nil
}
