package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
)

const (
	defaultOllamaURL   = "http://localhost:11434"
	defaultOllamaModel = "llama3"
)

var safeModelName = regexp.MustCompile(`^[a-zA-Z0-9:._/-]+$`)

type ollamaProvider struct {
	model   string
	baseURL string
	client  *http.Client
}

// NewOllama constructs a provider for a local Ollama server.
//
// It uses the REST endpoint:
//
//	POST {baseURL}/api/chat
//
// with a non-streaming chat body. Request deadlines come from the caller's
// context, so the HTTP client itself has no timeout.
func NewOllama(cfg *Config) Provider {
	model := cfg.Model
	if model == "" {
		model = defaultOllamaModel
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}
	return &ollamaProvider{
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (p *ollamaProvider) ModelID() string {
	return "ollama:" + p.model
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type ollamaChatResponse struct {
	Message chatMessage `json:"message"`
	Done    bool        `json:"done"`
	Error   string      `json:"error"`
}

func (p *ollamaProvider) Chat(ctx context.Context, req Request) (string, error) {
	if !safeModelName.MatchString(p.model) {
		return "", fmt.Errorf("invalid model name: %s", p.model)
	}

	body, err := json.Marshal(ollamaChatRequest{
		Model:    p.model,
		Messages: messages(req),
		Stream:   false,
	})
	if err != nil {
		return "", err
	}

	hReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	hReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(hReq)
	if err != nil {
		return "", fmt.Errorf("cannot connect to Ollama at %s: %w", p.baseURL, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama chat failed: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed ollamaChatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("cannot parse ollama response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("ollama error: %s", parsed.Error)
	}
	return parsed.Message.Content, nil
}

// Ping lists local models, which only succeeds when the server is up.
func (p *ollamaProvider) Ping(ctx context.Context) error {
	hReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/tags", nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(hReq)
	if err != nil {
		return fmt.Errorf("cannot connect to Ollama at %s: %w", p.baseURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama ping failed: HTTP %d", resp.StatusCode)
	}
	return nil
}

func messages(req Request) []chatMessage {
	var out []chatMessage
	if req.System != "" {
		out = append(out, chatMessage{Role: "system", Content: req.System})
	}
	return append(out, chatMessage{Role: "user", Content: req.User})
}
