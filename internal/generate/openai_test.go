package generate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAI_Chat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body struct {
			Model    string        `json:"model"`
			Messages []chatMessage `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-test", body.Model)
		require.Len(t, body.Messages, 1)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"done"}}]}`))
	}))
	defer srv.Close()

	p := NewOpenAI(&Config{Model: "gpt-test", APIKey: "sk-test", BaseURL: srv.URL})
	assert.Equal(t, "openai:gpt-test", p.ModelID())

	out, err := p.Chat(context.Background(), Request{User: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "done", out)
}

func TestOpenAI_RequiresModelAndKey(t *testing.T) {
	_, err := NewOpenAI(&Config{APIKey: "k"}).Chat(context.Background(), Request{User: "x"})
	assert.ErrorContains(t, err, "QUILL_GENERATE_MODEL")

	_, err = NewOpenAI(&Config{Model: "m"}).Chat(context.Background(), Request{User: "x"})
	assert.ErrorContains(t, err, "QUILL_GENERATE_API_KEY")
}

func TestOpenAI_MissingChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewOpenAI(&Config{Model: "m", APIKey: "k", BaseURL: srv.URL}).Chat(context.Background(), Request{User: "x"})
	assert.ErrorContains(t, err, "missing choices")
}
