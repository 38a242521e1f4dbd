package claude_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfare/internal/ai"
	"wayfare/internal/ai/claude"
	"wayfare/internal/config"
	"wayfare/internal/port"
)

func newTestClient(serverURL string) *claude.Client {
	cfg := &config.AIProviderConfig{
		Provider:    "claude",
		APIKey:      "test-anthropic-key",
		Model:       "claude-haiku-4-5-20251001",
		TimeoutSecs: 30,
	}
	return claude.NewClientWithEndpoint(cfg, serverURL)
}

func successResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"content": []map[string]interface{}{
			{"type": "text", "text": text},
		},
	}
}

func TestClaudeClient_Invoke_TextOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-anthropic-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "claude-haiku-4-5-20251001", reqBody["model"])
		assert.Equal(t, float64(4096), reqBody["max_tokens"])

		msg := reqBody["messages"].([]interface{})[0].(map[string]interface{})
		content := msg["content"].([]interface{})
		require.Len(t, content, 1)
		textBlock := content[0].(map[string]interface{})
		assert.Equal(t, "text", textBlock["type"])
		assert.Equal(t, "suggest stamps", textBlock["text"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse(`[{"title":"Beach Day"}]`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	out, err := c.Invoke(context.Background(), "suggest stamps", nil)

	require.NoError(t, err)
	assert.Equal(t, `[{"title":"Beach Day"}]`, out)
}

func TestClaudeClient_Invoke_WithImages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))

		msg := reqBody["messages"].([]interface{})[0].(map[string]interface{})
		content := msg["content"].([]interface{})
		require.Len(t, content, 2)

		imgBlock := content[0].(map[string]interface{})
		assert.Equal(t, "image", imgBlock["type"])
		source := imgBlock["source"].(map[string]interface{})
		assert.Equal(t, "base64", source["type"])
		assert.Equal(t, "image/webp", source["media_type"])
		assert.NotEmpty(t, source["data"])

		assert.Equal(t, "text", content[1].(map[string]interface{})["type"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse("[]"))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	out, err := c.Invoke(context.Background(), "extract restaurants", []port.ImageAttachment{
		{Data: []byte("fake-webp"), ContentType: "image/webp"},
	})

	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestClaudeClient_Invoke_MissingKeyNoHTTPCall(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	c := claude.NewClientWithEndpoint(&config.AIProviderConfig{APIKey: ""}, server.URL)
	_, err := c.Invoke(context.Background(), "prompt", nil)

	assert.ErrorIs(t, err, ai.ErrMissingCredential)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestClaudeClient_Invoke_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "5")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.Invoke(context.Background(), "prompt", nil)

	var rateLimited *ai.RateLimitError
	require.ErrorAs(t, err, &rateLimited)
	assert.Equal(t, "claude", rateLimited.Provider)
	assert.Equal(t, "5s", rateLimited.RetryAfter.String())
}

func TestClaudeClient_Invoke_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"type":"overloaded_error"}}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.Invoke(context.Background(), "prompt", nil)

	var providerErr *ai.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "claude", providerErr.Provider)
	assert.Equal(t, http.StatusInternalServerError, providerErr.Status)
}

func TestClaudeClient_Invoke_EmptyContentIsValid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"content":[]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	out, err := c.Invoke(context.Background(), "prompt", nil)

	assert.NoError(t, err)
	assert.Empty(t, out)
}
