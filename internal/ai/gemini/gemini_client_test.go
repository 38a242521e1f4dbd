package gemini_test

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
	"wayfare/internal/ai/gemini"
	"wayfare/internal/config"
	"wayfare/internal/port"
)

func newTestClient(serverURL string) *gemini.Client {
	cfg := &config.AIProviderConfig{
		Provider:    "gemini",
		APIKey:      "test-gemini-key",
		Model:       "gemini-2.5-flash-lite",
		TimeoutSecs: 30,
	}
	return gemini.NewClientWithEndpoint(cfg, serverURL)
}

func successResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role": "model",
					"parts": []map[string]interface{}{
						{"text": text},
					},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func TestGeminiClient_Invoke_TextOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-gemini-key", r.URL.Query().Get("key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))

		contents := reqBody["contents"].([]interface{})
		require.Len(t, contents, 1)
		parts := contents[0].(map[string]interface{})["parts"].([]interface{})
		require.Len(t, parts, 1)
		assert.Equal(t, "extract the flights", parts[0].(map[string]interface{})["text"])

		// Text-only requests ask for structured JSON output.
		genConfig := reqBody["generationConfig"].(map[string]interface{})
		assert.Equal(t, "application/json", genConfig["responseMimeType"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse(`[{"airline":"Aegean"}]`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	out, err := c.Invoke(context.Background(), "extract the flights", nil)

	require.NoError(t, err)
	assert.Equal(t, `[{"airline":"Aegean"}]`, out)
}

func TestGeminiClient_Invoke_WithImages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))

		contents := reqBody["contents"].([]interface{})
		parts := contents[0].(map[string]interface{})["parts"].([]interface{})
		require.Len(t, parts, 2)

		// Image parts come before the text prompt.
		inline := parts[0].(map[string]interface{})["inline_data"].(map[string]interface{})
		assert.Equal(t, "image/png", inline["mime_type"])
		assert.NotEmpty(t, inline["data"])
		assert.Equal(t, "what is this", parts[1].(map[string]interface{})["text"])

		// JSON output mode is not supported alongside images.
		_, hasGenConfig := reqBody["generationConfig"]
		assert.False(t, hasGenConfig)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse("a screenshot"))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	out, err := c.Invoke(context.Background(), "what is this", []port.ImageAttachment{
		{Data: []byte("fake-png-bytes"), ContentType: "image/png"},
	})

	require.NoError(t, err)
	assert.Equal(t, "a screenshot", out)
}

func TestGeminiClient_Invoke_MissingKeyNoHTTPCall(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	c := gemini.NewClientWithEndpoint(&config.AIProviderConfig{APIKey: ""}, server.URL)
	out, err := c.Invoke(context.Background(), "prompt", nil)

	assert.Empty(t, out)
	assert.ErrorIs(t, err, ai.ErrMissingCredential)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestGeminiClient_Invoke_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.Invoke(context.Background(), "prompt", nil)

	var rateLimited *ai.RateLimitError
	require.ErrorAs(t, err, &rateLimited)
	assert.Equal(t, "gemini", rateLimited.Provider)
	assert.Equal(t, "30s", rateLimited.RetryAfter.String())
}

func TestGeminiClient_Invoke_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid argument"}}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.Invoke(context.Background(), "prompt", nil)

	var providerErr *ai.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "gemini", providerErr.Provider)
	assert.Equal(t, http.StatusBadRequest, providerErr.Status)
	assert.Contains(t, providerErr.Body, "invalid argument")
}

func TestGeminiClient_Invoke_EmptyCandidatesIsValid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	out, err := c.Invoke(context.Background(), "prompt", nil)

	assert.NoError(t, err)
	assert.Empty(t, out)
}
