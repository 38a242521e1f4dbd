package groq_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfare/internal/ai"
	"wayfare/internal/ai/groq"
	"wayfare/internal/config"
	"wayfare/internal/port"
)

func newTestClient(serverURL string) *groq.Client {
	cfg := &config.AIProviderConfig{
		Provider:    "groq",
		APIKey:      "test-groq-key",
		Model:       "llama-3.3-70b-versatile",
		TimeoutSecs: 30,
	}
	return groq.NewClientWithEndpoint(cfg, serverURL)
}

func successResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": text,
				},
			},
		},
	}
}

func TestGroqClient_Invoke_TextOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-groq-key", r.Header.Get("Authorization"))

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "llama-3.3-70b-versatile", reqBody["model"])
		assert.Equal(t, float64(4096), reqBody["max_tokens"])

		messages := reqBody["messages"].([]interface{})
		require.Len(t, messages, 1)
		msg := messages[0].(map[string]interface{})
		assert.Equal(t, "user", msg["role"])
		// Text-only requests carry the prompt as a plain string.
		assert.Equal(t, "suggest restaurants", msg["content"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse(`[{"name":"Taverna"}]`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	out, err := c.Invoke(context.Background(), "suggest restaurants", nil)

	require.NoError(t, err)
	assert.Equal(t, `[{"name":"Taverna"}]`, out)
}

func TestGroqClient_Invoke_WithImages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))

		msg := reqBody["messages"].([]interface{})[0].(map[string]interface{})
		parts := msg["content"].([]interface{})
		require.Len(t, parts, 2)

		imgPart := parts[0].(map[string]interface{})
		assert.Equal(t, "image_url", imgPart["type"])
		url := imgPart["image_url"].(map[string]interface{})["url"].(string)
		assert.True(t, strings.HasPrefix(url, "data:image/jpeg;base64,"))

		textPart := parts[1].(map[string]interface{})
		assert.Equal(t, "text", textPart["type"])
		assert.Equal(t, "extract hotels", textPart["text"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse("[]"))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	out, err := c.Invoke(context.Background(), "extract hotels", []port.ImageAttachment{
		{Data: []byte("fake-jpeg"), ContentType: "image/jpeg"},
	})

	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestGroqClient_Invoke_MissingKeyNoHTTPCall(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	c := groq.NewClientWithEndpoint(&config.AIProviderConfig{APIKey: ""}, server.URL)
	_, err := c.Invoke(context.Background(), "prompt", nil)

	assert.ErrorIs(t, err, ai.ErrMissingCredential)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestGroqClient_Invoke_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.Invoke(context.Background(), "prompt", nil)

	var rateLimited *ai.RateLimitError
	require.ErrorAs(t, err, &rateLimited)
	assert.Equal(t, "groq", rateLimited.Provider)
	// Missing Retry-After falls back to the default.
	assert.Equal(t, "1m0s", rateLimited.RetryAfter.String())
}

func TestGroqClient_Invoke_EmptyChoicesIsValid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	out, err := c.Invoke(context.Background(), "prompt", nil)

	assert.NoError(t, err)
	assert.Empty(t, out)
}
