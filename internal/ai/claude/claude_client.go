package claude

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wayfare/internal/ai"
	"wayfare/internal/config"
	"wayfare/internal/port"
)

const (
	apiURL     = "https://api.anthropic.com/v1/messages"
	apiVersion = "2023-06-01"
)

// Client implements port.AIClient using the Anthropic Messages API.
type Client struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewClient creates a Claude-backed AI client.
func NewClient(cfg *config.AIProviderConfig) *Client {
	return newClient(cfg, apiURL)
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.AIProviderConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

// Factory adapts NewClient to the ai.Factory signature.
func Factory(cfg *config.AIProviderConfig) (port.AIClient, error) {
	return NewClient(cfg), nil
}

func newClient(cfg *config.AIProviderConfig, endpoint string) *Client {
	model := cfg.Model
	if model == "" {
		model = "claude-haiku-4-5-20251001"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) Invoke(ctx context.Context, prompt string, images []port.ImageAttachment) (string, error) {
	if c.apiKey == "" {
		return "", ai.ErrMissingCredential
	}

	content := make([]map[string]interface{}, 0, len(images)+1)
	for _, img := range images {
		content = append(content, map[string]interface{}{
			"type": "image",
			"source": map[string]interface{}{
				"type":       "base64",
				"media_type": mimeTypeOrJPEG(img.ContentType),
				"data":       base64.StdEncoding.EncodeToString(img.Data),
			},
		})
	}
	content = append(content, map[string]interface{}{"type": "text", "text": prompt})

	reqBody := map[string]interface{}{
		"model":      c.model,
		"max_tokens": 4096,
		"messages": []map[string]interface{}{
			{"role": "user", "content": content},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling anthropic API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := ai.ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
			return "", ai.NewRateLimitError("claude",
				fmt.Errorf("anthropic API error (status %d)", resp.StatusCode), retryAfter)
		}
		return "", &ai.ProviderError{Provider: "claude", Status: resp.StatusCode, Body: string(respBody)}
	}

	return extractText(respBody)
}

func mimeTypeOrJPEG(contentType string) string {
	if contentType == "" {
		return "image/jpeg"
	}
	return contentType
}

// apiResponse models the Anthropic Messages API response.
type apiResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// extractText pulls the best textual completion out of the response
// envelope. A response with no content blocks is a valid empty answer, not
// an error.
func extractText(body []byte) (string, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", nil
	}
	return resp.Content[0].Text, nil
}
