package groq

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

const apiURL = "https://api.groq.com/openai/v1/chat/completions"

// Client implements port.AIClient using Groq's OpenAI-compatible chat
// completions API.
type Client struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewClient creates a Groq-backed AI client.
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
		model = "llama-3.3-70b-versatile"
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

	// Text-only requests send the prompt as a plain string; vision requests
	// send ordered content parts of data-URI images followed by text.
	var content interface{} = prompt
	if len(images) > 0 {
		parts := make([]map[string]interface{}, 0, len(images)+1)
		for _, img := range images {
			dataURI := fmt.Sprintf("data:%s;base64,%s",
				mimeTypeOrJPEG(img.ContentType), base64.StdEncoding.EncodeToString(img.Data))
			parts = append(parts, map[string]interface{}{
				"type":      "image_url",
				"image_url": map[string]interface{}{"url": dataURI},
			})
		}
		parts = append(parts, map[string]interface{}{"type": "text", "text": prompt})
		content = parts
	}

	reqBody := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]interface{}{
			{"role": "user", "content": content},
		},
		"max_tokens": 4096,
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
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling groq API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := ai.ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
			return "", ai.NewRateLimitError("groq",
				fmt.Errorf("groq API error (status %d)", resp.StatusCode), retryAfter)
		}
		return "", &ai.ProviderError{Provider: "groq", Status: resp.StatusCode, Body: string(respBody)}
	}

	return extractText(respBody)
}

func mimeTypeOrJPEG(contentType string) string {
	if contentType == "" {
		return "image/jpeg"
	}
	return contentType
}

// apiResponse models the chat completions response.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// extractText pulls the best textual completion out of the response
// envelope. A response with no choices is a valid empty answer, not an error.
func extractText(body []byte) (string, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
