package ai_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"wayfare/internal/ai"
	"wayfare/internal/config"
	"wayfare/internal/port"
)

type stubClient struct {
	model string
}

func (s *stubClient) Invoke(_ context.Context, _ string, _ []port.ImageAttachment) (string, error) {
	return s.model, nil
}

func TestFactory_RegisterAndCreate(t *testing.T) {
	ai.Register("test-provider", func(cfg *config.AIProviderConfig) (port.AIClient, error) {
		return &stubClient{model: cfg.Model}, nil
	})

	client, err := ai.NewClient(&config.AIProviderConfig{
		Provider: "test-provider",
		Model:    "test-model",
	})

	assert.NoError(t, err)
	assert.NotNil(t, client)
}

func TestFactory_UnknownProvider(t *testing.T) {
	client, err := ai.NewClient(&config.AIProviderConfig{
		Provider: "nonexistent-provider-xyz",
	})

	assert.Nil(t, client)
	assert.ErrorIs(t, err, ai.ErrUnknownProvider)
	assert.Contains(t, err.Error(), "nonexistent-provider-xyz")
}

func TestErrors_RetryAfterHeader(t *testing.T) {
	assert.Equal(t, 0, ai.ParseRetryAfterHeader(""))
	assert.Equal(t, 0, ai.ParseRetryAfterHeader("soon"))
	assert.Equal(t, 42, ai.ParseRetryAfterHeader("42"))
}

func TestErrors_RateLimitDefault(t *testing.T) {
	err := ai.NewRateLimitError("gemini", nil, 0)
	assert.Equal(t, "gemini", err.Provider)
	assert.Equal(t, "1m0s", err.RetryAfter.String())
}
