package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wayfare/internal/port"
)

// MockAIClient is a mock implementation of port.AIClient.
type MockAIClient struct {
	mock.Mock
}

func (m *MockAIClient) Invoke(ctx context.Context, prompt string, images []port.ImageAttachment) (string, error) {
	args := m.Called(ctx, prompt, images)
	return args.String(0), args.Error(1)
}
