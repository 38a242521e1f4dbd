package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendTripInvite(ctx context.Context, toEmail, toName, tripName, joinURL string) error {
	args := m.Called(ctx, toEmail, toName, tripName, joinURL)
	return args.Error(0)
}
