package noop

import (
	"context"
	"log"

	"wayfare/internal/port"
)

type noopSender struct{}

// NewNoopSender creates an EmailSender that logs instead of sending.
// Used in development and tests.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendTripInvite(_ context.Context, toEmail, toName, tripName, joinURL string) error {
	log.Printf("noop email: trip invite to %s <%s> for %q: %s", toName, toEmail, tripName, joinURL)
	return nil
}
