package port

import "context"

// EmailSender abstracts trip invitation email delivery.
type EmailSender interface {
	SendTripInvite(ctx context.Context, toEmail, toName, tripName, joinURL string) error
}
