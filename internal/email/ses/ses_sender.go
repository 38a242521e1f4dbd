package ses

import (
	"context"
	"fmt"
	"html"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"wayfare/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendTripInvite(ctx context.Context, toEmail, toName, tripName, joinURL string) error {
	subject := fmt.Sprintf("You're invited to join %s", tripName)
	htmlBody := buildInviteHTML(toName, tripName, joinURL)
	textBody := fmt.Sprintf(
		"Hi %s,\n\nYou've been invited to join the trip %q. Open the link below on your device to join:\n%s\n\nSee you there!\nWayfare",
		toName, tripName, joinURL)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildInviteHTML(toName, tripName, joinURL string) string {
	return fmt.Sprintf(`<html><body style="font-family:sans-serif">
<h2>You're invited!</h2>
<p>Hi %s,</p>
<p>You've been invited to join the trip <strong>%s</strong>.</p>
<p><a href="%s" style="display:inline-block;padding:10px 18px;background:#2563eb;color:#fff;border-radius:6px;text-decoration:none">Join the trip</a></p>
<p>If the button doesn't work, copy this link into your browser:<br>%s</p>
<p>Wayfare</p>
</body></html>`,
		html.EscapeString(toName), html.EscapeString(tripName), joinURL, joinURL)
}
