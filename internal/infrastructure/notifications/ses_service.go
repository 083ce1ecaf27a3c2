package notifications

import (
	"context"
	"fmt"
	"log"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/you/attendsvc/domain"
)

// SESMailer implements domain.NotificationService using Amazon SES.
type SESMailer struct {
	client *ses.Client
	from   string
	sender string
}

// NewSESMailer creates an SES-backed mailer. from is the verified sender
// address; sender is the display name used in the From header.
func NewSESMailer(ctx context.Context, from, sender string) (*SESMailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SESMailer{
		client: ses.NewFromConfig(cfg),
		from:   from,
		sender: sender,
	}, nil
}

// SendEmail implements domain.NotificationService. When no sender address
// is configured the mail is logged instead of sent, so local setups work
// without SES credentials.
func (m *SESMailer) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	if m.from == "" {
		log.Printf("[MOCK EMAIL] to=%s subject=%q", to, subject)
		return nil
	}

	source := m.from
	if m.sender != "" {
		source = fmt.Sprintf("%q <%s>", m.sender, m.from)
	}

	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      &source,
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: &subject},
			Body: &types.Body{
				Html: &types.Content{Data: &htmlBody},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

var _ domain.NotificationService = (*SESMailer)(nil)
