package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendgridMailer delivers transactional email through SendGrid. Callers treat
// delivery as fire-and-forget; failures are logged upstream, never surfaced
// to the HTTP client.
type SendgridMailer struct {
	client *sendgrid.Client
	sender string
}

func NewSendgridMailer(apiKey, sender string) *SendgridMailer {
	return &SendgridMailer{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
	}
}

func (m *SendgridMailer) Send(to, subject, body string) error {
	from := mail.NewEmail("", m.sender)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	resp, err := m.client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}

	return nil
}
