// Package smtp dispatches composed report messages over SMTP using go-mail.
// A send is a single best-effort attempt; retries are the schedule's next
// run, not the transport's concern.
package smtp

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"reporting/internal/core/ports"
)

// Sender implements the MessageSender port over SMTP.
type Sender struct {
	host     string
	port     int
	username string
	password string
}

// NewSender creates an SMTP sender. Authentication is used only when a
// username is configured.
func NewSender(host string, port int, username, password string) *Sender {
	return &Sender{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

// Send dispatches one message, attaching the export file when present.
func (s *Sender) Send(ctx context.Context, message ports.Message) error {
	msg := mail.NewMsg()

	if err := msg.From(message.From); err != nil {
		return fmt.Errorf("invalid from header %q: %w", message.From, err)
	}
	if err := msg.To(message.To...); err != nil {
		return fmt.Errorf("invalid recipients: %w", err)
	}

	msg.Subject(message.Subject)
	msg.SetBodyString(mail.TypeTextPlain, message.Body)

	if message.AttachmentPath != "" {
		msg.AttachFile(message.AttachmentPath)
	}

	client, err := s.newClient()
	if err != nil {
		return err
	}

	return client.DialAndSendWithContext(ctx, msg)
}

func (s *Sender) newClient() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if s.username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.username),
			mail.WithPassword(s.password),
		)
	}
	return mail.NewClient(s.host, opts...)
}
