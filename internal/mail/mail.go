package mail

import (
	"context"
	"fmt"

	"github.com/loginverify/loginverify/backend/go-services/internal/config"
)

// Message is one outbound HTML email.
type Message struct {
	To       string
	From     string
	FromName string
	Subject  string
	HTML     string
}

// Sender delivers a message through an external mail service.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
	// Name identifies the transport in logs.
	Name() string
}

// NewSender builds the transport selected by cfg.Transport. The API key is
// used as the SendGrid bearer token or as the SMTP password.
func NewSender(cfg config.MailConfig) (Sender, error) {
	switch cfg.Transport {
	case "", config.TransportSendGrid:
		return NewSendGridSender(cfg.APIKey, cfg.SendGridHost), nil
	case config.TransportSMTP:
		return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.APIKey), nil
	default:
		return nil, fmt.Errorf("unsupported mail transport %q", cfg.Transport)
	}
}
