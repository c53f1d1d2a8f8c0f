package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPSender delivers through an SMTP relay (SendGrid's by default).
type SMTPSender struct {
	dialer *gomail.Dialer
}

func NewSMTPSender(host string, port int, user, password string) *SMTPSender {
	return &SMTPSender{dialer: gomail.NewDialer(host, port, user, password)}
}

func (s *SMTPSender) Name() string { return "smtp" }

func buildMessage(msg *Message) *gomail.Message {
	m := gomail.NewMessage()
	if msg.FromName != "" {
		m.SetAddressHeader("From", msg.From, msg.FromName)
	} else {
		m.SetHeader("From", msg.From)
	}
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)
	return m
}

// Send dials the relay for each message. gomail has no context support, so
// ctx is only checked before dialing.
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.dialer.DialAndSend(buildMessage(msg)); err != nil {
		return fmt.Errorf("smtp send via %s:%d: %w", s.dialer.Host, s.dialer.Port, err)
	}
	return nil
}
