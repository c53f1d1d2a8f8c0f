package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendEndpoint = "/v3/mail/send"

// SendGridSender delivers through the SendGrid v3 HTTP API.
type SendGridSender struct {
	apiKey string
	host   string
}

// NewSendGridSender creates a sender for the given API host. An empty host
// selects https://api.sendgrid.com.
func NewSendGridSender(apiKey, host string) *SendGridSender {
	return &SendGridSender{apiKey: apiKey, host: host}
}

func (s *SendGridSender) Name() string { return "sendgrid" }

func (s *SendGridSender) Send(ctx context.Context, msg *Message) error {
	from := sgmail.NewEmail(msg.FromName, msg.From)
	to := sgmail.NewEmail("", msg.To)
	m := sgmail.NewSingleEmail(from, msg.Subject, to, "", msg.HTML)

	req := sendgrid.GetRequest(s.apiKey, sendEndpoint, s.host)
	req.Method = rest.Post
	req.Body = sgmail.GetRequestBody(m)

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid send: unexpected status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
