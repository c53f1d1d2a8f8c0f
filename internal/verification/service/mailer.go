package service

import (
	"context"

	"github.com/loginverify/loginverify/backend/go-services/internal/callable"
	"github.com/loginverify/loginverify/backend/go-services/internal/config"
	"github.com/loginverify/loginverify/backend/go-services/internal/mail"
	"github.com/loginverify/loginverify/backend/go-services/pkg/logger"
	"github.com/loginverify/loginverify/backend/go-services/pkg/metrics"
)

const (
	SendStatusSent    = "sent"
	SendStatusSkipped = "skipped"
)

// SendRequest is the callable input of sendVerificationEmail.
type SendRequest struct {
	VerificationID string `json:"verificationId"`
	Email          string `json:"email"`
}

// SendResult is the callable output of sendVerificationEmail.
type SendResult struct {
	Status string `json:"status"`
}

// Mailer composes and dispatches verification emails.
type Mailer struct {
	sender   mail.Sender
	enabled  bool
	from     string
	fromName string
	baseURL  string
}

// NewMailer creates a Mailer. When cfg carries no API key the mailer runs in
// degraded mode and sender is never called (it may be nil).
func NewMailer(cfg *config.Config, sender mail.Sender) *Mailer {
	return &Mailer{
		sender:   sender,
		enabled:  cfg.Mail.Enabled() && sender != nil,
		from:     cfg.Mail.From,
		fromName: cfg.Mail.FromName,
		baseURL:  cfg.Verify.BaseURL,
	}
}

// SendVerificationEmail sends the approve/deny email for req.VerificationID.
// Errors are *callable.Error values with code invalid-argument or internal.
func (m *Mailer) SendVerificationEmail(ctx context.Context, req SendRequest) (*SendResult, error) {
	if req.VerificationID == "" || req.Email == "" {
		return nil, callable.NewError(callable.InvalidArgument, "verificationId and email are required")
	}

	msg := &mail.Message{
		To:       req.Email,
		From:     m.from,
		FromName: m.fromName,
		Subject:  verificationSubject,
		HTML:     verificationHTML(m.baseURL, req.VerificationID),
	}

	if !m.enabled {
		logger.Warnf("SendGrid API Key not set; skipping email send for verification %s", req.VerificationID)
		metrics.MailSends.WithLabelValues(SendStatusSkipped).Inc()
		return &SendResult{Status: SendStatusSkipped}, nil
	}

	if err := m.sender.Send(ctx, msg); err != nil {
		logger.Errorf("sendVerificationEmail error (verification=%s transport=%s): %v", req.VerificationID, m.sender.Name(), err)
		metrics.MailSends.WithLabelValues("failed").Inc()
		return nil, callable.NewError(callable.Internal, "Failed to send email")
	}
	metrics.MailSends.WithLabelValues(SendStatusSent).Inc()
	return &SendResult{Status: SendStatusSent}, nil
}
