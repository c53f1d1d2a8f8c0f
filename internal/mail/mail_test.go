package mail

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/loginverify/loginverify/backend/go-services/internal/config"
	"github.com/stretchr/testify/require"
)

func testMessage() *Message {
	return &Message{
		To:       "user@example.com",
		From:     "no-reply@example.com",
		FromName: "Login Check",
		Subject:  "Confirm your login",
		HTML:     `<a href="https://example.com?action=approve&id=abc123">yes</a>`,
	}
}

func TestNewSender(t *testing.T) {
	s, err := NewSender(config.MailConfig{APIKey: "k"})
	require.NoError(t, err)
	require.Equal(t, "sendgrid", s.Name())

	s, err = NewSender(config.MailConfig{APIKey: "k", Transport: config.TransportSMTP, SMTPHost: "smtp.example.com", SMTPPort: 587, SMTPUser: "apikey"})
	require.NoError(t, err)
	require.Equal(t, "smtp", s.Name())

	_, err = NewSender(config.MailConfig{Transport: "pigeon"})
	require.Error(t, err)
}

func TestSendGridSender_Send(t *testing.T) {
	var gotPath, gotAuth string
	var payload map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &payload)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := NewSendGridSender("SG.test", srv.URL)
	require.NoError(t, s.Send(context.Background(), testMessage()))

	require.Equal(t, "/v3/mail/send", gotPath)
	require.Equal(t, "Bearer SG.test", gotAuth)
	require.Equal(t, "Confirm your login", payload["subject"])
	from := payload["from"].(map[string]interface{})
	require.Equal(t, "no-reply@example.com", from["email"])

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	require.Contains(t, string(raw), "user@example.com")
	require.Contains(t, string(raw), "text/html")
}

func TestSendGridSender_RejectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	defer srv.Close()

	err := NewSendGridSender("wrong", srv.URL).Send(context.Background(), testMessage())
	require.Error(t, err)
	require.Contains(t, err.Error(), "401")
}

func TestBuildMessage(t *testing.T) {
	m := buildMessage(testMessage())
	require.Equal(t, []string{"user@example.com"}, m.GetHeader("To"))
	require.Equal(t, []string{"Confirm your login"}, m.GetHeader("Subject"))
	require.Len(t, m.GetHeader("From"), 1)
	require.Contains(t, m.GetHeader("From")[0], "no-reply@example.com")

	plain := testMessage()
	plain.FromName = ""
	require.Equal(t, []string{"no-reply@example.com"}, buildMessage(plain).GetHeader("From"))
}

func TestSMTPSender_CanceledContext(t *testing.T) {
	s := NewSMTPSender("127.0.0.1", 1, "apikey", "secret")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.Send(ctx, testMessage()), context.Canceled)
}
