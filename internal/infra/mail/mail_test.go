package mail

import (
	"context"
	"io"
	"log/slog"
	"net/smtp"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"valunds/config"
	"valunds/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRenderer_AllTemplates(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, tmpl := range []entity.MailTemplate{
		entity.MailVerifyEmail,
		entity.MailResetPassword,
		entity.MailPasswordResetRequested,
		entity.MailPasswordChanged,
		entity.MailEmailChanged,
		entity.MailAccountLocked,
		entity.MailNewLoginDetected,
	} {
		t.Run(tmpl.String(), func(t *testing.T) {
			body, err := r.Render(tmpl, map[string]string{"name": "Anna"})
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(body, "Hi Anna,"))
			assert.NotContains(t, body, "<no value>")
		})
	}
}

func TestRenderer_FillsData(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	body, err := r.Render(entity.MailVerifyEmail, map[string]string{
		"link":      "http://localhost:5173/verify-email/abc",
		"valid_for": "1 hour",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Hi there,")
	assert.Contains(t, body, "http://localhost:5173/verify-email/abc")
	assert.Contains(t, body, "valid for 1 hour")
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	_, err = r.Render(entity.MailTemplate("welcome_gift"), nil)
	assert.Error(t, err)
}

func newTestSender(send sendFunc) *smtpSender {
	s := newSMTPSender(&config.MailConfig{
		FromAddress:     "kontakt@valunds.se",
		SMTPHost:        "smtp.example.com",
		SMTPUsername:    "user",
		SMTPPassword:    "pass",
		MaxRetryElapsed: 3 * time.Second,
	}, newTestLogger(), send)
	s.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	return s
}

func TestSMTPSender_Send(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	sender := newTestSender(func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		assert.NotNil(t, auth)

		return nil
	})

	err := sender.Send(context.Background(), "anna@example.com", "Verify your Valunds account", "line one\nline two")
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "kontakt@valunds.se", gotFrom)
	assert.Equal(t, []string{"anna@example.com"}, gotTo)

	msg := string(gotMsg)
	assert.Contains(t, msg, "To: anna@example.com\r\n")
	assert.Contains(t, msg, "Subject: Verify your Valunds account\r\n")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=UTF-8\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\nline one\r\nline two"))
}

func TestSMTPSender_RetriesTransientFailures(t *testing.T) {
	calls := 0
	sender := newTestSender(func(string, smtp.Auth, string, []string, []byte) error {
		calls++
		if calls < 3 {
			return &textproto.Error{Code: 421, Msg: "try again later"}
		}

		return nil
	})

	require.NoError(t, sender.Send(context.Background(), "anna@example.com", "s", "b"))
	assert.Equal(t, 3, calls)
}

func TestSMTPSender_PermanentFailure(t *testing.T) {
	calls := 0
	sender := newTestSender(func(string, smtp.Auth, string, []string, []byte) error {
		calls++

		return &textproto.Error{Code: 550, Msg: "mailbox unavailable"}
	})

	err := sender.Send(context.Background(), "nobody@example.com", "s", "b")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestSMTPSender_RejectsHeaderInjection(t *testing.T) {
	sender := newTestSender(func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called")

		return nil
	})

	err := sender.Send(context.Background(), "anna@example.com\r\nBcc: x@example.com", "s", "b")
	assert.Error(t, err)
}

func TestNewSMTPSender_RequiresHost(t *testing.T) {
	_, err := NewSMTPSender(&config.Config{Mail: &config.MailConfig{}}, newTestLogger())
	assert.Error(t, err)
}
