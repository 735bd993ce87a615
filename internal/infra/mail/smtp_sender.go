package mail

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"valunds/config"
	"valunds/internal/domain/service"
	"valunds/internal/errors"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

type sendFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

type smtpSender struct {
	addr       string
	host       string
	from       string
	auth       smtp.Auth
	maxElapsed time.Duration
	send       sendFunc
	now        func() time.Time
	logger     *slog.Logger
}

// NewSMTPSender creates the SMTP MailSender used by the mail worker.
func NewSMTPSender(cfg *config.Config, logger *slog.Logger) (service.MailSender, error) {
	if cfg.Mail == nil || cfg.Mail.SMTPHost == "" {
		return nil, errors.New("mail.smtpHost is required")
	}

	return newSMTPSender(cfg.Mail, logger, smtp.SendMail), nil
}

func newSMTPSender(cfg *config.MailConfig, logger *slog.Logger, send sendFunc) *smtpSender {
	port := cfg.SMTPPort
	if port == 0 {
		port = 587
	}

	var auth smtp.Auth
	if cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	}

	return &smtpSender{
		addr:       net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(port)),
		host:       cfg.SMTPHost,
		from:       cfg.FromAddress,
		auth:       auth,
		maxElapsed: cfg.MaxRetryElapsed,
		send:       send,
		now:        time.Now,
		logger:     logger,
	}
}

// Send delivers one message, retrying transient failures with exponential backoff.
// SMTP 5xx replies are permanent and returned without retry.
func (s *smtpSender) Send(ctx context.Context, recipient, subject, body string) error {
	if strings.ContainsAny(recipient, "\r\n") || strings.ContainsAny(subject, "\r\n") {
		return errors.New("header values must not contain line breaks")
	}

	msg := s.compose(recipient, subject, body)
	attempt := 0

	op := func() error {
		attempt++
		err := s.send(s.addr, s.auth, s.from, []string{recipient}, msg)
		if err == nil {
			return nil
		}

		var protoErr *textproto.Error
		if errors.As(err, &protoErr) && protoErr.Code >= 500 {
			return backoff.Permanent(err)
		}

		s.logger.WarnContext(ctx, "SMTP delivery attempt failed",
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxElapsedTime = s.maxElapsed

	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return errors.Wrapf(err, "deliver mail after %d attempts", attempt)
	}

	return nil
}

func (s *smtpSender) compose(recipient, subject, body string) []byte {
	var sb strings.Builder

	header := func(k, v string) {
		fmt.Fprintf(&sb, "%s: %s\r\n", k, v)
	}
	header("From", s.from)
	header("To", recipient)
	header("Subject", mime.QEncoding.Encode("utf-8", subject))
	header("Date", s.now().Format(time.RFC1123Z))
	header("Message-ID", "<"+uuid.NewString()+"@"+s.host+">")
	header("MIME-Version", "1.0")
	header("Content-Type", "text/plain; charset=UTF-8")
	header("Content-Transfer-Encoding", "8bit")
	sb.WriteString("\r\n")
	sb.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))

	return []byte(sb.String())
}
