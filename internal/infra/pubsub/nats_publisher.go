package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"valunds/internal/domain/entity"
	"valunds/internal/domain/service"
	"valunds/internal/errors"

	"github.com/nats-io/nats.go"
)

const natsFlushTimeout = 3 * time.Second

type natsPublisher struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

// NewNATSPublisher connects to url and publishes mail jobs on subject.
func NewNATSPublisher(url, subject string, logger *slog.Logger) (service.MailPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("valunds-accounts"))
	if err != nil {
		return nil, errors.Wrap(err, "connect to NATS")
	}

	return newNATSPublisher(conn, subject, logger), nil
}

func newNATSPublisher(conn *nats.Conn, subject string, logger *slog.Logger) *natsPublisher {
	return &natsPublisher{conn: conn, subject: subject, logger: logger}
}

// PublishMail publishes the job and flushes so connection errors surface to the caller.
func (p *natsPublisher) PublishMail(ctx context.Context, msg *entity.MailMessage) error {
	out, err := newNATSMessage(p.subject, msg)
	if err != nil {
		return err
	}

	if err := p.conn.PublishMsg(out); err != nil {
		return errors.Wrap(err, "publish mail job")
	}

	flushCtx, cancel := context.WithTimeout(ctx, natsFlushTimeout)
	defer cancel()

	if err := p.conn.FlushWithContext(flushCtx); err != nil {
		return errors.Wrap(err, "flush NATS connection")
	}

	p.logger.InfoContext(ctx, "[NATS] Mail job published",
		slog.String("subject", p.subject),
		slog.String("template", msg.Template.String()),
	)

	return nil
}

func (p *natsPublisher) Close() error {
	if p.conn == nil {
		return nil
	}

	return errors.Wrap(p.conn.Drain(), "drain NATS connection")
}

func newNATSMessage(subject string, msg *entity.MailMessage) (*nats.Msg, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	out := nats.NewMsg(subject)
	out.Data = data
	for k, v := range messageAttributes(msg) {
		out.Header.Set(k, v)
	}

	return out, nil
}
