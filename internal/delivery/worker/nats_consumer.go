package worker

import (
	"context"
	"log/slog"
	"sync"

	"valunds/config"
	"valunds/internal/delivery"
	"valunds/internal/delivery/worker/handler"
	"valunds/internal/domain/constants"
	"valunds/internal/errors"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
)

// NATSConsumerParams holds dependencies for the NATS consumer
type NATSConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *handler.MailJobProcessor
}

type natsConsumer struct {
	cfg       *config.PubSubConfig
	logger    *slog.Logger
	processor *handler.MailJobProcessor

	mu      sync.Mutex
	conn    *nats.Conn
	stopped bool
}

// NewNATSConsumer creates the queue subscriber used when mail jobs travel over NATS.
// With any other provider Serve returns immediately.
func NewNATSConsumer(params NATSConsumerParams) (delivery.Delivery, error) {
	consumer := &natsConsumer{
		cfg:       params.Cfg.PubSub,
		logger:    params.Logger,
		processor: params.Processor,
	}

	params.Lc.Append(fx.Hook{
		OnStop: consumer.stop,
	})

	return consumer, nil
}

func (s *natsConsumer) enabled() bool {
	return s.cfg != nil && s.cfg.Provider == constants.PubSubProviderNats
}

// Serve joins the queue group and returns once the subscription is active.
func (s *natsConsumer) Serve(_ context.Context) error {
	if !s.enabled() {
		return nil
	}

	conn, err := nats.Connect(s.cfg.NatsURL, nats.Name("valunds-mailworker"))
	if err != nil {
		return errors.Wrap(err, "connect to NATS")
	}

	if _, err := conn.QueueSubscribe(s.cfg.NatsSubject, s.cfg.NatsQueue, s.handle); err != nil {
		conn.Close()

		return errors.Wrapf(err, "subscribe to %s", s.cfg.NatsSubject)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		conn.Close()

		return nil
	}
	s.conn = conn

	s.logger.Info("Consuming mail jobs from NATS",
		slog.String("subject", s.cfg.NatsSubject),
		slog.String("queue", s.cfg.NatsQueue),
	)

	return nil
}

// handle processes one job. Core NATS does not redeliver, so a transient failure that
// outlived the sender's own retries is logged and the job is lost.
func (s *natsConsumer) handle(msg *nats.Msg) {
	attributes := make(map[string]string, len(msg.Header))
	for key := range msg.Header {
		attributes[key] = msg.Header.Get(key)
	}

	if err := s.processor.Process(context.Background(), msg.Data, attributes); err != nil {
		s.logger.Error("[NATS] Mail job dropped after delivery failure",
			slog.String("subject", msg.Subject),
			slog.Any("error", err),
		)
	}
}

// stop runs from the fx OnStop hook, concurrently with a Serve that may still be connecting.
func (s *natsConsumer) stop(_ context.Context) error {
	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.stopped = true
	s.mu.Unlock()

	if conn == nil {
		return nil
	}

	s.logger.Info("Draining NATS mail consumer")

	return errors.Wrap(conn.Drain(), "drain NATS connection")
}
