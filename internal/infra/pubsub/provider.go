// Package pubsub publishes mail jobs to the mail worker over the configured transport.
package pubsub

import (
	"context"
	"log/slog"

	"valunds/config"
	"valunds/internal/domain/constants"
	"valunds/internal/domain/entity"
	"valunds/internal/domain/service"
	"valunds/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher is used when mail dispatch is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishMail(ctx context.Context, msg *entity.MailMessage) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Mail publishing disabled, skipping",
		slog.String("template", msg.Template.String()),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for MailPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMailPublisher creates a MailPublisher based on configuration
func NewMailPublisher(params PublisherParams) (service.MailPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PubSubProviderNoop {
		logger.Info("PubSub not configured, using no-op mail publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.MailPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for mail jobs", slog.String("endpoint", cfg.LocalEndpoint))

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher for mail jobs",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case constants.PubSubProviderNats:
		if cfg.NatsURL == "" || cfg.NatsSubject == "" {
			return nil, errors.New("natsUrl and natsSubject are required for nats provider")
		}
		logger.Info("Using NATS publisher for mail jobs", slog.String("subject", cfg.NatsSubject))

		publisher, err = NewNATSPublisher(cfg.NatsURL, cfg.NatsSubject, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing MailPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// messageAttributes are copied onto every transport so the worker can trace and route jobs.
func messageAttributes(msg *entity.MailMessage) map[string]string {
	attributes := map[string]string{
		constants.AttributeTemplate: msg.Template.String(),
	}
	if msg.RequestID != "" {
		attributes[constants.AttributeRequestID] = msg.RequestID
	}

	return attributes
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMailPublisher),
)
