package impl

import (
	"context"
	"log/slog"

	deliverycontext "valunds/internal/delivery/context"
	"valunds/internal/domain/entity"
	"valunds/internal/domain/service"
	"valunds/internal/errors"
	"valunds/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// mailDeliveryService implements the MailDeliveryUsecase interface.
type mailDeliveryService struct {
	renderer service.MailRenderer
	sender   service.MailSender
	validate *validator.Validate
	logger   *slog.Logger
}

// MailDeliveryServiceParams holds dependencies for MailDeliveryService, injected by Fx.
type MailDeliveryServiceParams struct {
	fx.In

	Renderer service.MailRenderer
	Sender   service.MailSender
	Logger   *slog.Logger
}

// NewMailDeliveryService is the constructor for mailDeliveryService.
func NewMailDeliveryService(params MailDeliveryServiceParams) usecase.MailDeliveryUsecase {
	return &mailDeliveryService{
		renderer: params.Renderer,
		sender:   params.Sender,
		validate: validator.New(),
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *mailDeliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Deliver renders and sends one job. Jobs that can never succeed are reported as
// ErrMalformedMail; any other error is worth redelivering.
func (srv *mailDeliveryService) Deliver(ctx context.Context, msg *entity.MailMessage) error {
	if msg == nil || !msg.Template.IsValid() {
		return errors.Wrap(usecase.ErrMalformedMail, "unknown template")
	}
	if err := srv.validate.Var(msg.Recipient, "required,email"); err != nil {
		return errors.Wrap(usecase.ErrMalformedMail, "invalid recipient")
	}

	body, err := srv.renderer.Render(msg.Template, msg.Data)
	if err != nil {
		return errors.Wrap(usecase.ErrMalformedMail, err.Error())
	}

	subject := msg.Subject
	if subject == "" {
		subject = msg.Template.Subject()
	}

	if err := srv.sender.Send(ctx, msg.Recipient, subject, body); err != nil {
		srv.log(ctx).Error("Mail delivery failed",
			slog.String("template", msg.Template.String()),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to send mail")
	}

	srv.log(ctx).Info("Mail delivered", slog.String("template", msg.Template.String()))

	return nil
}
