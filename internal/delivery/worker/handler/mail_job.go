// Package handler holds the mail worker entry points. Every transport hands the raw job to
// MailJobProcessor, which decides whether the job is done or must be redelivered.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	deliverycontext "valunds/internal/delivery/context"
	"valunds/internal/domain/constants"
	"valunds/internal/domain/entity"
	"valunds/internal/errors"
	"valunds/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// retryableError wraps an error to indicate the transport should redeliver the job
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryable reports whether err asks for the job to be redelivered.
func IsRetryable(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}

// MailJobProcessorParams holds dependencies for MailJobProcessor, injected by Fx.
type MailJobProcessorParams struct {
	fx.In

	MailUC usecase.MailDeliveryUsecase
	Logger *slog.Logger
}

// MailJobProcessor decodes and delivers one mail job.
type MailJobProcessor struct {
	mailUC usecase.MailDeliveryUsecase
	logger *slog.Logger
}

// NewMailJobProcessor is the constructor for MailJobProcessor
func NewMailJobProcessor(params MailJobProcessorParams) *MailJobProcessor {
	return &MailJobProcessor{
		mailUC: params.MailUC,
		logger: params.Logger,
	}
}

// Process delivers the JSON encoded job in data. Jobs that can never succeed are logged and
// dropped; only transient failures come back as a retryable error.
func (p *MailJobProcessor) Process(ctx context.Context, data []byte, attributes map[string]string) error {
	var msg entity.MailMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		p.logger.ErrorContext(ctx, "[Worker] Failed to parse mail job", slog.Any("error", err))

		return nil
	}

	requestID := extractRequestID(ctx, attributes, &msg)
	reqLogger := p.logger.With(slog.String(constants.AttributeRequestID, requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.InfoContext(ctx, "[Worker] Processing mail job", slog.String("template", msg.Template.String()))

	if err := p.mailUC.Deliver(ctx, &msg); err != nil {
		if errors.Is(err, usecase.ErrMalformedMail) {
			reqLogger.ErrorContext(ctx, "[Worker] Dropping malformed mail job",
				slog.String("template", msg.Template.String()),
				slog.Any("error", err),
			)

			return nil
		}

		reqLogger.ErrorContext(ctx, "[Worker] Failed to deliver mail",
			slog.String("template", msg.Template.String()),
			slog.Any("error", err),
		)

		return newRetryableError(err)
	}

	reqLogger.InfoContext(ctx, "[Worker] Mail delivered", slog.String("template", msg.Template.String()))

	return nil
}

// extractRequestID picks the trace ID from the transport attributes, then the job itself,
// then the incoming context, and generates one as a last resort.
func extractRequestID(ctx context.Context, attributes map[string]string, msg *entity.MailMessage) string {
	if requestID := attributes[constants.AttributeRequestID]; requestID != "" {
		return requestID
	}

	if msg.RequestID != "" {
		return msg.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}
