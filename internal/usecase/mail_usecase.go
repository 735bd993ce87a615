package usecase

import (
	"context"

	"valunds/internal/domain/entity"
	"valunds/internal/errors"
)

// ErrMalformedMail marks a mail job that can never be delivered. Transports acknowledge
// it instead of redelivering.
var ErrMalformedMail = errors.New("malformed mail message")

// MailDeliveryUsecase renders and delivers mail jobs consumed by the mail worker.
type MailDeliveryUsecase interface {
	Deliver(ctx context.Context, msg *entity.MailMessage) error
}
