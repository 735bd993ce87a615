package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"valunds/config"
	deliverycontext "valunds/internal/delivery/context"
	"valunds/internal/domain/entity"
	"valunds/internal/domain/repository"
	"valunds/internal/domain/service"

	"github.com/google/uuid"
)

const mailTimeLayout = "2006-01-02 15:04 MST"

// notice is a mail queued during a transaction and dispatched after it commits.
// When eventID or attemptID is set the record's notified flag is claimed first,
// so a notice tied to a record is sent at most once. A claim whose mail could not
// be published is released again.
type notice struct {
	template  entity.MailTemplate
	recipient string
	data      map[string]string
	eventID   uuid.UUID
	attemptID uuid.UUID
}

// notifier publishes notices on a best-effort basis. Nothing it does fails the caller.
type notifier struct {
	publisher   service.MailPublisher
	attempts    repository.LoginAttemptRepository
	events      repository.SecurityEventRepository
	frontendURL string
	logger      *slog.Logger
}

func newNotifier(cfg *config.Config, publisher service.MailPublisher, attempts repository.LoginAttemptRepository,
	events repository.SecurityEventRepository, logger *slog.Logger,
) *notifier {
	return &notifier{
		publisher:   publisher,
		attempts:    attempts,
		events:      events,
		frontendURL: cfg.Frontend.URL,
		logger:      logger,
	}
}

func (n *notifier) dispatch(ctx context.Context, notices ...notice) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger)

	for _, item := range notices {
		held, ok := n.claim(ctx, logger, item)
		if !ok {
			continue
		}

		msg := &entity.MailMessage{
			Template:  item.template,
			Recipient: item.recipient,
			Subject:   item.template.Subject(),
			Data:      item.data,
			RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		}

		if err := n.publisher.PublishMail(ctx, msg); err != nil {
			logger.Error("Failed to publish mail",
				slog.String("template", item.template.String()),
				slog.Any("error", err),
			)
			n.release(ctx, logger, held)
		}
	}
}

// claimed records which notified flags a notice set.
type claimed struct {
	eventID   uuid.UUID
	attemptID uuid.UUID
}

func (n *notifier) claim(ctx context.Context, logger *slog.Logger, item notice) (claimed, bool) {
	var held claimed

	if item.eventID != uuid.Nil {
		ok, err := n.events.MarkNotified(ctx, item.eventID)
		if err != nil {
			logger.Error("Failed to mark security event notified", slog.Any("error", err))

			return held, false
		}
		if !ok {
			return held, false
		}
		held.eventID = item.eventID
	}

	if item.attemptID != uuid.Nil {
		ok, err := n.attempts.MarkNotified(ctx, item.attemptID)
		if err != nil {
			logger.Error("Failed to mark login attempt notified", slog.Any("error", err))
			n.release(ctx, logger, held)

			return claimed{}, false
		}
		if ok {
			held.attemptID = item.attemptID
		} else if item.eventID == uuid.Nil {
			return held, false
		}
	}

	return held, true
}

func (n *notifier) release(ctx context.Context, logger *slog.Logger, held claimed) {
	if held.eventID != uuid.Nil {
		if err := n.events.ReleaseNotified(ctx, held.eventID); err != nil {
			logger.Error("Failed to release security event notified flag", slog.Any("error", err))
		}
	}

	if held.attemptID != uuid.Nil {
		if err := n.attempts.ReleaseNotified(ctx, held.attemptID); err != nil {
			logger.Error("Failed to release login attempt notified flag", slog.Any("error", err))
		}
	}
}

func (n *notifier) verifyEmailNotice(account *entity.Account, token string, validFor time.Duration) notice {
	return notice{
		template:  entity.MailVerifyEmail,
		recipient: account.Email,
		data: map[string]string{
			"name":      account.FirstName,
			"link":      n.frontendURL + "/verify-email/" + token,
			"valid_for": humanDuration(validFor),
		},
	}
}

func (n *notifier) resetPasswordNotice(account *entity.Account, token string, validFor time.Duration) notice {
	return notice{
		template:  entity.MailResetPassword,
		recipient: account.Email,
		data: map[string]string{
			"name":      account.FirstName,
			"link":      n.frontendURL + "/reset-password/" + token,
			"valid_for": humanDuration(validFor),
		},
	}
}

// eventNotice builds the notice attached to a recorded security event.
func eventNotice(template entity.MailTemplate, recipient string, account *entity.Account, event *entity.SecurityEvent,
	extra map[string]string,
) notice {
	data := map[string]string{
		"name":       account.FirstName,
		"time":       event.OccurredAt.UTC().Format(mailTimeLayout),
		"ip_address": event.IPAddress,
	}
	for k, v := range extra {
		data[k] = v
	}

	return notice{
		template:  template,
		recipient: recipient,
		data:      data,
		eventID:   event.ID,
	}
}

func humanDuration(d time.Duration) string {
	if d >= time.Hour && d%time.Hour == 0 {
		hours := int(d / time.Hour)
		if hours == 1 {
			return "1 hour"
		}

		return strconv.Itoa(hours) + " hours"
	}

	return strconv.Itoa(int(d.Minutes())) + " minutes"
}
