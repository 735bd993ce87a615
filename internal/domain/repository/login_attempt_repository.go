package repository

import (
	"context"
	"time"

	"valunds/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginAttemptRepository is the append-only login attempt ledger.
type LoginAttemptRepository interface {
	// Create appends a login attempt.
	Create(ctx context.Context, attempt *entity.LoginAttempt) error

	// ListSuccessfulSince returns the account's successful attempts at or after since.
	ListSuccessfulSince(ctx context.Context, accountID uuid.UUID, since time.Time) ([]*entity.LoginAttempt, error)

	// ListRecent returns the newest attempts first, at most limit rows.
	ListRecent(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.LoginAttempt, error)

	// MarkNotified flips notified to true. It reports false when the attempt was already notified.
	MarkNotified(ctx context.Context, id uuid.UUID) (bool, error)

	// ReleaseNotified undoes a MarkNotified whose mail could not be published.
	ReleaseNotified(ctx context.Context, id uuid.UUID) error
}
