package repository

import (
	"context"

	"valunds/internal/domain/entity"

	"github.com/google/uuid"
)

// SecurityEventRepository is the append-only security event log.
type SecurityEventRepository interface {
	// Create appends a security event.
	Create(ctx context.Context, event *entity.SecurityEvent) error

	// ListRecent returns the newest events first, at most limit rows.
	ListRecent(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.SecurityEvent, error)

	// MarkNotified flips notified to true. It reports false when the event was already notified.
	MarkNotified(ctx context.Context, id uuid.UUID) (bool, error)

	// ReleaseNotified undoes a MarkNotified whose mail could not be published.
	ReleaseNotified(ctx context.Context, id uuid.UUID) error
}
