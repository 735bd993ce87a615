package repository

import (
	"context"
	"time"

	"valunds/internal/domain/entity"
	"valunds/internal/errors"
)

// ErrBankIDSessionNotFound is returned when no correlation record exists for the key.
var ErrBankIDSessionNotFound = errors.New("bankid session not found")

// BankIDSessionStore holds the expiring correlation record of a pending BankID order.
type BankIDSessionStore interface {
	// Save stores the record under key for ttl.
	Save(ctx context.Context, key string, session *entity.BankIDSession, ttl time.Duration) error

	// Get returns the record or ErrBankIDSessionNotFound.
	Get(ctx context.Context, key string) (*entity.BankIDSession, error)

	// Take atomically reads and removes the record, or returns ErrBankIDSessionNotFound.
	Take(ctx context.Context, key string) (*entity.BankIDSession, error)

	// Delete removes the record. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
