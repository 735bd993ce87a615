// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"valunds/internal/domain/entity"
	"valunds/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when a lookup matches no account.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when the email is already taken.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrDuplicateBankIDIdentity is returned when the BankID identifier hash is already linked.
	ErrDuplicateBankIDIdentity = errors.New("bankid identity already linked")
)

// AccountRepository defines the persistence operations for accounts.
// The ForUpdate variants take a row lock and must run inside TransactionManager.Execute.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByIDForUpdate retrieves and row-locks an account by ID.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByEmailForUpdate retrieves and row-locks an account by email.
	FindByEmailForUpdate(ctx context.Context, email string) (*entity.Account, error)

	// FindByVerificationToken retrieves and row-locks the account holding the verification token.
	FindByVerificationToken(ctx context.Context, token string) (*entity.Account, error)

	// FindByPasswordResetToken retrieves and row-locks the account holding the reset token.
	FindByPasswordResetToken(ctx context.Context, token string) (*entity.Account, error)

	// FindByBankIDHash retrieves and row-locks the account linked to a BankID identifier hash.
	FindByBankIDHash(ctx context.Context, hash string) (*entity.Account, error)

	// Create persists a new account.
	Create(ctx context.Context, account *entity.Account) error

	// Update writes every mutable field of an existing account.
	Update(ctx context.Context, account *entity.Account) error
}
