package usecase

import (
	"context"

	"valunds/internal/domain/entity"

	"github.com/google/uuid"
)

// ChangePasswordInput defines the data required to change the password of a signed-in account.
type ChangePasswordInput struct {
	AccountID       uuid.UUID
	CurrentPassword string
	NewPassword     string
	RefreshToken    string // the caller's current refresh token, revoked on success when present
	Client          entity.ClientSignature
}

// ChangeEmailInput defines the data required to move an account to a new email address.
type ChangeEmailInput struct {
	AccountID uuid.UUID
	NewEmail  string
	Client    entity.ClientSignature
}

// DeleteAccountInput defines the data required to deactivate an account.
type DeleteAccountInput struct {
	AccountID    uuid.UUID
	Password     string
	RefreshToken string
}

// AccountUsecase defines the self-service operations of a signed-in account.
type AccountUsecase interface {
	GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, update *entity.ProfileUpdate) (*entity.Account, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) (*entity.TokenPair, error)
	ChangeEmail(ctx context.Context, input *ChangeEmailInput) error
	DeleteAccount(ctx context.Context, input *DeleteAccountInput) error
	LoginHistory(ctx context.Context, accountID uuid.UUID) ([]*entity.LoginAttempt, error)
	SecurityEvents(ctx context.Context, accountID uuid.UUID) ([]*entity.SecurityEvent, error)
}
