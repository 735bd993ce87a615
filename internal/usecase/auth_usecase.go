// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"valunds/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email           string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
	UserType        string
	PhoneNumber     string
	Address         string
	City            string
	Postcode        string
	Country         string
}

// LoginInput defines the data required for a password login.
type LoginInput struct {
	Email    string
	Password string
	Client   entity.ClientSignature
}

// ResetPasswordInput defines the data required to consume a password reset token.
type ResetPasswordInput struct {
	Token    string
	Password string
	Client   entity.ClientSignature
}

// AuthUsecase defines the password-based authentication and recovery flows.
type AuthUsecase interface {
	// Register creates an inactive, unverified account and queues the verification mail.
	Register(ctx context.Context, input *RegisterInput) (*entity.Account, error)

	// Login checks credentials under the lockout policy and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*entity.AuthResult, error)

	// VerifyEmail consumes a verification token, activates the account and issues a token pair.
	VerifyEmail(ctx context.Context, token string) (*entity.AuthResult, error)

	// ResendVerification issues a new verification token. Unknown or verified emails are ignored.
	ResendVerification(ctx context.Context, email string) error

	// RequestPasswordReset issues a reset token. Unknown emails are ignored.
	RequestPasswordReset(ctx context.Context, email string, client entity.ClientSignature) error

	// ResetPassword consumes a reset token, sets the new password and clears lockout state.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
