// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"valunds/internal/domain/entity"
)

// SessionUsecase issues, rotates and revokes token pairs.
type SessionUsecase interface {
	// Issue mints a fresh token pair for an authenticated account.
	Issue(ctx context.Context, account *entity.Account) (*entity.TokenPair, error)

	// Rotate revokes the presented refresh token and mints a new pair. A token that was
	// already rotated or revoked yields ErrRefreshTokenInvalid.
	Rotate(ctx context.Context, refreshToken string) (*entity.TokenPair, error)

	// Revoke puts the refresh token on the revocation list. Invalid or already revoked
	// tokens are ignored.
	Revoke(ctx context.Context, refreshToken string) error

	// VerifyAccess resolves an access token to its active account.
	VerifyAccess(ctx context.Context, accessToken string) (*entity.Account, error)
}
