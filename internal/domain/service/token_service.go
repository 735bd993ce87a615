package service

import (
	"time"

	"valunds/internal/domain/entity"
	"valunds/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for malformed, expired, mis-signed or mistyped tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	AccountID uuid.UUID        `json:"account_id"`
	Type      entity.TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokenPair signs a new access and refresh token for the account.
	GenerateTokenPair(accountID uuid.UUID) (*entity.TokenPair, error)

	// ParseAccessToken verifies an access token and returns its claims.
	ParseAccessToken(tokenString string) (*entity.TokenClaims, error)

	// ParseRefreshToken verifies a refresh token and returns its claims.
	ParseRefreshToken(tokenString string) (*entity.TokenClaims, error)

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration
}
