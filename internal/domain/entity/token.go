// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenType distinguishes access from refresh tokens.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// TokenPair is a freshly minted access and refresh token.
type TokenPair struct {
	AccessToken      string    `json:"access"`
	RefreshToken     string    `json:"refresh"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// TokenClaims is the verified content of an access or refresh token.
type TokenClaims struct {
	AccountID uuid.UUID
	TokenID   string // jti, the revocation key for refresh tokens
	Type      TokenType
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// AuthResult is what every successful authentication flow hands back.
type AuthResult struct {
	Account *Account
	Tokens  *TokenPair
}
