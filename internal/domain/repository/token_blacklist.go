package repository

import (
	"context"
	"time"
)

// TokenBlacklist is the refresh-token revocation list keyed by jti.
type TokenBlacklist interface {
	// Revoke atomically inserts the jti. It returns true only for the caller that inserted it,
	// so a concurrent replay of the same token observes false.
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) (bool, error)
}
