package repository

import (
	"context"
	"time"
)

// OAuthStateStore keeps the anti-forgery state values of pending OAuth redirects.
type OAuthStateStore interface {
	// Save records the state for ttl.
	Save(ctx context.Context, state string, ttl time.Duration) error

	// Consume removes the state and reports whether it existed.
	Consume(ctx context.Context, state string) (bool, error)
}
