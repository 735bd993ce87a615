package redis

import (
	"context"
	"time"

	"valunds/config"
	"valunds/internal/domain/repository"
	"valunds/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

// minRevocationTTL keeps entries for tokens that are about to expire anyway.
const minRevocationTTL = time.Second

type tokenBlacklist struct {
	client *goredis.Client
	keys   keyspace
}

// NewTokenBlacklist returns the refresh-token revocation list.
func NewTokenBlacklist(client *goredis.Client, cfg *config.Config) repository.TokenBlacklist {
	return &tokenBlacklist{
		client: client,
		keys:   newKeyspace(prefixOf(cfg), "revoked"),
	}
}

// Revoke inserts the jti with SET NX so that exactly one concurrent caller wins.
func (b *tokenBlacklist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) (bool, error) {
	if ttl < minRevocationTTL {
		ttl = minRevocationTTL
	}

	inserted, err := b.client.SetNX(ctx, b.keys.key(tokenID), 1, ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "revoke refresh token")
	}

	return inserted, nil
}
