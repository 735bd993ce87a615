package redis

import (
	"context"
	"time"

	"valunds/config"
	"valunds/internal/domain/repository"
	"valunds/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

type oauthStateStore struct {
	client *goredis.Client
	keys   keyspace
}

// NewOAuthStateStore returns the single-use OAuth state store.
func NewOAuthStateStore(client *goredis.Client, cfg *config.Config) repository.OAuthStateStore {
	return &oauthStateStore{
		client: client,
		keys:   newKeyspace(prefixOf(cfg), "oauth_state"),
	}
}

func (s *oauthStateStore) Save(ctx context.Context, state string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.keys.key(state), 1, ttl).Err(); err != nil {
		return errors.Wrap(err, "save oauth state")
	}

	return nil
}

func (s *oauthStateStore) Consume(ctx context.Context, state string) (bool, error) {
	if state == "" {
		return false, nil
	}

	err := s.client.GetDel(ctx, s.keys.key(state)).Err()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "consume oauth state")
	}

	return true, nil
}
