package redis

import (
	"context"
	"encoding/json"
	"time"

	"valunds/config"
	"valunds/internal/domain/entity"
	"valunds/internal/domain/repository"
	"valunds/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

type bankIDSessionStore struct {
	client *goredis.Client
	keys   keyspace
}

// NewBankIDSessionStore returns the BankID correlation record store.
func NewBankIDSessionStore(client *goredis.Client, cfg *config.Config) repository.BankIDSessionStore {
	return &bankIDSessionStore{
		client: client,
		keys:   newKeyspace(prefixOf(cfg), "bankid"),
	}
}

func (s *bankIDSessionStore) Save(ctx context.Context, key string, session *entity.BankIDSession, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "encode bankid session")
	}

	if err := s.client.Set(ctx, s.keys.key(key), payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "save bankid session")
	}

	return nil
}

func (s *bankIDSessionStore) Get(ctx context.Context, key string) (*entity.BankIDSession, error) {
	payload, err := s.client.Get(ctx, s.keys.key(key)).Bytes()

	return decodeBankIDSession(payload, err)
}

func (s *bankIDSessionStore) Take(ctx context.Context, key string) (*entity.BankIDSession, error) {
	payload, err := s.client.GetDel(ctx, s.keys.key(key)).Bytes()

	return decodeBankIDSession(payload, err)
}

func (s *bankIDSessionStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.keys.key(key)).Err(); err != nil {
		return errors.Wrap(err, "delete bankid session")
	}

	return nil
}

func decodeBankIDSession(payload []byte, err error) (*entity.BankIDSession, error) {
	if errors.Is(err, goredis.Nil) {
		return nil, repository.ErrBankIDSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "read bankid session")
	}

	var session entity.BankIDSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, errors.Wrap(err, "decode bankid session")
	}

	return &session, nil
}
