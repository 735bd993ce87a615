// Package redis implements the expiring stores of the accounts service on Redis.
package redis

import (
	"context"
	"log/slog"
	"strings"

	"valunds/config"
	"valunds/internal/domain/lifecycle"
	"valunds/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Redis client and ties it to the fx lifecycle.
func New(params Params) (*goredis.Client, error) {
	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		return nil, errors.New("redis.addr is required")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.InfoContext(ctx, "Connected to Redis", slog.String("addr", params.Config.Redis.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// keyspace builds namespaced keys such as "valunds:revoked:<jti>".
type keyspace string

func newKeyspace(prefix, name string) keyspace {
	prefix = strings.TrimSuffix(prefix, ":")
	if prefix == "" {
		return keyspace(name)
	}

	return keyspace(prefix + ":" + name)
}

func (k keyspace) key(id string) string {
	return string(k) + ":" + id
}

func prefixOf(cfg *config.Config) string {
	if cfg == nil || cfg.Redis == nil {
		return ""
	}

	return cfg.Redis.KeyPrefix
}
