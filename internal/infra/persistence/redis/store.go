// Package redis provides a storage.Store backed by Redis, for deployments
// where cart and session state must survive restarts and be shared across
// instances.
package redis

import (
	"context"
	"log/slog"

	"giftie/config"
	"giftie/internal/domain/lifecycle"
	"giftie/internal/domain/storage"
	"giftie/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type redisStore struct {
	client *goredis.Client
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates a Redis-backed store and manages the client lifecycle.
func New(params Params) (storage.Store, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.Redis == nil {
		return nil, errors.New("redis storage config is required")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			params.Logger.Info("Redis storage connected", slog.String("addr", cfg.Redis.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &redisStore{client: client}, nil
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, storage.ErrKeyNotFound
		}

		return nil, errors.Wrap(err, "redis get")
	}

	return value, nil
}

func (s *redisStore) Put(ctx context.Context, key string, value []byte) error {
	// No TTL: storefront state is kept until explicitly cleared.
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}

	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "redis del")
	}

	return nil
}
