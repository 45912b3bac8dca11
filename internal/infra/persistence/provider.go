// Package persistence selects and wires the key-value storage driver the
// repositories run on.
package persistence

import (
	"log/slog"

	"giftie/config"
	"giftie/internal/domain/constants"
	"giftie/internal/domain/storage"
	"giftie/internal/infra/persistence/memory"
	"giftie/internal/infra/persistence/postgres"
	"giftie/internal/infra/persistence/redis"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the storage driver, injected by Fx
type StoreParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewStore creates a storage.Store based on configuration. With no storage
// section configured the in-memory driver is used, matching the storefront's
// mock-first deployment.
func NewStore(params StoreParams) (storage.Store, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	driver := constants.StorageDriverMemory
	if cfg != nil && cfg.Driver != "" {
		driver = cfg.Driver
	}

	switch driver {
	case constants.StorageDriverMemory:
		logger.Info("Using in-memory storage driver")

		return memory.New(), nil

	case constants.StorageDriverRedis:
		logger.Info("Using Redis storage driver")

		return redis.New(redis.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    logger,
		})

	case constants.StorageDriverPostgres:
		logger.Info("Using PostgreSQL storage driver")

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewStore(db)

	default:
		return nil, errors.Errorf("unknown storage driver: %s", driver)
	}
}
