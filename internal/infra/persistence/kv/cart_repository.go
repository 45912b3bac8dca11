// Package kv implements the domain repositories on top of the storage.Store
// capability. Entities are stored as JSON blobs under well-known keys, so
// every storage driver (memory, Redis, PostgreSQL) behaves identically.
package kv

import (
	"context"
	"encoding/json"

	"giftie/internal/domain/entity"
	domainerrors "giftie/internal/domain/errors"
	"giftie/internal/domain/repository"
	"giftie/internal/domain/storage"
	"giftie/internal/errors"
)

const cartKeyPrefix = "cart_"

type cartRepository struct {
	store storage.Store
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(store storage.Store) repository.CartRepository {
	return &cartRepository{store: store}
}

// Load returns the stored cart for the identity key. A missing or corrupt
// stored cart loads as a fresh empty one; shoppers never see a broken cart.
func (repo *cartRepository) Load(ctx context.Context, identityKey string) (*entity.Cart, error) {
	raw, err := repo.store.Get(ctx, cartKeyPrefix+identityKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return entity.NewCart(), nil
		}

		return nil, domainerrors.NewStorageExecuteError(err, "load cart")
	}

	var cart entity.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		// Corrupt state is discarded, not surfaced.
		return entity.NewCart(), nil
	}

	return &cart, nil
}

// Save persists the cart under the identity key.
func (repo *cartRepository) Save(ctx context.Context, identityKey string, cart *entity.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(err, "failed to marshal cart")
	}

	if err := repo.store.Put(ctx, cartKeyPrefix+identityKey, raw); err != nil {
		return domainerrors.NewStorageExecuteError(err, "save cart")
	}

	return nil
}

// Clear removes the stored cart for the identity key.
func (repo *cartRepository) Clear(ctx context.Context, identityKey string) error {
	if err := repo.store.Delete(ctx, cartKeyPrefix+identityKey); err != nil {
		return domainerrors.NewStorageExecuteError(err, "clear cart")
	}

	return nil
}
