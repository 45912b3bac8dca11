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

const wishlistKeyPrefix = "wishlist_"

type wishlistRepository struct {
	store storage.Store
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(store storage.Store) repository.WishlistRepository {
	return &wishlistRepository{store: store}
}

// Load returns the wishlist for the user, oldest first. Missing or corrupt
// stored data loads as an empty list, mirroring cart recovery.
func (repo *wishlistRepository) Load(ctx context.Context, userID string) ([]entity.Product, error) {
	raw, err := repo.store.Get(ctx, wishlistKeyPrefix+userID)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []entity.Product{}, nil
		}

		return nil, domainerrors.NewStorageExecuteError(err, "load wishlist")
	}

	var products []entity.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return []entity.Product{}, nil
	}

	return products, nil
}

// Save persists the wishlist for the user.
func (repo *wishlistRepository) Save(ctx context.Context, userID string, products []entity.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return errors.Wrap(err, "failed to marshal wishlist")
	}

	if err := repo.store.Put(ctx, wishlistKeyPrefix+userID, raw); err != nil {
		return domainerrors.NewStorageExecuteError(err, "save wishlist")
	}

	return nil
}
