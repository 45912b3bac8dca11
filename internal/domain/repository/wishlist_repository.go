package repository

import (
	"context"

	"giftie/internal/domain/entity"
)

// WishlistRepository persists the per-user wishlist as an ordered list of
// products. Like carts, a missing or unreadable stored wishlist loads as
// empty.
type WishlistRepository interface {
	// Load returns the wishlist for the user, oldest first.
	Load(ctx context.Context, userID string) ([]entity.Product, error)

	// Save persists the wishlist for the user.
	Save(ctx context.Context, userID string, products []entity.Product) error
}
