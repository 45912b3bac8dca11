package usecase

import (
	"context"

	"giftie/internal/domain/entity"
)

// WishlistUsecase maintains the per-user wishlist.
type WishlistUsecase interface {
	// ListWishlist returns the user's saved products, oldest first.
	ListWishlist(ctx context.Context, userID string) ([]entity.Product, error)

	// AddToWishlist saves a product; adding a product twice is a no-op.
	AddToWishlist(ctx context.Context, userID, productID string) ([]entity.Product, error)

	// RemoveFromWishlist drops a product; removing an absent one is a no-op.
	RemoveFromWishlist(ctx context.Context, userID, productID string) ([]entity.Product, error)
}
