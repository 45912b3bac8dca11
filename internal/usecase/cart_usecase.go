// Package usecase defines the application service interfaces and their
// input/output types.
package usecase

import (
	"context"

	"giftie/internal/domain/entity"
)

// CartUsecase maintains the invariant-consistent cart for one identity key.
// Every mutation persists the resulting cart before returning it.
type CartUsecase interface {
	// GetCart loads the cart for the identity key, creating an empty one on
	// first access or after storage corruption.
	GetCart(ctx context.Context, identityKey string) (*entity.Cart, error)

	// AddItem merges qty of the product into the cart. qty must be >= 1.
	AddItem(ctx context.Context, identityKey, productID string, qty int) (*entity.Cart, error)

	// SetQuantity replaces an item's quantity; qty <= 0 removes the item.
	// Setting the quantity of an absent product leaves the cart unchanged.
	SetQuantity(ctx context.Context, identityKey, productID string, qty int) (*entity.Cart, error)

	// RemoveItem removes an item; removing an absent product is a no-op.
	RemoveItem(ctx context.Context, identityKey, productID string) (*entity.Cart, error)

	// ClearCart resets the cart to empty.
	ClearCart(ctx context.Context, identityKey string) (*entity.Cart, error)
}
