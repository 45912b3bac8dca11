// Package impl contains the application service implementations.
package impl

import (
	"context"

	"giftie/internal/domain/entity"
	domainerrors "giftie/internal/domain/errors"
	"giftie/internal/domain/repository"
	"giftie/internal/errors"
	"giftie/internal/usecase"
)

type cartService struct {
	cartRepo repository.CartRepository
	catalog  repository.ProductCatalog
}

// NewCartService creates a new cart service instance
func NewCartService(cartRepo repository.CartRepository, catalog repository.ProductCatalog) usecase.CartUsecase {
	return &cartService{
		cartRepo: cartRepo,
		catalog:  catalog,
	}
}

// GetCart loads the cart for the identity key.
func (s *cartService) GetCart(ctx context.Context, identityKey string) (*entity.Cart, error) {
	cart, err := s.cartRepo.Load(ctx, identityKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

// AddItem merges qty of the product into the cart and persists the result.
func (s *cartService) AddItem(ctx context.Context, identityKey, productID string, qty int) (*entity.Cart, error) {
	if qty < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	product, err := s.catalog.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.InStock {
		return nil, domainerrors.ErrProductOutOfStock
	}

	cart, err := s.cartRepo.Load(ctx, identityKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart.AddItem(*product, qty)

	if err := s.cartRepo.Save(ctx, identityKey, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cart, nil
}

// SetQuantity replaces an item's quantity and persists the result.
func (s *cartService) SetQuantity(ctx context.Context, identityKey, productID string, qty int) (*entity.Cart, error) {
	cart, err := s.cartRepo.Load(ctx, identityKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart.SetQuantity(productID, qty)

	if err := s.cartRepo.Save(ctx, identityKey, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cart, nil
}

// RemoveItem removes an item and persists the result.
func (s *cartService) RemoveItem(ctx context.Context, identityKey, productID string) (*entity.Cart, error) {
	cart, err := s.cartRepo.Load(ctx, identityKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart.RemoveItem(productID)

	if err := s.cartRepo.Save(ctx, identityKey, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cart, nil
}

// ClearCart resets the cart to empty and persists it.
func (s *cartService) ClearCart(ctx context.Context, identityKey string) (*entity.Cart, error) {
	cart := entity.NewCart()

	if err := s.cartRepo.Save(ctx, identityKey, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cart, nil
}
