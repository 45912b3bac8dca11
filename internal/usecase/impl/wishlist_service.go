package impl

import (
	"context"

	"giftie/internal/domain/entity"
	domainerrors "giftie/internal/domain/errors"
	"giftie/internal/domain/repository"
	"giftie/internal/errors"
	"giftie/internal/usecase"
)

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	catalog      repository.ProductCatalog
}

// NewWishlistService creates a new wishlist service instance
func NewWishlistService(wishlistRepo repository.WishlistRepository, catalog repository.ProductCatalog) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		catalog:      catalog,
	}
}

// ListWishlist returns the user's saved products, oldest first.
func (s *wishlistService) ListWishlist(ctx context.Context, userID string) ([]entity.Product, error) {
	products, err := s.wishlistRepo.Load(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist")
	}

	return products, nil
}

// AddToWishlist saves a product to the list. Adding a product that is
// already saved is a no-op; out-of-stock products can still be saved.
func (s *wishlistService) AddToWishlist(ctx context.Context, userID, productID string) ([]entity.Product, error) {
	product, err := s.catalog.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	products, err := s.wishlistRepo.Load(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist")
	}

	for _, saved := range products {
		if saved.ID == productID {
			return products, nil
		}
	}

	products = append(products, *product)

	if err := s.wishlistRepo.Save(ctx, userID, products); err != nil {
		return nil, errors.Wrap(err, "failed to save wishlist")
	}

	return products, nil
}

// RemoveFromWishlist drops a product from the list; removing an absent
// product is a no-op.
func (s *wishlistService) RemoveFromWishlist(ctx context.Context, userID, productID string) ([]entity.Product, error) {
	products, err := s.wishlistRepo.Load(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist")
	}

	kept := products[:0]
	for _, saved := range products {
		if saved.ID != productID {
			kept = append(kept, saved)
		}
	}

	if len(kept) == len(products) {
		return products, nil
	}

	if err := s.wishlistRepo.Save(ctx, userID, kept); err != nil {
		return nil, errors.Wrap(err, "failed to save wishlist")
	}

	return kept, nil
}
