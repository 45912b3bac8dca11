package repository

import (
	"context"

	"giftie/internal/domain/entity"
	"giftie/internal/errors"
)

// ErrProductNotFound is returned when a product is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ProductCatalog supplies the static product and category records. The
// domain only ever reads from it; products are immutable once loaded.
type ProductCatalog interface {
	// Products returns every product in catalog order.
	Products(ctx context.Context) ([]entity.Product, error)

	// FindProductByID retrieves a single product.
	// Returns ErrProductNotFound when absent.
	FindProductByID(ctx context.Context, id string) (*entity.Product, error)

	// Categories returns every category.
	Categories(ctx context.Context) ([]entity.Category, error)

	// PaymentMethods returns the supported payment methods.
	PaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error)
}
