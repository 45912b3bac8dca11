// Package catalog provides the fixture-backed product catalog. The
// storefront has no merchandising backend; the assortment ships with the
// binary and is read-only at runtime.
package catalog

import (
	"context"

	"giftie/internal/domain/entity"
	"giftie/internal/domain/repository"
)

type fixtureCatalog struct {
	products       []entity.Product
	productsByID   map[string]int
	categories     []entity.Category
	paymentMethods []entity.PaymentMethod
}

// New creates the fixture catalog. Category product counts are derived from
// the actual assortment rather than stored, so they can never drift.
func New() repository.ProductCatalog {
	products := fixtureProducts()
	categories := fixtureCategories()

	byID := make(map[string]int, len(products))
	countByCategory := make(map[string]int)
	for i, product := range products {
		byID[product.ID] = i
		countByCategory[product.Category]++
	}

	for i := range categories {
		categories[i].ProductCount = countByCategory[categories[i].ID]
	}

	return &fixtureCatalog{
		products:       products,
		productsByID:   byID,
		categories:     categories,
		paymentMethods: fixturePaymentMethods(),
	}
}

// Products returns every product in catalog order.
func (c *fixtureCatalog) Products(ctx context.Context) ([]entity.Product, error) {
	// Copy so callers can sort or filter without touching the fixture.
	out := make([]entity.Product, len(c.products))
	copy(out, c.products)

	return out, nil
}

// FindProductByID retrieves a single product.
func (c *fixtureCatalog) FindProductByID(ctx context.Context, id string) (*entity.Product, error) {
	i, ok := c.productsByID[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	product := c.products[i]

	return &product, nil
}

// Categories returns every category.
func (c *fixtureCatalog) Categories(ctx context.Context) ([]entity.Category, error) {
	out := make([]entity.Category, len(c.categories))
	copy(out, c.categories)

	return out, nil
}

// PaymentMethods returns the supported payment methods.
func (c *fixtureCatalog) PaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error) {
	out := make([]entity.PaymentMethod, len(c.paymentMethods))
	copy(out, c.paymentMethods)

	return out, nil
}
