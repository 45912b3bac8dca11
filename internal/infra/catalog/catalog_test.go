package catalog

import (
	"context"
	"testing"

	"giftie/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureCatalog_Products(t *testing.T) {
	ctx := context.Background()
	cat := New()

	products, err := cat.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 18)

	// Every product belongs to a known category and carries a valid price.
	categories, err := cat.Categories(ctx)
	require.NoError(t, err)
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}

	for _, p := range products {
		assert.True(t, known[p.Category], "product %s has unknown category %s", p.ID, p.Category)
		assert.Positive(t, p.Price, "product %s", p.ID)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
	}
}

func TestFixtureCatalog_FindProductByID(t *testing.T) {
	ctx := context.Background()
	cat := New()

	product, err := cat.FindProductByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Móc khóa Hà Nội", product.Name)
	assert.Equal(t, int64(150000), product.Price)

	_, err = cat.FindProductByID(ctx, "999")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestFixtureCatalog_CategoryCountsDerived(t *testing.T) {
	ctx := context.Background()
	cat := New()

	categories, err := cat.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)

	for _, c := range categories {
		assert.Equal(t, 6, c.ProductCount, "category %s", c.ID)
	}
}

func TestFixtureCatalog_PaymentMethods(t *testing.T) {
	ctx := context.Background()
	cat := New()

	methods, err := cat.PaymentMethods(ctx)
	require.NoError(t, err)
	require.Len(t, methods, 3)

	ids := []string{methods[0].ID, methods[1].ID, methods[2].ID}
	assert.ElementsMatch(t, []string{"cod", "bank", "card"}, ids)
}

func TestFixtureCatalog_ProductsReturnsCopy(t *testing.T) {
	ctx := context.Background()
	cat := New()

	products, err := cat.Products(ctx)
	require.NoError(t, err)
	products[0].Name = "mutated"

	again, err := cat.Products(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Móc khóa Hà Nội", again[0].Name)
}
