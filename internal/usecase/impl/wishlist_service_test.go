package impl

import (
	"context"
	"testing"

	domainerrors "giftie/internal/domain/errors"
	"giftie/internal/infra/persistence/kv"
	"giftie/internal/infra/persistence/memory"
	"giftie/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWishlistService(t *testing.T) usecase.WishlistUsecase {
	t.Helper()

	return NewWishlistService(kv.NewWishlistRepository(memory.New()), newStubCatalog())
}

func TestWishlistService_AddAndList(t *testing.T) {
	service := newWishlistService(t)
	ctx := context.Background()

	products, err := service.AddToWishlist(ctx, "user-1", "p1")
	require.NoError(t, err)
	require.Len(t, products, 1)

	products, err = service.AddToWishlist(ctx, "user-1", "p2")
	require.NoError(t, err)
	require.Len(t, products, 2)

	// Insertion order is preserved.
	listed, err := service.ListWishlist(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "p1", listed[0].ID)
	assert.Equal(t, "p2", listed[1].ID)
}

func TestWishlistService_Add_DuplicateIsNoop(t *testing.T) {
	service := newWishlistService(t)
	ctx := context.Background()

	_, err := service.AddToWishlist(ctx, "user-1", "p1")
	require.NoError(t, err)

	products, err := service.AddToWishlist(ctx, "user-1", "p1")
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestWishlistService_Add_OutOfStockAllowed(t *testing.T) {
	service := newWishlistService(t)

	products, err := service.AddToWishlist(context.Background(), "user-1", "p3")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.False(t, products[0].InStock)
}

func TestWishlistService_Add_UnknownProduct(t *testing.T) {
	service := newWishlistService(t)

	_, err := service.AddToWishlist(context.Background(), "user-1", "missing")

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestWishlistService_Remove(t *testing.T) {
	service := newWishlistService(t)
	ctx := context.Background()

	_, err := service.AddToWishlist(ctx, "user-1", "p1")
	require.NoError(t, err)
	_, err = service.AddToWishlist(ctx, "user-1", "p2")
	require.NoError(t, err)

	products, err := service.RemoveFromWishlist(ctx, "user-1", "p1")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p2", products[0].ID)
}

func TestWishlistService_Remove_AbsentIsNoop(t *testing.T) {
	service := newWishlistService(t)
	ctx := context.Background()

	_, err := service.AddToWishlist(ctx, "user-1", "p1")
	require.NoError(t, err)

	products, err := service.RemoveFromWishlist(ctx, "user-1", "p2")
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestWishlistService_UsersAreIsolated(t *testing.T) {
	service := newWishlistService(t)
	ctx := context.Background()

	_, err := service.AddToWishlist(ctx, "user-1", "p1")
	require.NoError(t, err)

	products, err := service.ListWishlist(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, products)
}
