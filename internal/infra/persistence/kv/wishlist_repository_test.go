package kv

import (
	"context"
	"testing"

	"giftie/internal/domain/entity"
	"giftie/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistRepository_LoadMissingReturnsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewWishlistRepository(memory.New())

	products, err := repo.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestWishlistRepository_SaveAndLoadKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewWishlistRepository(memory.New())

	saved := []entity.Product{
		testProduct("p1", 150000),
		testProduct("p2", 250000),
	}
	require.NoError(t, repo.Save(ctx, "user-1", saved))

	products, err := repo.Load(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "p2", products[1].ID)

	// Wishlists are namespaced per user.
	other, err := repo.Load(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestWishlistRepository_CorruptDataLoadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	repo := NewWishlistRepository(store)

	require.NoError(t, store.Put(ctx, "wishlist_user-1", []byte("not json")))

	products, err := repo.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, products)
}
