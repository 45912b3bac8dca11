package memory

import (
	"context"
	"sync"
	"testing"

	"giftie/internal/domain/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := New()

	// Missing key
	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// Put then get
	require.NoError(t, store.Put(ctx, "cart_guest", []byte(`{"items":[]}`)))
	value, err := store.Get(ctx, "cart_guest")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"items":[]}`), value)

	// Overwrite
	require.NoError(t, store.Put(ctx, "cart_guest", []byte(`{"items":[1]}`)))
	value, err = store.Get(ctx, "cart_guest")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"items":[1]}`), value)

	// Delete, then delete again (absent key is not an error)
	require.NoError(t, store.Delete(ctx, "cart_guest"))
	require.NoError(t, store.Delete(ctx, "cart_guest"))
	_, err = store.Get(ctx, "cart_guest")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := New()

	require.NoError(t, store.Put(ctx, "key", []byte("original")))

	value, err := store.Get(ctx, "key")
	require.NoError(t, err)
	value[0] = 'X'

	again, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Put(ctx, "shared", []byte("value"))
			_, _ = store.Get(ctx, "shared")
		}()
	}
	wg.Wait()

	value, err := store.Get(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)
}
