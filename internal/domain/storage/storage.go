// Package storage defines the key-value persistence capability the domain
// depends on. Repositories are written against this interface so the
// backing store (in-memory, Redis, Postgres) can be swapped without touching
// any domain logic.
package storage

import (
	"context"

	"giftie/internal/errors"
)

// ErrKeyNotFound is returned by Get when no value exists for the key.
var ErrKeyNotFound = errors.New("storage: key not found")

// Store is a minimal namespaced key-value store. Values are opaque bytes;
// the repositories layer JSON on top.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, overwriting any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
