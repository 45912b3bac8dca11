// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"giftie/internal/domain/entity"
)

// CartRepository persists one cart per identity key (a user id, or
// entity.GuestKey for anonymous visitors).
type CartRepository interface {
	// Load returns the cart stored for the identity key. A missing or
	// unreadable stored cart loads as a fresh empty cart; corruption is
	// recovered silently, never surfaced to the caller.
	Load(ctx context.Context, identityKey string) (*entity.Cart, error)

	// Save persists the cart under the identity key. Called after every
	// cart transition.
	Save(ctx context.Context, identityKey string, cart *entity.Cart) error

	// Clear removes the stored cart for the identity key.
	Clear(ctx context.Context, identityKey string) error
}
