package repository

import (
	"context"

	"giftie/internal/domain/entity"
	"giftie/internal/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists the append-only order history. Orders are never
// deleted; only their lifecycle fields change.
type OrderRepository interface {
	// Append adds a new order to the history.
	Append(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its identifier.
	// Returns ErrOrderNotFound when absent.
	FindByID(ctx context.Context, orderID string) (*entity.Order, error)

	// FindByUser retrieves all orders of a user, newest first.
	FindByUser(ctx context.Context, userID string) ([]*entity.Order, error)

	// Update replaces the stored order matching order.ID.
	// Returns ErrOrderNotFound when absent.
	Update(ctx context.Context, order *entity.Order) error
}
