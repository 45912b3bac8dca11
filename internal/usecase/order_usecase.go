package usecase

import (
	"context"

	"giftie/internal/domain/entity"
)

// OrderUsecase exposes the per-user order history and the customer-facing
// lifecycle transitions.
type OrderUsecase interface {
	// ListOrders returns the user's orders, newest first.
	ListOrders(ctx context.Context, userID string) ([]*entity.Order, error)

	// GetOrder retrieves one order, enforcing ownership.
	GetOrder(ctx context.Context, userID, orderID string) (*entity.Order, error)

	// CancelOrder cancels a pending order. Any other status is refused with
	// ErrOrderNotCancellable and leaves the order unchanged.
	CancelOrder(ctx context.Context, userID, orderID string) (*entity.Order, error)

	// PaymentQR renders the bank-transfer QR code PNG for an order paid by
	// bank transfer whose payment is still pending.
	PaymentQR(ctx context.Context, userID, orderID string) ([]byte, error)
}
