package usecase

import (
	"context"

	"giftie/internal/domain/entity"
)

// PlaceOrderInput carries everything needed to turn a cart into an order.
// Validation tags mirror the storefront checkout form: every shipping field
// except the note is required, and card details are required only when the
// chosen payment method is a card payment.
type PlaceOrderInput struct {
	ShippingInfo struct {
		FullName string `json:"fullName" validate:"required"`
		Phone    string `json:"phone" validate:"required"`
		Address  string `json:"address" validate:"required"`
		City     string `json:"city" validate:"required"`
		District string `json:"district" validate:"required"`
		Ward     string `json:"ward" validate:"required"`
		Note     string `json:"note"`
	} `json:"shippingInfo"`
	PaymentInfo struct {
		Method     string `json:"method" validate:"required"`
		CardNumber string `json:"cardNumber" validate:"required_if=Method card"`
		CardHolder string `json:"cardHolder" validate:"required_if=Method card"`
		ExpiryDate string `json:"expiryDate" validate:"required_if=Method card"`
		CVV        string `json:"cvv" validate:"required_if=Method card"`
	} `json:"paymentInfo"`
}

// PlaceOrderOutput returns the newly created order for downstream navigation.
type PlaceOrderOutput struct {
	Order *entity.Order `json:"order"`
}

// CheckoutUsecase converts a non-empty cart plus shipping/payment choices
// into an immutable order.
type CheckoutUsecase interface {
	// PlaceOrder snapshots the user's cart into an order, appends it to the
	// order history and clears the cart. No partial order is ever persisted:
	// validation failures leave both cart and history untouched.
	PlaceOrder(ctx context.Context, userID string, input *PlaceOrderInput) (*PlaceOrderOutput, error)
}
