// Package entity contains the core business objects of the project.
package entity

import "time"

// OrderStatus tracks where an order is in its fulfilment lifecycle.
type OrderStatus string

const (
	// OrderStatusPending is the initial status of every new order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed means the order has been accepted by the shop.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusShipping means the order has been handed to the carrier.
	OrderStatusShipping OrderStatus = "shipping"
	// OrderStatusDelivered is terminal; the order reached the customer.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled is terminal and reachable only from pending.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipping,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further lifecycle transition is defined.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// The only defined transitions are the forward chain
// pending → confirmed → shipping → delivered and pending → cancelled.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusConfirmed || next == OrderStatusCancelled
	case OrderStatusConfirmed:
		return next == OrderStatusShipping
	case OrderStatusShipping:
		return next == OrderStatusDelivered
	default:
		return false
	}
}

// PaymentStatus tracks payment settlement, independently of OrderStatus.
type PaymentStatus string

const (
	// PaymentStatusPending means payment has not been settled yet.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusPaid means payment has been received.
	PaymentStatusPaid PaymentStatus = "paid"
	// PaymentStatusFailed means the payment attempt failed.
	PaymentStatusFailed PaymentStatus = "failed"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// OrderItem is a line of an order. Quantity and unit price are captured at
// order time; later catalog price changes never alter historical orders.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    int64   `json:"price"` // Unit price in VND, snapshotted at checkout.
}

// Order is an immutable snapshot of a checkout. Only OrderStatus,
// PaymentStatus, TrackingNumber and UpdatedAt may change after creation,
// and only through explicit lifecycle transitions. Orders are append-only
// per user and are never destroyed.
type Order struct {
	ID                string        `json:"id"`     // e.g. "ORD1737000000000".
	UserID            string        `json:"userId"` // Owner of the order.
	Items             []OrderItem   `json:"items"`
	TotalItems        int           `json:"totalItems"`
	Subtotal          int64         `json:"subtotal"`
	ShippingFee       int64         `json:"shippingFee"`
	TotalAmount       int64         `json:"totalAmount"`
	PaymentMethod     string        `json:"paymentMethod"` // Display label of the chosen method.
	PaymentStatus     PaymentStatus `json:"paymentStatus"`
	OrderStatus       OrderStatus   `json:"orderStatus"`
	ShippingInfo      ShippingInfo  `json:"shippingInfo"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
	EstimatedDelivery *time.Time    `json:"estimatedDelivery,omitempty"`
	TrackingNumber    string        `json:"trackingNumber,omitempty"`
}

// CanCancel reports whether the customer may still cancel the order.
// Cancellation is allowed only while the order is pending.
func (o *Order) CanCancel() bool {
	return o.OrderStatus == OrderStatusPending
}

// Cancel moves the order to cancelled. It must only be called after
// CanCancel; the usecase layer guards against stale invocations.
func (o *Order) Cancel(now time.Time) {
	o.OrderStatus = OrderStatusCancelled
	o.UpdatedAt = now
}
