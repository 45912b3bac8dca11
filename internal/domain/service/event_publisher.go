package service

import (
	"context"
)

// Order event types published on lifecycle changes.
const (
	OrderEventCreated   = "order.created"
	OrderEventCancelled = "order.cancelled"
)

// OrderEvent is emitted whenever an order is created or cancelled, so
// downstream consumers (fulfilment, analytics) can react asynchronously.
type OrderEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	Type        string `json:"type"`
	OrderID     string `json:"order_id"`
	UserID      string `json:"user_id"`
	TotalAmount int64  `json:"total_amount"`
	TotalItems  int    `json:"total_items"`
	OccurredAt  string `json:"occurred_at"` // RFC3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
