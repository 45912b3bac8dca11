package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusShipping, false},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusConfirmed, OrderStatusShipping, true},
		{OrderStatusConfirmed, OrderStatusCancelled, false},
		{OrderStatusShipping, OrderStatusDelivered, true},
		{OrderStatusShipping, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"_to_"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusConfirmed.IsTerminal())
	assert.False(t, OrderStatusShipping.IsTerminal())
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.True(t, OrderStatusCancelled.IsValid())
	assert.False(t, OrderStatus("refunded").IsValid())
}

func TestOrder_CanCancel(t *testing.T) {
	order := &Order{OrderStatus: OrderStatusPending}
	assert.True(t, order.CanCancel())

	for _, status := range []OrderStatus{
		OrderStatusConfirmed, OrderStatusShipping, OrderStatusDelivered, OrderStatusCancelled,
	} {
		order.OrderStatus = status
		assert.False(t, order.CanCancel(), "status %s must not be cancellable", status)
	}
}

func TestOrder_Cancel(t *testing.T) {
	created := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC)

	order := &Order{
		OrderStatus: OrderStatusPending,
		CreatedAt:   created,
		UpdatedAt:   created,
	}

	order.Cancel(now)

	assert.Equal(t, OrderStatusCancelled, order.OrderStatus)
	assert.Equal(t, now, order.UpdatedAt)
	assert.Equal(t, created, order.CreatedAt)
}
