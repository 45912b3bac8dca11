package kv

import (
	"context"
	"testing"
	"time"

	"giftie/internal/domain/entity"
	"giftie/internal/domain/repository"
	"giftie/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(id, userID string) *entity.Order {
	now := time.Now()

	return &entity.Order{
		ID:            id,
		UserID:        userID,
		TotalItems:    1,
		Subtotal:      150000,
		TotalAmount:   150000,
		PaymentMethod: "Thanh toán khi nhận hàng",
		PaymentStatus: entity.PaymentStatusPending,
		OrderStatus:   entity.OrderStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestOrderRepository_AppendAndFindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(memory.New())

	require.NoError(t, repo.Append(ctx, testOrder("ORD1", "user-1")))

	order, err := repo.FindByID(ctx, "ORD1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", order.UserID)

	_, err = repo.FindByID(ctx, "ORD999")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_FindByUserNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(memory.New())

	require.NoError(t, repo.Append(ctx, testOrder("ORD1", "user-1")))
	require.NoError(t, repo.Append(ctx, testOrder("ORD2", "user-2")))
	require.NoError(t, repo.Append(ctx, testOrder("ORD3", "user-1")))

	orders, err := repo.FindByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD3", orders[0].ID)
	assert.Equal(t, "ORD1", orders[1].ID)

	// A user with no orders gets an empty history.
	orders, err = repo.FindByUser(ctx, "user-3")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(memory.New())

	require.NoError(t, repo.Append(ctx, testOrder("ORD1", "user-1")))

	order, err := repo.FindByID(ctx, "ORD1")
	require.NoError(t, err)
	order.Cancel(time.Now())

	require.NoError(t, repo.Update(ctx, order))

	updated, err := repo.FindByID(ctx, "ORD1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.OrderStatus)
}

func TestOrderRepository_UpdateUnknownOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(memory.New())

	err := repo.Update(ctx, testOrder("ORD1", "user-1"))
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}
