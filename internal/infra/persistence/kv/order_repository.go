package kv

import (
	"context"
	"encoding/json"
	"sync"

	"giftie/internal/domain/entity"
	domainerrors "giftie/internal/domain/errors"
	"giftie/internal/domain/repository"
	"giftie/internal/domain/storage"
	"giftie/internal/errors"
)

const ordersKey = "orders"

type orderRepository struct {
	store storage.Store

	// Serializes read-modify-write cycles on the shared orders blob.
	mu sync.Mutex
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store storage.Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

// Append adds a new order to the history.
func (repo *orderRepository) Append(ctx context.Context, order *entity.Order) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	orders, err := repo.load(ctx)
	if err != nil {
		return err
	}

	orders = append(orders, order)

	return repo.save(ctx, orders)
}

// FindByID retrieves an order by its identifier.
func (repo *orderRepository) FindByID(ctx context.Context, orderID string) (*entity.Order, error) {
	orders, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		if order.ID == orderID {
			return order, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

// FindByUser retrieves all orders of a user, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	// Orders are stored oldest first; walk backwards for newest first.
	matched := make([]*entity.Order, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		if orders[i].UserID == userID {
			matched = append(matched, orders[i])
		}
	}

	return matched, nil
}

// Update replaces the stored order matching order.ID.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	orders, err := repo.load(ctx)
	if err != nil {
		return err
	}

	for i := range orders {
		if orders[i].ID == order.ID {
			orders[i] = order

			return repo.save(ctx, orders)
		}
	}

	return repository.ErrOrderNotFound
}

func (repo *orderRepository) load(ctx context.Context) ([]*entity.Order, error) {
	raw, err := repo.store.Get(ctx, ordersKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewStorageExecuteError(err, "load orders")
	}

	var orders []*entity.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal orders")
	}

	return orders, nil
}

func (repo *orderRepository) save(ctx context.Context, orders []*entity.Order) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return errors.Wrap(err, "failed to marshal orders")
	}

	if err := repo.store.Put(ctx, ordersKey, raw); err != nil {
		return domainerrors.NewStorageExecuteError(err, "save orders")
	}

	return nil
}
