package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "giftie/internal/delivery/context"
	"giftie/internal/domain/entity"
	domainerrors "giftie/internal/domain/errors"
	"giftie/internal/domain/repository"
	"giftie/internal/domain/service"
	"giftie/internal/errors"
	"giftie/internal/usecase"
)

type orderService struct {
	orderRepo repository.OrderRepository
	catalog   repository.ProductCatalog
	publisher service.EventPublisher
	qrcode    service.QRCodeService
	logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(
	orderRepo repository.OrderRepository,
	catalog repository.ProductCatalog,
	publisher service.EventPublisher,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		catalog:   catalog,
		publisher: publisher,
		qrcode:    qrcode,
		logger:    logger,
	}
}

// ListOrders returns the user's order history, newest first.
func (s *orderService) ListOrders(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder retrieves one order and enforces ownership. A foreign order is
// reported as not found rather than forbidden, so order ids cannot be
// probed across accounts.
func (s *orderService) GetOrder(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.UserID != userID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// CancelOrder cancels a pending order. Cancelling an order that has already
// been confirmed, shipped, delivered or cancelled is refused and leaves the
// order unchanged.
func (s *orderService) CancelOrder(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if !order.CanCancel() {
		return nil, domainerrors.ErrOrderNotCancellable.WithDetails(order.OrderStatus.String())
	}

	order.Cancel(time.Now())

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	s.publishEvent(ctx, service.OrderEventCancelled, order)

	return order, nil
}

// PaymentQR renders the bank-transfer QR code for an order. Only orders paid
// by bank transfer whose payment is still pending have a QR code.
func (s *orderService) PaymentQR(ctx context.Context, userID, orderID string) ([]byte, error) {
	order, err := s.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if order.PaymentStatus != entity.PaymentStatusPending {
		return nil, domainerrors.ErrPaymentQRUnavailable
	}

	bank, err := s.isBankTransfer(ctx, order.PaymentMethod)
	if err != nil {
		return nil, err
	}
	if !bank {
		return nil, domainerrors.ErrPaymentQRUnavailable
	}

	png, err := s.qrcode.GeneratePaymentQR(service.PaymentQR{
		OrderID: order.ID,
		Amount:  order.TotalAmount,
		Content: fmt.Sprintf("GIFTIE %s", order.ID),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR")
	}

	return png, nil
}

// isBankTransfer resolves the order's stored method label back to its
// catalog entry. Orders store the display label, not the method id.
func (s *orderService) isBankTransfer(ctx context.Context, methodName string) (bool, error) {
	methods, err := s.catalog.PaymentMethods(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to list payment methods")
	}

	for _, method := range methods {
		if method.Name == methodName {
			return method.Type == entity.PaymentMethodBank, nil
		}
	}

	return false, nil
}

func (s *orderService) publishEvent(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        eventType,
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		TotalItems:  order.TotalItems,
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
		logger.Warn("failed to publish order event",
			slog.String("order_id", order.ID),
			slog.String("type", eventType),
			slog.Any("error", err),
		)
	}
}
