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

	"github.com/go-playground/validator/v10"
)

type checkoutService struct {
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
	catalog   repository.ProductCatalog
	publisher service.EventPublisher
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	catalog repository.ProductCatalog,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		catalog:   catalog,
		publisher: publisher,
		validate:  validator.New(),
		logger:    logger,
	}
}

// PlaceOrder snapshots the user's cart into an immutable order.
//
// The order locks in each item's quantity and current unit price so later
// catalog price changes never alter historical orders. Validation happens
// before anything is written; a failed checkout leaves cart and history
// untouched.
func (s *checkoutService) PlaceOrder(ctx context.Context, userID string, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, s.validationError(input, err)
	}

	method, err := s.findPaymentMethod(ctx, input.PaymentInfo.Method)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.Load(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	order := buildOrder(userID, cart, input, method, time.Now())

	if err := s.orderRepo.Append(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to append order")
	}

	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to clear cart")
	}

	s.publishEvent(ctx, service.OrderEventCreated, order)

	return &usecase.PlaceOrderOutput{Order: order}, nil
}

// buildOrder is the pure snapshot step of checkout.
func buildOrder(userID string, cart *entity.Cart, input *usecase.PlaceOrderInput, method *entity.PaymentMethod, now time.Time) *entity.Order {
	items := make([]entity.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, entity.OrderItem{
			Product:  item.Product,
			Quantity: item.Quantity,
			Price:    item.Product.Price,
		})
	}

	// Free shipping is the current storefront policy.
	const shippingFee = int64(0)

	return &entity.Order{
		ID:            fmt.Sprintf("ORD%d", now.UnixMilli()),
		UserID:        userID,
		Items:         items,
		TotalItems:    cart.TotalItems,
		Subtotal:      cart.TotalPrice,
		ShippingFee:   shippingFee,
		TotalAmount:   cart.TotalPrice + shippingFee,
		PaymentMethod: method.Name,
		PaymentStatus: entity.PaymentStatusPending,
		OrderStatus:   entity.OrderStatusPending,
		ShippingInfo: entity.ShippingInfo{
			FullName: input.ShippingInfo.FullName,
			Phone:    input.ShippingInfo.Phone,
			Address:  input.ShippingInfo.Address,
			City:     input.ShippingInfo.City,
			District: input.ShippingInfo.District,
			Ward:     input.ShippingInfo.Ward,
			Note:     input.ShippingInfo.Note,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// findPaymentMethod resolves the chosen method id against the catalog.
func (s *checkoutService) findPaymentMethod(ctx context.Context, methodID string) (*entity.PaymentMethod, error) {
	methods, err := s.catalog.PaymentMethods(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment methods")
	}

	for i := range methods {
		if methods[i].ID == methodID {
			return &methods[i], nil
		}
	}

	return nil, domainerrors.ErrPaymentMethodUnknown
}

// validationError maps a struct-validation failure onto the storefront's
// user-facing messages: missing card fields get their own message, any
// other missing field is reported as incomplete shipping information.
func (s *checkoutService) validationError(input *usecase.PlaceOrderInput, err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			switch fe.Field() {
			case "CardNumber", "CardHolder", "ExpiryDate", "CVV":
				return domainerrors.ErrCardInfoIncomplete.WithDetails(fe.Field())
			case "Method":
				return domainerrors.ErrPaymentMethodUnknown
			default:
				return domainerrors.ErrShippingInfoIncomplete.WithDetails(fe.Field())
			}
		}
	}

	return domainerrors.ErrValidationFailed.WithDetails(err.Error())
}

// publishEvent emits an order lifecycle event. Publishing is best-effort:
// the order is already durable, so a publish failure is logged, not
// returned.
func (s *checkoutService) publishEvent(ctx context.Context, eventType string, order *entity.Order) {
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
