package handler

import (
	"net/http"

	"giftie/internal/delivery/http/middleware"
	"giftie/internal/delivery/http/response"
	"giftie/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler serves the checkout endpoint.
type CheckoutHandler struct {
	uc usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// PlaceOrder turns the authenticated user's cart into an order.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	input := new(usecase.PlaceOrderInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	userID, _ := c.Get(middleware.ContextKeyUserID).(string)

	output, err := h.uc.PlaceOrder(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Order, "Order placed successfully")
}
