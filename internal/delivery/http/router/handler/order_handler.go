package handler

import (
	"net/http"

	"giftie/internal/delivery/http/middleware"
	"giftie/internal/delivery/http/response"
	"giftie/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler serves the per-user order history endpoints.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// ListOrders returns the authenticated user's orders, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, _ := c.Get(middleware.ContextKeyUserID).(string)

	orders, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetOrder returns one order of the authenticated user.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, _ := c.Get(middleware.ContextKeyUserID).(string)

	order, err := h.uc.GetOrder(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// CancelOrder cancels a pending order of the authenticated user.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	userID, _ := c.Get(middleware.ContextKeyUserID).(string)

	order, err := h.uc.CancelOrder(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order cancelled")
}

// PaymentQR streams the bank-transfer QR code PNG for an order.
func (h *OrderHandler) PaymentQR(c echo.Context) error {
	userID, _ := c.Get(middleware.ContextKeyUserID).(string)

	png, err := h.uc.PaymentQR(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
