package handler

import (
	"net/http"

	"giftie/internal/delivery/http/middleware"
	"giftie/internal/delivery/http/response"
	"giftie/internal/domain/entity"
	"giftie/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler serves the shopping cart endpoints. Cart routes work for
// both signed-in users and guests; the identity key decides whose cart
// is touched.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// addItemRequest is the payload for adding a product to the cart.
type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// setQuantityRequest is the payload for replacing an item's quantity.
type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the caller's cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	cart, err := h.uc.GetCart(c.Request().Context(), identityKey(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// AddItem merges a product into the cart. A missing quantity defaults to 1.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.uc.AddItem(c.Request().Context(), identityKey(c), req.ProductID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added to cart")
}

// SetQuantity replaces an item's quantity; zero or less removes the item.
func (h *CartHandler) SetQuantity(c echo.Context) error {
	var req setQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	cart, err := h.uc.SetQuantity(c.Request().Context(), identityKey(c), c.Param("productId"), req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart updated")
}

// RemoveItem removes a product from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	cart, err := h.uc.RemoveItem(c.Request().Context(), identityKey(c), c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item removed from cart")
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	cart, err := h.uc.ClearCart(c.Request().Context(), identityKey(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart cleared")
}

// identityKey resolves whose cart a request touches: the authenticated
// user's id, or the shared guest namespace for anonymous visitors.
func identityKey(c echo.Context) string {
	if userID, ok := c.Get(middleware.ContextKeyUserID).(string); ok && userID != "" {
		return userID
	}

	return entity.GuestKey
}
