package handler

import (
	"net/http"

	"giftie/internal/delivery/http/middleware"
	"giftie/internal/delivery/http/response"
	"giftie/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WishlistHandler serves the per-user wishlist endpoints.
type WishlistHandler struct {
	uc usecase.WishlistUsecase
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{uc: uc}
}

// addWishlistRequest is the payload for saving a product.
type addWishlistRequest struct {
	ProductID string `json:"productId"`
}

// List returns the user's saved products.
func (h *WishlistHandler) List(c echo.Context) error {
	userID, _ := c.Get(middleware.ContextKeyUserID).(string)

	products, err := h.uc.ListWishlist(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Add saves a product to the wishlist.
func (h *WishlistHandler) Add(c echo.Context) error {
	var req addWishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}

	userID, _ := c.Get(middleware.ContextKeyUserID).(string)

	products, err := h.uc.AddToWishlist(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Product added to wishlist")
}

// Remove drops a product from the wishlist.
func (h *WishlistHandler) Remove(c echo.Context) error {
	userID, _ := c.Get(middleware.ContextKeyUserID).(string)

	products, err := h.uc.RemoveFromWishlist(c.Request().Context(), userID, c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Product removed from wishlist")
}
