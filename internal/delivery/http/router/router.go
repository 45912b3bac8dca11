// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"giftie/internal/delivery/http/middleware"
	"giftie/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	WishlistHandler *handler.WishlistHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	productHandler  *handler.ProductHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	wishlistHandler *handler.WishlistHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		productHandler:  params.ProductHandler,
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
		wishlistHandler: params.WishlistHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.GET("/profile", r.authHandler.Profile, r.authMiddleware.Authenticate)
	}

	// Catalog routes are public
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.Search)
		productGroup.GET("/:id", r.productHandler.GetProduct)
	}
	e.GET("/categories", r.productHandler.ListCategories)
	e.GET("/payment-methods", r.productHandler.ListPaymentMethods)

	// Cart routes work for guests too; a valid token scopes the cart to
	// the signed-in user.
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:productId", r.cartHandler.SetQuantity)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.Clear)
	}

	// Checkout requires a signed-in user
	e.POST("/checkout", r.checkoutHandler.PlaceOrder, r.authMiddleware.Authenticate)

	// Order routes that require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.POST("/:id/cancel", r.orderHandler.CancelOrder)
		orderGroup.GET("/:id/payment-qr", r.orderHandler.PaymentQR)
	}

	// Wishlist routes that require authentication
	wishlistGroup := e.Group("/wishlist")
	wishlistGroup.Use(r.authMiddleware.Authenticate)
	{
		wishlistGroup.GET("", r.wishlistHandler.List)
		wishlistGroup.POST("/items", r.wishlistHandler.Add)
		wishlistGroup.DELETE("/items/:productId", r.wishlistHandler.Remove)
	}
}
