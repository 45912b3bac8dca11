package usecase

import (
	"context"

	"giftie/internal/domain/entity"
)

// Sort orders accepted by the product search pipeline.
const (
	SortByName      = "name"
	SortByPriceLow  = "price-low"
	SortByPriceHigh = "price-high"
	SortByRating    = "rating"
)

// DefaultPageSize matches the storefront's product grid.
const DefaultPageSize = 12

// SearchInput describes one query over the catalog. Zero values mean
// "no constraint": empty query/category match everything and nil price
// bounds are unbounded on that side.
type SearchInput struct {
	Query    string `json:"q"`
	Category string `json:"category"`
	MinPrice *int64 `json:"minPrice"`
	MaxPrice *int64 `json:"maxPrice"`
	SortBy   string `json:"sort"`    // One of the SortBy constants; defaults to SortByName.
	Page     int    `json:"page"`    // 1-based; out-of-range pages clamp.
	PerPage  int    `json:"perPage"` // Defaults to DefaultPageSize.
}

// SearchOutput is one page of the filtered, sorted catalog view.
type SearchOutput struct {
	Products   []entity.Product `json:"products"`
	TotalCount int              `json:"totalCount"`
	Page       int              `json:"page"`
	PerPage    int              `json:"perPage"`
	TotalPages int              `json:"totalPages"`
}

// CatalogUsecase serves the read-only product catalog and the stateless
// search/filter pipeline over it. It never mutates the catalog.
type CatalogUsecase interface {
	// Search returns a filtered, sorted, paginated view of the catalog.
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)

	// GetProduct retrieves a single product by id.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// ListCategories returns all categories.
	ListCategories(ctx context.Context) ([]entity.Category, error)

	// ListPaymentMethods returns the supported payment methods.
	ListPaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error)
}
