package impl

import (
	"context"
	"sort"
	"strings"

	"giftie/internal/domain/entity"
	domainerrors "giftie/internal/domain/errors"
	"giftie/internal/domain/repository"
	"giftie/internal/errors"
	"giftie/internal/usecase"
)

type catalogService struct {
	catalog repository.ProductCatalog
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalog repository.ProductCatalog) usecase.CatalogUsecase {
	return &catalogService{
		catalog: catalog,
	}
}

// Search runs the filter → sort → paginate pipeline over the catalog.
// Each request is evaluated from scratch against the full product list;
// no state is carried between searches.
func (s *catalogService) Search(ctx context.Context, input *usecase.SearchInput) (*usecase.SearchOutput, error) {
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	filtered := filterProducts(products, input)
	sortProducts(filtered, input.SortBy)

	perPage := input.PerPage
	if perPage < 1 {
		perPage = usecase.DefaultPageSize
	}

	totalCount := len(filtered)
	totalPages := (totalCount + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	// Out-of-range pages clamp instead of erroring so stale links from a
	// narrower result set still resolve.
	page := input.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}

	return &usecase.SearchOutput{
		Products:   filtered[start:end],
		TotalCount: totalCount,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

// GetProduct retrieves a single product by id.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.catalog.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListCategories returns all catalog categories.
func (s *catalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// ListPaymentMethods returns the supported payment methods.
func (s *catalogService) ListPaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error) {
	methods, err := s.catalog.PaymentMethods(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment methods")
	}

	return methods, nil
}

// filterProducts applies every active constraint; constraints are ANDed.
func filterProducts(products []entity.Product, input *usecase.SearchInput) []entity.Product {
	filtered := make([]entity.Product, 0, len(products))
	query := strings.ToLower(strings.TrimSpace(input.Query))

	for _, product := range products {
		if query != "" && !matchesQuery(product, query) {
			continue
		}
		if input.Category != "" && product.Category != input.Category {
			continue
		}
		if input.MinPrice != nil && product.Price < *input.MinPrice {
			continue
		}
		if input.MaxPrice != nil && product.Price > *input.MaxPrice {
			continue
		}

		filtered = append(filtered, product)
	}

	return filtered
}

// matchesQuery does a case-insensitive substring match over name,
// description, category and tags.
func matchesQuery(product entity.Product, query string) bool {
	if strings.Contains(strings.ToLower(product.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(product.Description), query) {
		return true
	}
	if strings.Contains(strings.ToLower(product.Category), query) {
		return true
	}
	for _, tag := range product.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}

	return false
}

// sortProducts orders the slice in place. The sort is stable so products
// that compare equal keep their catalog order, which keeps pagination
// deterministic across identical requests.
func sortProducts(products []entity.Product, sortBy string) {
	switch sortBy {
	case usecase.SortByPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case usecase.SortByPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case usecase.SortByRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	}
}
