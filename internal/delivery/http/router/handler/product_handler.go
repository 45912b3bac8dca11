package handler

import (
	"net/http"
	"strconv"

	"giftie/internal/delivery/http/response"
	"giftie/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler serves the read-only catalog endpoints.
type ProductHandler struct {
	uc usecase.CatalogUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Search handles the catalog search request. All filters arrive as query
// parameters and are optional.
func (h *ProductHandler) Search(c echo.Context) error {
	input := &usecase.SearchInput{
		Query:    c.QueryParam("q"),
		Category: c.QueryParam("category"),
		SortBy:   c.QueryParam("sort"),
	}

	var err error
	if input.MinPrice, err = parseOptionalInt64(c.QueryParam("minPrice")); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "minPrice must be an integer")
	}
	if input.MaxPrice, err = parseOptionalInt64(c.QueryParam("maxPrice")); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "maxPrice must be an integer")
	}
	// Non-numeric page values fall back to the first page.
	input.Page, _ = strconv.Atoi(c.QueryParam("page"))
	input.PerPage, _ = strconv.Atoi(c.QueryParam("perPage"))

	output, err := h.uc.Search(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// GetProduct returns a single product by id.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// ListCategories returns all catalog categories.
func (h *ProductHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// ListPaymentMethods returns the supported payment methods.
func (h *ProductHandler) ListPaymentMethods(c echo.Context) error {
	methods, err := h.uc.ListPaymentMethods(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, methods, "")
}

func parseOptionalInt64(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}

	return &value, nil
}
