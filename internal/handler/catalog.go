package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"yuno-storefront-demo/internal/catalog"
	"yuno-storefront-demo/internal/dto"
)

type CatalogHandler struct {
	products catalog.ProductRepository
}

func NewCatalogHandler(products catalog.ProductRepository) *CatalogHandler {
	return &CatalogHandler{
		products: products,
	}
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	query := catalog.ListQuery{
		Search:    c.QueryParam("search"),
		Category:  c.QueryParam("category"),
		SortBy:    c.QueryParam("sort_by"),
		SortOrder: c.QueryParam("sort_order"),
	}

	products, err := h.products.List(ctx, query)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Failed to list products",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.products.Categories(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Failed to list categories",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, categories)
}
