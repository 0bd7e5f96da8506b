package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/markethub/storefront-core/internal/mockapi/memstore"
)

type ProductHandler struct {
	store *memstore.Store
}

func NewProductHandler(store *memstore.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// List returns active products, filtered by the optional q and category
// query parameters.
func (h *ProductHandler) List(c echo.Context) error {
	products := h.store.Products(c.QueryParam("q"), c.QueryParam("category"))
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productToResponse(p))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.store.ProductByID(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productToResponse(p))
}

// Create adds a catalog entry (staff only).
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	p := h.store.CreateProduct(memstore.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		Image:       req.Image,
		Tags:        req.Tags,
	})
	return c.JSON(http.StatusCreated, productToResponse(p))
}

// Update replaces a catalog entry (staff only).
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	p, err := h.store.UpdateProduct(memstore.Product{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		Image:       req.Image,
		Tags:        req.Tags,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productToResponse(p))
}

// Delete soft-deletes a catalog entry (staff only).
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.store.DeactivateProduct(c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
