package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/markethub/storefront-core/internal/mockapi/memstore"
)

type CartHandler struct {
	store *memstore.Store
}

func NewCartHandler(store *memstore.Store) *CartHandler {
	return &CartHandler{store: store}
}

// List returns the caller's cart lines with their products embedded.
func (h *CartHandler) List(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	items := h.store.Cart(id.UserID)
	out := make([]cartItemResponse, 0, len(items))
	for _, item := range items {
		resp, err := h.itemToResponse(item)
		if err != nil {
			return err
		}
		out = append(out, resp)
	}
	return c.JSON(http.StatusOK, out)
}

// Add appends a line, or increments the quantity of an existing line for
// the same product.
func (h *CartHandler) Add(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	item, err := h.store.AddCartItem(id.UserID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	resp, err := h.itemToResponse(item)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

// UpdateQuantity sets the quantity of the addressed line.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	item, err := h.store.UpdateCartItem(id.UserID, c.Param("id"), req.Quantity)
	if err != nil {
		return err
	}
	resp, err := h.itemToResponse(item)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Remove deletes the addressed line.
func (h *CartHandler) Remove(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.store.RemoveCartItem(id.UserID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) itemToResponse(item *memstore.CartItem) (cartItemResponse, error) {
	p, err := h.store.ProductByIDAny(item.ProductID)
	if err != nil {
		return cartItemResponse{}, err
	}
	return cartItemResponse{
		ID:       item.ID,
		Product:  productToResponse(p),
		Quantity: item.Quantity,
		AddedAt:  item.AddedAt,
	}, nil
}
