package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/markethub/storefront-core/internal/mockapi/memstore"
)

type OrderHandler struct {
	store *memstore.Store
}

func NewOrderHandler(store *memstore.Store) *OrderHandler {
	return &OrderHandler{store: store}
}

// List returns the caller's own orders; staff callers see every order with
// customer details attached.
func (h *OrderHandler) List(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	orders := h.store.Orders(id.UserID, id.IsStaff)
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		resp, err := h.orderToResponse(o, id.IsStaff)
		if err != nil {
			return err
		}
		out = append(out, resp)
	}
	return c.JSON(http.StatusOK, out)
}

// Create places an order. Line prices and the total are computed from the
// current catalog; whatever the client sends as prices is ignored.
func (h *OrderHandler) Create(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	items := make([]memstore.OrderItem, 0, len(req.Items))
	var total float64
	for _, line := range req.Items {
		p, err := h.store.ProductByID(line.ProductID)
		if err != nil {
			return err
		}
		items = append(items, memstore.OrderItem{
			ProductID: p.ID,
			Quantity:  line.Quantity,
			Price:     p.Price,
		})
		total += p.Price * float64(line.Quantity)
	}

	order := h.store.CreateOrder(id.UserID, items, total)
	resp, err := h.orderToResponse(order, id.IsStaff)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

// UpdateStatus patches an order's status (staff only).
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	order, err := h.store.SetOrderStatus(c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	resp, err := h.orderToResponse(order, id.IsStaff)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) orderToResponse(o *memstore.Order, withCustomer bool) (orderResponse, error) {
	resp := orderResponse{
		ID:        o.ID,
		Status:    o.Status,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
		Items:     make([]orderItemResponse, 0, len(o.Items)),
	}
	for _, item := range o.Items {
		p, err := h.store.ProductByIDAny(item.ProductID)
		if err != nil {
			return orderResponse{}, err
		}
		resp.Items = append(resp.Items, orderItemResponse{
			ID:       item.ID,
			Product:  productToResponse(p),
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	if withCustomer {
		if u, err := h.store.UserByID(o.UserID); err == nil {
			resp.CustomerName = u.Name
			resp.CustomerEmail = u.Email
		}
	}
	return resp, nil
}
