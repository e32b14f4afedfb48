package handler

import (
	apporder "github.com/pedidos/backend/internal/application/order"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	BaseHandler
	orderService *apporder.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *apporder.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create registers a new order in PENDING status.
// POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req apporder.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// List returns orders with joined lines, newest first.
// GET /orders?status=&search=
func (h *OrderHandler) List(c *gin.Context) {
	var filter apporder.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	orders, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// GetByID returns a single order with joined lines.
// GET /orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Update edits a pending order; an items array replaces the full line set.
// PATCH /orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req apporder.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Transition moves an order through its lifecycle.
// PATCH /orders/:id/status
func (h *OrderHandler) Transition(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req apporder.TransitionOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.Transition(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders", h.Create)
	rg.GET("/orders", h.List)
	rg.GET("/orders/:id", h.GetByID)
	rg.PATCH("/orders/:id", h.Update)
	rg.PATCH("/orders/:id/status", h.Transition)
}
