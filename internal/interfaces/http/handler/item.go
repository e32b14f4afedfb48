package handler

import (
	appcatalog "github.com/pedidos/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// ItemHandler handles catalog item endpoints
type ItemHandler struct {
	BaseHandler
	itemService *appcatalog.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService *appcatalog.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// ItemPatchRequest represents a PATCH /items/:id body. Descriptive fields are
// applied as an administrative update; a stockQuantity triggers the atomic
// stock adjustment with its ledger entry.
type ItemPatchRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description   *string `json:"description"`
	Category      *string `json:"category"`
	Size          *string `json:"size"`
	IsActive      *bool   `json:"isActive"`
	StockQuantity *int    `json:"stockQuantity" binding:"omitempty,min=0"`
	Reason        string  `json:"reason"`
	PerformedBy   string  `json:"performedBy"`
}

// Create registers a new catalog item.
// POST /items
func (h *ItemHandler) Create(c *gin.Context) {
	var req appcatalog.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, item)
}

// List returns catalog items ordered by name.
// GET /items?category=&onlyActive=&search=
func (h *ItemHandler) List(c *gin.Context) {
	var filter appcatalog.ItemListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	items, err := h.itemService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// GetByID returns a single item.
// GET /items/:id
func (h *ItemHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.itemService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// Patch updates an item. A stockQuantity in the body goes through the stock
// adjustment operation so the change lands in the ledger.
// PATCH /items/:id
func (h *ItemHandler) Patch(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req ItemPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	item, err := h.itemService.GetByID(ctx, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if req.Name != nil || req.Description != nil || req.Category != nil || req.Size != nil || req.IsActive != nil {
		item, err = h.itemService.Update(ctx, id, appcatalog.UpdateItemRequest{
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
			Size:        req.Size,
			IsActive:    req.IsActive,
		})
		if err != nil {
			h.HandleError(c, err)
			return
		}
	}

	if req.StockQuantity != nil {
		item, err = h.itemService.AdjustStock(ctx, id, appcatalog.AdjustStockRequest{
			StockQuantity: *req.StockQuantity,
			Reason:        req.Reason,
			PerformedBy:   req.PerformedBy,
		})
		if err != nil {
			h.HandleError(c, err)
			return
		}
	}

	h.Success(c, item)
}

// RegisterRoutes registers item routes
func (h *ItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/items", h.Create)
	rg.GET("/items", h.List)
	rg.GET("/items/:id", h.GetByID)
	rg.PATCH("/items/:id", h.Patch)
}
