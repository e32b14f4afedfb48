package handler

import (
	appledger "github.com/pedidos/backend/internal/application/ledger"
	"github.com/gin-gonic/gin"
)

// StockMovementHandler handles ledger endpoints
type StockMovementHandler struct {
	BaseHandler
	movementService *appledger.StockMovementService
}

// NewStockMovementHandler creates a new StockMovementHandler
func NewStockMovementHandler(movementService *appledger.StockMovementService) *StockMovementHandler {
	return &StockMovementHandler{movementService: movementService}
}

// List returns ledger entries, most recent first.
// GET /stock-movements?limit=&itemId=
func (h *StockMovementHandler) List(c *gin.Context) {
	var filter appledger.MovementListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	movements, err := h.movementService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, movements)
}

// RegisterRoutes registers ledger routes
func (h *StockMovementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stock-movements", h.List)
}
