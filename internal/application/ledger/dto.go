package ledger

import (
	"time"

	appcatalog "github.com/pedidos/backend/internal/application/catalog"
	apporder "github.com/pedidos/backend/internal/application/order"
	"github.com/pedidos/backend/internal/domain/ledger"
	"github.com/google/uuid"
)

// MovementListFilter represents filter options for listing stock movements
type MovementListFilter struct {
	Limit  int    `form:"limit"`
	ItemID string `form:"itemId"`
}

// StockMovementResponse represents a stock movement in API responses
type StockMovementResponse struct {
	ID          uuid.UUID                 `json:"id"`
	ItemID      uuid.UUID                 `json:"itemId"`
	Type        string                    `json:"type"`
	Quantity    int                       `json:"quantity"`
	Reason      string                    `json:"reason"`
	OrderID     *uuid.UUID                `json:"orderId,omitempty"`
	PerformedBy string                    `json:"performedBy,omitempty"`
	Item        *appcatalog.ItemResponse  `json:"item,omitempty"`
	Order       *apporder.OrderResponse   `json:"order,omitempty"`
	CreatedAt   time.Time                 `json:"createdAt"`
}

// ToStockMovementResponse converts a domain StockMovement to a response DTO
func ToStockMovementResponse(m *ledger.StockMovement) StockMovementResponse {
	response := StockMovementResponse{
		ID:          m.ID,
		ItemID:      m.ItemID,
		Type:        string(m.Type),
		Quantity:    m.Quantity,
		Reason:      m.Reason,
		OrderID:     m.OrderID,
		PerformedBy: m.PerformedBy,
		CreatedAt:   m.CreatedAt,
	}
	if m.Item != nil {
		item := appcatalog.ToItemResponse(m.Item)
		response.Item = &item
	}
	if m.Order != nil {
		order := apporder.ToOrderResponse(m.Order)
		response.Order = &order
	}
	return response
}

// ToStockMovementResponseList converts a slice of domain StockMovements to response DTOs
func ToStockMovementResponseList(movements []ledger.StockMovement) []StockMovementResponse {
	responses := make([]StockMovementResponse, len(movements))
	for i := range movements {
		responses[i] = ToStockMovementResponse(&movements[i])
	}
	return responses
}
