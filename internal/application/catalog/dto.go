package catalog

import (
	"time"

	"github.com/pedidos/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// CreateItemRequest represents a request to create a catalog item
type CreateItemRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=200"`
	Description   string `json:"description"`
	Category      string `json:"category" binding:"required,min=1,max=100"`
	Size          string `json:"size"`
	StockQuantity *int   `json:"stockQuantity" binding:"omitempty,min=0"`
	IsActive      *bool  `json:"isActive"`
}

// UpdateItemRequest represents a request to update a catalog item
// Stock changes go through AdjustStockRequest instead
type UpdateItemRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Size        *string `json:"size"`
	IsActive    *bool   `json:"isActive"`
}

// AdjustStockRequest represents a request to move stock to an absolute target
type AdjustStockRequest struct {
	StockQuantity int    `json:"stockQuantity" binding:"min=0"`
	Reason        string `json:"reason"`
	PerformedBy   string `json:"performedBy"`
}

// ItemListFilter represents filter options for listing items.
// OnlyActive is a pointer so an explicit onlyActive=false filters for
// inactive items instead of disabling the predicate.
type ItemListFilter struct {
	Category   string `form:"category"`
	OnlyActive *bool  `form:"onlyActive"`
	Search     string `form:"search"`
}

// ItemResponse represents a catalog item in API responses
type ItemResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category,omitempty"`
	Size          string    `json:"size,omitempty"`
	StockQuantity int       `json:"stockQuantity"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ToItemResponse converts a domain Item to a response DTO
func ToItemResponse(item *catalog.Item) ItemResponse {
	return ItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		Description:   item.Description,
		Category:      item.Category,
		Size:          item.Size,
		StockQuantity: item.StockQuantity,
		IsActive:      item.IsActive,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

// ToItemResponseList converts a slice of domain Items to response DTOs
func ToItemResponseList(items []catalog.Item) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}
	return responses
}
