package order

import (
	"time"

	appcatalog "github.com/pedidos/backend/internal/application/catalog"
	"github.com/pedidos/backend/internal/domain/order"
	"github.com/google/uuid"
)

// OrderLineInput represents a line in a create or update order request
type OrderLineInput struct {
	ItemID   uuid.UUID `json:"itemId" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest represents a request to register an order
type CreateOrderRequest struct {
	StudentName  string           `json:"studentName" binding:"required,min=1,max=200"`
	StudentClass string           `json:"studentClass" binding:"required,min=1,max=50"`
	RequestedBy  string           `json:"requestedBy" binding:"max=100"`
	Notes        string           `json:"notes"`
	Items        []OrderLineInput `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderRequest represents a request to edit a pending order.
// When Items is present the full line set is replaced.
type UpdateOrderRequest struct {
	StudentName  *string           `json:"studentName" binding:"omitempty,min=1,max=200"`
	StudentClass *string           `json:"studentClass" binding:"omitempty,min=1,max=50"`
	RequestedBy  *string           `json:"requestedBy" binding:"omitempty,max=100"`
	Notes        *string           `json:"notes"`
	Items        *[]OrderLineInput `json:"items" binding:"omitempty,min=1,dive"`
}

// TransitionOrderRequest represents a request to move an order through its lifecycle
type TransitionOrderRequest struct {
	Status       string `json:"status" binding:"required"`
	TrackingCode string `json:"trackingCode"`
}

// OrderListFilter represents filter options for listing orders
type OrderListFilter struct {
	Status string `form:"status"`
	Search string `form:"search"`
}

// OrderLineResponse represents an order line in API responses
type OrderLineResponse struct {
	ID       uuid.UUID                `json:"id"`
	ItemID   uuid.UUID                `json:"itemId"`
	Quantity int                      `json:"quantity"`
	Item     *appcatalog.ItemResponse `json:"item,omitempty"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID           uuid.UUID           `json:"id"`
	StudentName  string              `json:"studentName"`
	StudentClass string              `json:"studentClass"`
	RequestedBy  string              `json:"requestedBy,omitempty"`
	Status       string              `json:"status"`
	TrackingCode string              `json:"trackingCode,omitempty"`
	Notes        string              `json:"notes,omitempty"`
	Items        []OrderLineResponse `json:"items"`
	DeliveredAt  *time.Time          `json:"deliveredAt,omitempty"`
	CancelledAt  *time.Time          `json:"cancelledAt,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// ToOrderLineResponse converts a domain OrderLine to a response DTO
func ToOrderLineResponse(line *order.OrderLine) OrderLineResponse {
	response := OrderLineResponse{
		ID:       line.ID,
		ItemID:   line.ItemID,
		Quantity: line.Quantity,
	}
	if line.Item != nil {
		item := appcatalog.ToItemResponse(line.Item)
		response.Item = &item
	}
	return response
}

// ToOrderResponse converts a domain Order to a response DTO
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderLineResponse, len(o.Lines))
	for i := range o.Lines {
		items[i] = ToOrderLineResponse(&o.Lines[i])
	}

	return OrderResponse{
		ID:           o.ID,
		StudentName:  o.StudentName,
		StudentClass: o.StudentClass,
		RequestedBy:  o.RequestedBy,
		Status:       string(o.Status),
		TrackingCode: o.TrackingCode,
		Notes:        o.Notes,
		Items:        items,
		DeliveredAt:  o.DeliveredAt,
		CancelledAt:  o.CancelledAt,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// ToOrderResponseList converts a slice of domain Orders to response DTOs
func ToOrderResponseList(orders []order.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
