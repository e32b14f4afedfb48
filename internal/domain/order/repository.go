package order

import (
	"context"

	"github.com/pedidos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order by ID, including its lines and their items
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindAll finds all orders matching the filter, newest first
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// Save creates or updates an order together with its lines
	// Lines removed from the aggregate are deleted in the same transaction
	Save(ctx context.Context, order *Order) error

	// Delete deletes an order and its lines
	Delete(ctx context.Context, id uuid.UUID) error
}
