package catalog

import (
	"context"

	"github.com/pedidos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ItemRepository defines the interface for catalog item persistence
type ItemRepository interface {
	// FindByID finds an item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// FindAll finds all items matching the filter, ordered by name
	FindAll(ctx context.Context, filter shared.Filter) ([]Item, error)

	// FindByIDs finds multiple items by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Item, error)

	// Save creates or updates an item
	Save(ctx context.Context, item *Item) error

	// Delete deletes an item
	Delete(ctx context.Context, id uuid.UUID) error
}
