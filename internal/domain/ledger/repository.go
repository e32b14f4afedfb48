package ledger

import (
	"context"

	"github.com/pedidos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StockMovementRepository defines the interface for stock movement persistence
type StockMovementRepository interface {
	// FindByID finds a movement by ID
	FindByID(ctx context.Context, id uuid.UUID) (*StockMovement, error)

	// FindAll finds movements matching the filter, newest first,
	// including the related item and order
	FindAll(ctx context.Context, filter shared.Filter) ([]StockMovement, error)

	// FindByItem finds movements for a specific item, newest first
	FindByItem(ctx context.Context, itemID uuid.UUID, filter shared.Filter) ([]StockMovement, error)

	// Save appends a movement to the ledger
	Save(ctx context.Context, movement *StockMovement) error
}

// Balance replays the signed quantities of the given movements.
// Applied to the complete history of one item it yields that item's expected stock level.
func Balance(movements []StockMovement) int {
	total := 0
	for _, m := range movements {
		total += m.SignedQuantity()
	}
	return total
}
