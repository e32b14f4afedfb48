package ledger

import (
	"context"

	"github.com/pedidos/backend/internal/domain/ledger"
	"github.com/pedidos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Movement listing limits
const (
	DefaultMovementLimit = 200
	MaxMovementLimit     = 200
)

// StockMovementService exposes read access to the stock ledger
type StockMovementService struct {
	movementRepo ledger.StockMovementRepository
}

// NewStockMovementService creates a new StockMovementService
func NewStockMovementService(movementRepo ledger.StockMovementRepository) *StockMovementService {
	return &StockMovementService{
		movementRepo: movementRepo,
	}
}

// List retrieves recent stock movements with their item and order, newest first
func (s *StockMovementService) List(ctx context.Context, filter MovementListFilter) ([]StockMovementResponse, error) {
	limit := filter.Limit
	if limit <= 0 || limit > MaxMovementLimit {
		limit = DefaultMovementLimit
	}

	f := shared.DefaultFilter()
	f.Limit = limit

	var movements []ledger.StockMovement
	var err error
	if filter.ItemID != "" {
		itemID, parseErr := uuid.Parse(filter.ItemID)
		if parseErr != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid item ID")
		}
		movements, err = s.movementRepo.FindByItem(ctx, itemID, f)
	} else {
		movements, err = s.movementRepo.FindAll(ctx, f)
	}
	if err != nil {
		return nil, err
	}

	return ToStockMovementResponseList(movements), nil
}
