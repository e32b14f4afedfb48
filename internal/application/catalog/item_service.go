package catalog

import (
	"context"

	"github.com/pedidos/backend/internal/domain/catalog"
	"github.com/pedidos/backend/internal/domain/ledger"
	"github.com/pedidos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ItemService handles catalog item business operations
type ItemService struct {
	itemRepo catalog.ItemRepository
	txScope  StockTransactionScope
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo catalog.ItemRepository, txScope StockTransactionScope) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
		txScope:  txScope,
	}
}

// Create creates a new catalog item
func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	stockQuantity := 0
	if req.StockQuantity != nil {
		stockQuantity = *req.StockQuantity
	}

	item, err := catalog.NewItem(req.Name, req.Description, req.Category, req.Size, stockQuantity)
	if err != nil {
		return nil, err
	}
	if req.IsActive != nil && !*req.IsActive {
		item.Deactivate()
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// GetByID retrieves an item by ID
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToItemResponse(item)
	return &response, nil
}

// List retrieves catalog items ordered by name
func (s *ItemService) List(ctx context.Context, filter ItemListFilter) ([]ItemResponse, error) {
	f := shared.DefaultFilter()
	f.OrderBy = "name"
	f.OrderDir = "asc"
	f.Search = filter.Search
	if filter.Category != "" {
		f.Filters["category"] = filter.Category
	}
	if filter.OnlyActive != nil {
		f.Filters["is_active"] = *filter.OnlyActive
	}

	items, err := s.itemRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	return ToItemResponseList(items), nil
}

// Update updates an item's descriptive fields
func (s *ItemService) Update(ctx context.Context, id uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := item.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := item.Description
	if req.Description != nil {
		description = *req.Description
	}
	category := item.Category
	if req.Category != nil {
		category = *req.Category
	}
	size := item.Size
	if req.Size != nil {
		size = *req.Size
	}

	if err := item.Update(name, description, category, size); err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		if *req.IsActive {
			item.Activate()
		} else {
			item.Deactivate()
		}
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// AdjustStock moves an item's stock level to an absolute target quantity.
// When the target differs from the current level the item update and a single
// ledger movement are written in the same transaction. When the target equals
// the current level nothing is written and no movement is recorded.
func (s *ItemService) AdjustStock(ctx context.Context, id uuid.UUID, req AdjustStockRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	delta := req.StockQuantity - item.StockQuantity
	if delta == 0 {
		response := ToItemResponse(item)
		return &response, nil
	}

	movementType := ledger.MovementTypeIn
	quantity := delta
	if delta < 0 {
		movementType = ledger.MovementTypeOut
		quantity = -delta
	}

	err = s.txScope.Execute(ctx, func(repos StockTransactionalRepositories) error {
		if err := item.SetStockQuantity(req.StockQuantity); err != nil {
			return err
		}
		if err := repos.ItemRepo().Save(ctx, item); err != nil {
			return err
		}

		movement, err := ledger.NewStockMovement(item.ID, movementType, quantity, req.Reason)
		if err != nil {
			return err
		}
		if req.PerformedBy != "" {
			movement.WithPerformedBy(req.PerformedBy)
		}

		return repos.MovementRepo().Save(ctx, movement)
	})
	if err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}
