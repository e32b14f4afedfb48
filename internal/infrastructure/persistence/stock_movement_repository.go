package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pedidos/backend/internal/domain/ledger"
	"github.com/pedidos/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormStockMovementRepository implements StockMovementRepository using GORM
type GormStockMovementRepository struct {
	db *gorm.DB
}

// NewGormStockMovementRepository creates a new GormStockMovementRepository
func NewGormStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

// FindByID finds a movement by ID
func (r *GormStockMovementRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.StockMovement, error) {
	var movement ledger.StockMovement
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Order").
		First(&movement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &movement, nil
}

// FindAll finds movements matching the filter, newest first,
// including the related item and order
func (r *GormStockMovementRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.StockMovement, error) {
	var movements []ledger.StockMovement
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&ledger.StockMovement{}).
			Preload("Item").
			Preload("Order"),
		filter,
	)
	if err := query.Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// FindByItem finds movements for a specific item, newest first
func (r *GormStockMovementRepository) FindByItem(ctx context.Context, itemID uuid.UUID, filter shared.Filter) ([]ledger.StockMovement, error) {
	var movements []ledger.StockMovement
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&ledger.StockMovement{}).
			Preload("Item").
			Preload("Order").
			Where("item_id = ?", itemID),
		filter,
	)
	if err := query.Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// Save appends a movement to the ledger
func (r *GormStockMovementRepository) Save(ctx context.Context, movement *ledger.StockMovement) error {
	return r.db.WithContext(ctx).Omit("Item", "Order").Save(movement).Error
}

// applyFilter applies filter options to a query
func (r *GormStockMovementRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type = ?", value)
		}
	}

	if filter.OrderBy != "" {
		direction := "ASC"
		if filter.OrderDir == "desc" {
			direction = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + direction)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query
}

// Ensure GormStockMovementRepository implements StockMovementRepository
var _ ledger.StockMovementRepository = (*GormStockMovementRepository)(nil)
