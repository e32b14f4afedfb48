package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pedidos/backend/internal/domain/order"
	"github.com/pedidos/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by ID, including its lines and their items
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var ord order.Order
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Lines.Item").
		First(&ord, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ord, nil
}

// FindAll finds all orders matching the filter, newest first
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]order.Order, error) {
	var orders []order.Order
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&order.Order{}).
			Preload("Lines").
			Preload("Lines.Item"),
		filter,
	)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates an order together with its lines.
// Lines removed from the aggregate are deleted in the same transaction.
func (r *GormOrderRepository) Save(ctx context.Context, ord *order.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Lines").Save(ord).Error; err != nil {
			return err
		}

		currentLineIDs := make([]uuid.UUID, len(ord.Lines))
		for i, line := range ord.Lines {
			currentLineIDs[i] = line.ID
		}

		if len(currentLineIDs) > 0 {
			if err := tx.Where("order_id = ? AND id NOT IN ?", ord.ID, currentLineIDs).
				Delete(&order.OrderLine{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("order_id = ?", ord.ID).
				Delete(&order.OrderLine{}).Error; err != nil {
				return err
			}
		}

		for i := range ord.Lines {
			ord.Lines[i].OrderID = ord.ID
			if err := tx.Omit("Item").Save(&ord.Lines[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete deletes an order and its lines
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&order.OrderLine{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&order.Order{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// applyFilter applies filter options to a query
func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("student_name ILIKE ? OR student_class ILIKE ?",
			searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
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

// Ensure GormOrderRepository implements OrderRepository
var _ order.OrderRepository = (*GormOrderRepository)(nil)
