package ledger

import (
	"github.com/pedidos/backend/internal/domain/catalog"
	"github.com/pedidos/backend/internal/domain/order"
	"github.com/pedidos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DefaultAdjustmentReason is recorded when an adjustment carries no explicit reason
const DefaultAdjustmentReason = "Ajuste manual de estoque"

// MovementType represents the direction of a stock movement
type MovementType string

const (
	// MovementTypeIn represents stock entering inventory
	MovementTypeIn MovementType = "IN"
	// MovementTypeOut represents stock leaving inventory
	MovementTypeOut MovementType = "OUT"
)

// String returns the string representation of MovementType
func (t MovementType) String() string {
	return string(t)
}

// IsValid returns true if the movement type is valid
func (t MovementType) IsValid() bool {
	switch t {
	case MovementTypeIn, MovementTypeOut:
		return true
	}
	return false
}

// StockMovement represents an immutable record of a stock change.
// Once created, movements cannot be modified - corrections produce new movements.
type StockMovement struct {
	shared.BaseEntity
	ItemID      uuid.UUID     `gorm:"type:uuid;not null;index:idx_stock_movement_item"`
	Type        MovementType  `gorm:"type:varchar(10);not null"`
	Quantity    int           `gorm:"not null"` // Always positive, direction determined by type
	Reason      string        `gorm:"type:varchar(255);not null"`
	OrderID     *uuid.UUID    `gorm:"type:uuid;index"` // Related order (optional)
	PerformedBy string        `gorm:"type:varchar(100)"`
	Item        *catalog.Item `gorm:"foreignKey:ItemID"`
	Order       *order.Order  `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (StockMovement) TableName() string {
	return "stock_movements"
}

// NewStockMovement creates a new stock movement record
func NewStockMovement(itemID uuid.UUID, movementType MovementType, quantity int, reason string) (*StockMovement, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Item ID cannot be empty")
	}
	if !movementType.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid movement type")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}
	if reason == "" {
		reason = DefaultAdjustmentReason
	}

	return &StockMovement{
		BaseEntity: shared.NewBaseEntity(),
		ItemID:     itemID,
		Type:       movementType,
		Quantity:   quantity,
		Reason:     reason,
	}, nil
}

// WithOrderID links the movement to an order
func (m *StockMovement) WithOrderID(orderID uuid.UUID) *StockMovement {
	m.OrderID = &orderID
	return m
}

// WithPerformedBy records who performed the movement
func (m *StockMovement) WithPerformedBy(performedBy string) *StockMovement {
	m.PerformedBy = performedBy
	return m
}

// SignedQuantity returns the quantity with its direction applied
func (m *StockMovement) SignedQuantity() int {
	if m.Type == MovementTypeOut {
		return -m.Quantity
	}
	return m.Quantity
}
