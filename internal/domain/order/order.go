package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/pedidos/backend/internal/domain/catalog"
	"github.com/pedidos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle status of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusProducing OrderStatus = "PRODUCING"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProducing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusProducing || target == OrderStatusCancelled
	case OrderStatusProducing:
		return target == OrderStatusShipped || target == OrderStatusCancelled
	case OrderStatusShipped:
		return target == OrderStatusDelivered
	case OrderStatusDelivered, OrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// OrderLine represents a line item in an order
type OrderLine struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID     `gorm:"type:uuid;not null;index"`
	ItemID    uuid.UUID     `gorm:"type:uuid;not null;index"`
	Quantity  int           `gorm:"not null"`
	Item      *catalog.Item `gorm:"foreignKey:ItemID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (OrderLine) TableName() string {
	return "order_lines"
}

// NewOrderLine creates a new order line
func NewOrderLine(orderID, itemID uuid.UUID, quantity int) (*OrderLine, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Item ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}

	now := time.Now()
	return &OrderLine{
		ID:        uuid.New(),
		OrderID:   orderID,
		ItemID:    itemID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Order represents a student supply order aggregate root
// It manages the lifecycle of an order from registration to delivery
type Order struct {
	shared.BaseEntity
	StudentName  string      `gorm:"type:varchar(200);not null;index"`
	StudentClass string      `gorm:"type:varchar(50);not null;index"`
	RequestedBy  string      `gorm:"type:varchar(100)"`
	Status       OrderStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	TrackingCode string      `gorm:"type:varchar(100)"`
	Notes        string      `gorm:"type:text"`
	Lines        []OrderLine `gorm:"foreignKey:OrderID"`
	DeliveredAt  *time.Time
	CancelledAt  *time.Time
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new order in PENDING status
func NewOrder(studentName, studentClass, requestedBy, notes string) (*Order, error) {
	if strings.TrimSpace(studentName) == "" {
		return nil, shared.NewDomainError("MISSING_FIELD", "Student name is required")
	}
	if strings.TrimSpace(studentClass) == "" {
		return nil, shared.NewDomainError("MISSING_FIELD", "Student class is required")
	}

	return &Order{
		BaseEntity:   shared.NewBaseEntity(),
		StudentName:  strings.TrimSpace(studentName),
		StudentClass: strings.TrimSpace(studentClass),
		RequestedBy:  strings.TrimSpace(requestedBy),
		Status:       OrderStatusPending,
		Notes:        notes,
		Lines:        make([]OrderLine, 0),
	}, nil
}

// AddLine adds a line to the order
// Only allowed in PENDING status
func (o *Order) AddLine(itemID uuid.UUID, quantity int) (*OrderLine, error) {
	if o.Status != OrderStatusPending {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to an order that is no longer pending")
	}

	for _, line := range o.Lines {
		if line.ItemID == itemID {
			return nil, shared.NewDomainError("INVALID_INPUT", "Item already present in order")
		}
	}

	line, err := NewOrderLine(o.ID, itemID, quantity)
	if err != nil {
		return nil, err
	}

	o.Lines = append(o.Lines, *line)
	o.UpdatedAt = time.Now()

	return line, nil
}

// ReplaceLines replaces the full set of order lines
// Only allowed in PENDING status; the replacement is all-or-nothing
func (o *Order) ReplaceLines(lines []OrderLine) error {
	if o.Status != OrderStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Cannot edit items of an order that is no longer pending")
	}
	if len(lines) == 0 {
		return shared.NewDomainError("MISSING_FIELD", "Order must have at least one item")
	}

	seen := make(map[uuid.UUID]bool, len(lines))
	replacement := make([]OrderLine, 0, len(lines))
	for _, line := range lines {
		if seen[line.ItemID] {
			return shared.NewDomainError("INVALID_INPUT", "Item already present in order")
		}
		seen[line.ItemID] = true

		newLine, err := NewOrderLine(o.ID, line.ItemID, line.Quantity)
		if err != nil {
			return err
		}
		replacement = append(replacement, *newLine)
	}

	o.Lines = replacement
	o.UpdatedAt = time.Now()

	return nil
}

// UpdateDetails updates the order's descriptive fields
// Only allowed in PENDING status
func (o *Order) UpdateDetails(studentName, studentClass, requestedBy, notes string) error {
	if o.Status != OrderStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Cannot edit an order that is no longer pending")
	}
	if strings.TrimSpace(studentName) == "" {
		return shared.NewDomainError("MISSING_FIELD", "Student name is required")
	}
	if strings.TrimSpace(studentClass) == "" {
		return shared.NewDomainError("MISSING_FIELD", "Student class is required")
	}

	o.StudentName = strings.TrimSpace(studentName)
	o.StudentClass = strings.TrimSpace(studentClass)
	o.RequestedBy = strings.TrimSpace(requestedBy)
	o.Notes = notes
	o.UpdatedAt = time.Now()

	return nil
}

// TransitionTo moves the order to the target status, enforcing the lifecycle rules
// A transition to SHIPPED requires a non-blank tracking code
func (o *Order) TransitionTo(target OrderStatus, trackingCode string) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Unknown order status %q", string(target)))
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_TRANSITION", fmt.Sprintf("Cannot transition order from %s to %s", o.Status, target))
	}

	now := time.Now()
	switch target {
	case OrderStatusShipped:
		code := strings.TrimSpace(trackingCode)
		if code == "" {
			return shared.NewDomainError("MISSING_FIELD", "Tracking code is required to mark an order as shipped")
		}
		o.TrackingCode = code
	case OrderStatusDelivered:
		o.DeliveredAt = &now
	case OrderStatusCancelled:
		o.CancelledAt = &now
	}

	o.Status = target
	o.UpdatedAt = now

	return nil
}
