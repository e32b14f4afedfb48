package catalog

import (
	"strings"
	"time"

	"github.com/pedidos/backend/internal/domain/shared"
)

// Item represents a school supply item in the catalog
// It is the aggregate root for catalog and stock operations
type Item struct {
	shared.BaseEntity
	Name          string `gorm:"type:varchar(200);not null"`
	Description   string `gorm:"type:text"`
	Category      string `gorm:"type:varchar(100);index"`
	Size          string `gorm:"type:varchar(20)"`
	StockQuantity int    `gorm:"not null;default:0"`
	// No default tag: gorm would omit a false value on insert and let the
	// column default overwrite an item created as inactive.
	IsActive bool `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "items"
}

// NewItem creates a new catalog item
func NewItem(name, description, category, size string, stockQuantity int) (*Item, error) {
	if err := validateItemName(name); err != nil {
		return nil, err
	}
	if err := validateItemCategory(category); err != nil {
		return nil, err
	}
	if stockQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Stock quantity cannot be negative")
	}

	return &Item{
		BaseEntity:    shared.NewBaseEntity(),
		Name:          strings.TrimSpace(name),
		Description:   description,
		Category:      category,
		Size:          size,
		StockQuantity: stockQuantity,
		IsActive:      true,
	}, nil
}

// Update updates the item's descriptive fields
func (i *Item) Update(name, description, category, size string) error {
	if err := validateItemName(name); err != nil {
		return err
	}
	if err := validateItemCategory(category); err != nil {
		return err
	}

	i.Name = strings.TrimSpace(name)
	i.Description = description
	i.Category = category
	i.Size = size
	i.UpdatedAt = time.Now()

	return nil
}

// Activate marks the item as available for ordering
func (i *Item) Activate() {
	i.IsActive = true
	i.UpdatedAt = time.Now()
}

// Deactivate hides the item from the active catalog without deleting it
func (i *Item) Deactivate() {
	i.IsActive = false
	i.UpdatedAt = time.Now()
}

// SetStockQuantity moves the stock level to an absolute target
func (i *Item) SetStockQuantity(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_INPUT", "Stock quantity cannot be negative")
	}
	i.StockQuantity = quantity
	i.UpdatedAt = time.Now()
	return nil
}

func validateItemName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("MISSING_FIELD", "Item name is required")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_INPUT", "Item name cannot exceed 200 characters")
	}
	return nil
}

func validateItemCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return shared.NewDomainError("MISSING_FIELD", "Item category is required")
	}
	if len(category) > 100 {
		return shared.NewDomainError("INVALID_INPUT", "Item category cannot exceed 100 characters")
	}
	return nil
}
