package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pedidos/backend/internal/domain/catalog"
	"github.com/pedidos/backend/internal/domain/identity"
	"github.com/pedidos/backend/internal/domain/ledger"
	"github.com/pedidos/backend/internal/domain/order"
)

// setupTestDB creates an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&catalog.Item{},
		&order.Order{},
		&order.OrderLine{},
		&ledger.StockMovement{},
		&identity.User{},
	)
	require.NoError(t, err)

	return db
}

// mustCreateItem saves a new catalog item for use as a test fixture
func mustCreateItem(t *testing.T, db *gorm.DB, name string, stock int) *catalog.Item {
	t.Helper()

	item, err := catalog.NewItem(name, "", "Uniforme", "M", stock)
	require.NoError(t, err)
	require.NoError(t, db.Save(item).Error)
	return item
}
