package persistence

import (
	"context"

	appcatalog "github.com/pedidos/backend/internal/application/catalog"
	"github.com/pedidos/backend/internal/domain/catalog"
	"github.com/pedidos/backend/internal/domain/ledger"
	"gorm.io/gorm"
)

// GormStockTransactionScope implements StockTransactionScope using GORM transactions.
// It makes the item update and the movement insert of a stock adjustment atomic.
type GormStockTransactionScope struct {
	db *gorm.DB
}

// NewGormStockTransactionScope creates a new GormStockTransactionScope.
func NewGormStockTransactionScope(db *gorm.DB) *GormStockTransactionScope {
	return &GormStockTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormStockTransactionScope) Execute(ctx context.Context, fn func(repos appcatalog.StockTransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormStockTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormStockTransactionalRepositories provides access to the stock repositories
// scoped to a single transaction.
type gormStockTransactionalRepositories struct {
	tx *gorm.DB
}

// ItemRepo returns the item repository scoped to the current transaction.
func (r *gormStockTransactionalRepositories) ItemRepo() catalog.ItemRepository {
	return NewGormItemRepository(r.tx)
}

// MovementRepo returns the stock movement repository scoped to the current transaction.
func (r *gormStockTransactionalRepositories) MovementRepo() ledger.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

// Ensure GormStockTransactionScope implements StockTransactionScope
var _ appcatalog.StockTransactionScope = (*GormStockTransactionScope)(nil)

// Ensure gormStockTransactionalRepositories implements StockTransactionalRepositories
var _ appcatalog.StockTransactionalRepositories = (*gormStockTransactionalRepositories)(nil)
