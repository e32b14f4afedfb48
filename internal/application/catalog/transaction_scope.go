package catalog

import (
	"context"

	"github.com/pedidos/backend/internal/domain/catalog"
	"github.com/pedidos/backend/internal/domain/ledger"
)

// StockTransactionScope provides transactional access to the repositories
// touched by a stock adjustment. When a function is executed within the scope,
// the item update and the movement insert are committed or rolled back atomically.
type StockTransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos StockTransactionalRepositories) error) error
}

// StockTransactionalRepositories provides access to the stock repositories
// within a transaction. All repositories share the same underlying transaction.
type StockTransactionalRepositories interface {
	// ItemRepo returns the item repository scoped to the current transaction
	ItemRepo() catalog.ItemRepository
	// MovementRepo returns the stock movement repository scoped to the current transaction
	MovementRepo() ledger.StockMovementRepository
}

// NoOpStockTransactionScope is a scope that doesn't actually use transactions.
// This is useful for testing.
type NoOpStockTransactionScope struct {
	itemRepo     catalog.ItemRepository
	movementRepo ledger.StockMovementRepository
}

// NewNoOpStockTransactionScope creates a NoOpStockTransactionScope with the given repositories.
func NewNoOpStockTransactionScope(itemRepo catalog.ItemRepository, movementRepo ledger.StockMovementRepository) *NoOpStockTransactionScope {
	return &NoOpStockTransactionScope{
		itemRepo:     itemRepo,
		movementRepo: movementRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpStockTransactionScope) Execute(_ context.Context, fn func(repos StockTransactionalRepositories) error) error {
	return fn(s)
}

// ItemRepo returns the item repository.
func (s *NoOpStockTransactionScope) ItemRepo() catalog.ItemRepository {
	return s.itemRepo
}

// MovementRepo returns the stock movement repository.
func (s *NoOpStockTransactionScope) MovementRepo() ledger.StockMovementRepository {
	return s.movementRepo
}

// Ensure NoOpStockTransactionScope implements both interfaces
var _ StockTransactionScope = (*NoOpStockTransactionScope)(nil)
var _ StockTransactionalRepositories = (*NoOpStockTransactionScope)(nil)
