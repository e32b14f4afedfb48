package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pedidos/backend/internal/domain/ledger"
	"github.com/pedidos/backend/internal/domain/shared"
)

func mustCreateMovement(t *testing.T, db *gorm.DB, itemID uuid.UUID, movementType ledger.MovementType, quantity int, createdAt time.Time) *ledger.StockMovement {
	t.Helper()

	movement, err := ledger.NewStockMovement(itemID, movementType, quantity, "")
	require.NoError(t, err)
	movement.CreatedAt = createdAt
	require.NoError(t, db.Save(movement).Error)
	return movement
}

func TestGormStockMovementRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStockMovementRepository(db)
	ctx := context.Background()

	t.Run("finds movement with item preloaded", func(t *testing.T) {
		item := mustCreateItem(t, db, "Camiseta uniforme M", 40)
		movement := mustCreateMovement(t, db, item.ID, ledger.MovementTypeIn, 10, time.Now())

		found, err := repo.FindByID(ctx, movement.ID)

		require.NoError(t, err)
		assert.Equal(t, ledger.MovementTypeIn, found.Type)
		assert.Equal(t, 10, found.Quantity)
		assert.Equal(t, ledger.DefaultAdjustmentReason, found.Reason)
		require.NotNil(t, found.Item)
		assert.Equal(t, "Camiseta uniforme M", found.Item.Name)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormStockMovementRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStockMovementRepository(db)
	ctx := context.Background()

	item := mustCreateItem(t, db, "Camiseta", 40)
	now := time.Now()

	oldest := mustCreateMovement(t, db, item.ID, ledger.MovementTypeIn, 10, now.Add(-2*time.Hour))
	middle := mustCreateMovement(t, db, item.ID, ledger.MovementTypeOut, 3, now.Add(-time.Hour))
	newest := mustCreateMovement(t, db, item.ID, ledger.MovementTypeIn, 5, now)

	t.Run("returns newest movements first", func(t *testing.T) {
		movements, err := repo.FindAll(ctx, shared.DefaultFilter())

		require.NoError(t, err)
		require.Len(t, movements, 3)
		assert.Equal(t, newest.ID, movements[0].ID)
		assert.Equal(t, middle.ID, movements[1].ID)
		assert.Equal(t, oldest.ID, movements[2].ID)
	})

	t.Run("applies the limit", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Limit = 2

		movements, err := repo.FindAll(ctx, filter)

		require.NoError(t, err)
		require.Len(t, movements, 2)
		assert.Equal(t, newest.ID, movements[0].ID)
	})
}

func TestGormStockMovementRepository_FindByItem(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStockMovementRepository(db)
	ctx := context.Background()

	first := mustCreateItem(t, db, "Camiseta", 40)
	second := mustCreateItem(t, db, "Mochila", 20)
	now := time.Now()

	mustCreateMovement(t, db, first.ID, ledger.MovementTypeIn, 10, now.Add(-time.Hour))
	mustCreateMovement(t, db, first.ID, ledger.MovementTypeOut, 4, now)
	mustCreateMovement(t, db, second.ID, ledger.MovementTypeIn, 20, now)

	t.Run("returns only movements of the item", func(t *testing.T) {
		movements, err := repo.FindByItem(ctx, first.ID, shared.DefaultFilter())

		require.NoError(t, err)
		require.Len(t, movements, 2)
		for _, m := range movements {
			assert.Equal(t, first.ID, m.ItemID)
		}
	})

	t.Run("history replays to the expected balance", func(t *testing.T) {
		movements, err := repo.FindByItem(ctx, first.ID, shared.DefaultFilter())

		require.NoError(t, err)
		assert.Equal(t, 6, ledger.Balance(movements))
	})
}
