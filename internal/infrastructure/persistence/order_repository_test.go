package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pedidos/backend/internal/domain/order"
	"github.com/pedidos/backend/internal/domain/shared"
)

func mustCreateOrder(t *testing.T, db *gorm.DB, repo *GormOrderRepository, studentName string, itemID uuid.UUID) *order.Order {
	t.Helper()

	ord, err := order.NewOrder(studentName, "3B", "Coordenação", "")
	require.NoError(t, err)
	_, err = ord.AddLine(itemID, 2)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), ord))
	return ord
}

func TestGormOrderRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	t.Run("loads order with lines and items", func(t *testing.T) {
		item := mustCreateItem(t, db, "Camiseta uniforme M", 40)
		ord := mustCreateOrder(t, db, repo, "Ana Souza", item.ID)

		found, err := repo.FindByID(ctx, ord.ID)

		require.NoError(t, err)
		assert.Equal(t, "Ana Souza", found.StudentName)
		assert.Equal(t, order.OrderStatusPending, found.Status)
		require.Len(t, found.Lines, 1)
		assert.Equal(t, item.ID, found.Lines[0].ItemID)
		assert.Equal(t, 2, found.Lines[0].Quantity)
		require.NotNil(t, found.Lines[0].Item)
		assert.Equal(t, "Camiseta uniforme M", found.Lines[0].Item.Name)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormOrderRepository_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("returns newest orders first", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormOrderRepository(db)
		item := mustCreateItem(t, db, "Camiseta", 40)

		older := mustCreateOrder(t, db, repo, "Ana Souza", item.ID)
		older.CreatedAt = time.Now().Add(-time.Hour)
		require.NoError(t, db.Omit("Lines").Save(older).Error)

		newer := mustCreateOrder(t, db, repo, "Bruno Lima", item.ID)

		orders, err := repo.FindAll(ctx, shared.DefaultFilter())

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, newer.ID, orders[0].ID)
		assert.Equal(t, older.ID, orders[1].ID)
	})

	t.Run("filters by status", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormOrderRepository(db)
		item := mustCreateItem(t, db, "Camiseta", 40)

		pending := mustCreateOrder(t, db, repo, "Ana Souza", item.ID)
		producing := mustCreateOrder(t, db, repo, "Bruno Lima", item.ID)
		require.NoError(t, producing.TransitionTo(order.OrderStatusProducing, ""))
		require.NoError(t, repo.Save(ctx, producing))

		filter := shared.DefaultFilter()
		filter.Filters["status"] = string(order.OrderStatusPending)

		orders, err := repo.FindAll(ctx, filter)

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, pending.ID, orders[0].ID)
	})
}

func TestGormOrderRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	t.Run("deletes lines removed from the aggregate", func(t *testing.T) {
		first := mustCreateItem(t, db, "Camiseta", 40)
		second := mustCreateItem(t, db, "Mochila", 20)

		ord, err := order.NewOrder("Ana Souza", "3B", "", "")
		require.NoError(t, err)
		_, err = ord.AddLine(first.ID, 1)
		require.NoError(t, err)
		_, err = ord.AddLine(second.ID, 3)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, ord))

		replacement, err := order.NewOrderLine(ord.ID, second.ID, 5)
		require.NoError(t, err)
		require.NoError(t, ord.ReplaceLines([]order.OrderLine{*replacement}))
		require.NoError(t, repo.Save(ctx, ord))

		found, err := repo.FindByID(ctx, ord.ID)
		require.NoError(t, err)
		require.Len(t, found.Lines, 1)
		assert.Equal(t, second.ID, found.Lines[0].ItemID)
		assert.Equal(t, 5, found.Lines[0].Quantity)

		var lineCount int64
		require.NoError(t, db.Model(&order.OrderLine{}).Where("order_id = ?", ord.ID).Count(&lineCount).Error)
		assert.Equal(t, int64(1), lineCount)
	})

	t.Run("persists status transitions", func(t *testing.T) {
		item := mustCreateItem(t, db, "Kit material", 50)
		ord := mustCreateOrder(t, db, repo, "Carla Dias", item.ID)

		require.NoError(t, ord.TransitionTo(order.OrderStatusProducing, ""))
		require.NoError(t, ord.TransitionTo(order.OrderStatusShipped, "BR123456789"))
		require.NoError(t, repo.Save(ctx, ord))

		found, err := repo.FindByID(ctx, ord.ID)
		require.NoError(t, err)
		assert.Equal(t, order.OrderStatusShipped, found.Status)
		assert.Equal(t, "BR123456789", found.TrackingCode)
	})
}

func TestGormOrderRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	t.Run("deletes order and lines", func(t *testing.T) {
		item := mustCreateItem(t, db, "Camiseta", 40)
		ord := mustCreateOrder(t, db, repo, "Ana Souza", item.ID)

		require.NoError(t, repo.Delete(ctx, ord.ID))

		_, err := repo.FindByID(ctx, ord.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		var lineCount int64
		require.NoError(t, db.Model(&order.OrderLine{}).Where("order_id = ?", ord.ID).Count(&lineCount).Error)
		assert.Equal(t, int64(0), lineCount)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
