package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appledger "github.com/pedidos/backend/internal/application/ledger"
)

func TestStockMovementHandler_List(t *testing.T) {
	t.Run("returns most recent movements first", func(t *testing.T) {
		s := newTestServer(t)
		item := s.createItem(t, "Camiseta", 0)

		for _, target := range []int{10, 7, 12} {
			w := s.request(t, http.MethodPatch, "/items/"+item.ID.String(), gin.H{
				"stockQuantity": target,
			}, nil)
			require.Equal(t, http.StatusOK, w.Code)
		}

		var movements []appledger.StockMovementResponse
		w := s.request(t, http.MethodGet, "/stock-movements", nil, &movements)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, movements, 3)
		assert.Equal(t, "IN", movements[0].Type)
		assert.Equal(t, 5, movements[0].Quantity)
		assert.Equal(t, "OUT", movements[1].Type)
		assert.Equal(t, 3, movements[1].Quantity)
	})

	t.Run("applies the limit parameter", func(t *testing.T) {
		s := newTestServer(t)
		item := s.createItem(t, "Camiseta", 0)

		for target := 1; target <= 3; target++ {
			w := s.request(t, http.MethodPatch, "/items/"+item.ID.String(), gin.H{
				"stockQuantity": target * 10,
			}, nil)
			require.Equal(t, http.StatusOK, w.Code)
		}

		var movements []appledger.StockMovementResponse
		w := s.request(t, http.MethodGet, "/stock-movements?limit=2", nil, &movements)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, movements, 2)
	})

	t.Run("filters by item", func(t *testing.T) {
		s := newTestServer(t)
		shirt := s.createItem(t, "Camiseta", 0)
		backpack := s.createItem(t, "Mochila", 0)

		for _, item := range []string{shirt.ID.String(), backpack.ID.String()} {
			w := s.request(t, http.MethodPatch, "/items/"+item, gin.H{"stockQuantity": 5}, nil)
			require.Equal(t, http.StatusOK, w.Code)
		}

		var movements []appledger.StockMovementResponse
		path := fmt.Sprintf("/stock-movements?itemId=%s", shirt.ID)
		w := s.request(t, http.MethodGet, path, nil, &movements)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, movements, 1)
		assert.Equal(t, shirt.ID, movements[0].ItemID)
	})

	t.Run("rejects malformed itemId with 400", func(t *testing.T) {
		s := newTestServer(t)

		w := s.request(t, http.MethodGet, "/stock-movements?itemId=not-a-uuid", nil, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
