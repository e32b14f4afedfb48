package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/pedidos/backend/internal/application/catalog"
	appledger "github.com/pedidos/backend/internal/application/ledger"
)

func TestItemHandler_Create(t *testing.T) {
	t.Run("creates item with 201", func(t *testing.T) {
		s := newTestServer(t)

		var item appcatalog.ItemResponse
		w := s.request(t, http.MethodPost, "/items", gin.H{
			"name":          "Camiseta uniforme M",
			"category":      "Uniforme",
			"size":          "M",
			"stockQuantity": 40,
		}, &item)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Camiseta uniforme M", item.Name)
		assert.Equal(t, 40, item.StockQuantity)
		assert.True(t, item.IsActive)
	})

	t.Run("defaults stock to zero", func(t *testing.T) {
		s := newTestServer(t)

		var item appcatalog.ItemResponse
		w := s.request(t, http.MethodPost, "/items", gin.H{"name": "Mochila", "category": "Acessório"}, &item)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 0, item.StockQuantity)
	})

	t.Run("persists an item created as inactive", func(t *testing.T) {
		s := newTestServer(t)

		var item appcatalog.ItemResponse
		w := s.request(t, http.MethodPost, "/items", gin.H{
			"name":     "Camiseta descontinuada",
			"category": "Uniforme",
			"isActive": false,
		}, &item)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.False(t, item.IsActive)

		var fetched appcatalog.ItemResponse
		w = s.request(t, http.MethodGet, "/items/"+item.ID.String(), nil, &fetched)
		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, fetched.IsActive)
	})

	t.Run("rejects missing name with 400", func(t *testing.T) {
		s := newTestServer(t)

		w := s.request(t, http.MethodPost, "/items", gin.H{"category": "Uniforme"}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NotEmpty(t, errorMessage(t, w))
	})

	t.Run("rejects missing category with 400", func(t *testing.T) {
		s := newTestServer(t)

		w := s.request(t, http.MethodPost, "/items", gin.H{"name": "Mochila"}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NotEmpty(t, errorMessage(t, w))
	})
}

func TestItemHandler_List(t *testing.T) {
	t.Run("lists items ordered by name", func(t *testing.T) {
		s := newTestServer(t)
		s.createItem(t, "Mochila escolar", 20)
		s.createItem(t, "Camiseta uniforme P", 30)

		var items []appcatalog.ItemResponse
		w := s.request(t, http.MethodGet, "/items", nil, &items)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, items, 2)
		assert.Equal(t, "Camiseta uniforme P", items[0].Name)
		assert.Equal(t, "Mochila escolar", items[1].Name)
	})

	t.Run("filters by category", func(t *testing.T) {
		s := newTestServer(t)
		s.createItem(t, "Camiseta", 10)

		var kit appcatalog.ItemResponse
		w := s.request(t, http.MethodPost, "/items", gin.H{"name": "Kit material", "category": "Material"}, &kit)
		require.Equal(t, http.StatusCreated, w.Code)

		var items []appcatalog.ItemResponse
		w = s.request(t, http.MethodGet, "/items?category=Material", nil, &items)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, items, 1)
		assert.Equal(t, "Kit material", items[0].Name)
	})

	t.Run("filters by active flag in both directions", func(t *testing.T) {
		s := newTestServer(t)
		s.createItem(t, "Camiseta", 10)

		var retired appcatalog.ItemResponse
		w := s.request(t, http.MethodPost, "/items", gin.H{
			"name":     "Camiseta antiga",
			"category": "Uniforme",
			"isActive": false,
		}, &retired)
		require.Equal(t, http.StatusCreated, w.Code)

		var items []appcatalog.ItemResponse
		w = s.request(t, http.MethodGet, "/items?onlyActive=true", nil, &items)
		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, items, 1)
		assert.Equal(t, "Camiseta", items[0].Name)

		w = s.request(t, http.MethodGet, "/items?onlyActive=false", nil, &items)
		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, items, 1)
		assert.Equal(t, "Camiseta antiga", items[0].Name)

		w = s.request(t, http.MethodGet, "/items", nil, &items)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, items, 2)
	})
}

func TestItemHandler_GetByID(t *testing.T) {
	t.Run("returns the item", func(t *testing.T) {
		s := newTestServer(t)
		created := s.createItem(t, "Camiseta", 10)

		var item appcatalog.ItemResponse
		w := s.request(t, http.MethodGet, "/items/"+created.ID.String(), nil, &item)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, created.ID, item.ID)
	})

	t.Run("returns 404 for unknown item", func(t *testing.T) {
		s := newTestServer(t)

		w := s.request(t, http.MethodGet, "/items/6b1e5f93-1fb4-4f9f-9d54-1b64c6a1e001", nil, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 400 for malformed id", func(t *testing.T) {
		s := newTestServer(t)

		w := s.request(t, http.MethodGet, "/items/not-a-uuid", nil, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestItemHandler_Patch(t *testing.T) {
	t.Run("adjusts stock and writes one ledger entry", func(t *testing.T) {
		s := newTestServer(t)
		created := s.createItem(t, "Camiseta", 10)

		var item appcatalog.ItemResponse
		w := s.request(t, http.MethodPatch, "/items/"+created.ID.String(), gin.H{
			"stockQuantity": 15,
			"reason":        "Reposição",
		}, &item)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 15, item.StockQuantity)

		var movements []appledger.StockMovementResponse
		w = s.request(t, http.MethodGet, "/stock-movements", nil, &movements)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, movements, 1)
		assert.Equal(t, "IN", movements[0].Type)
		assert.Equal(t, 5, movements[0].Quantity)
		assert.Equal(t, "Reposição", movements[0].Reason)
	})

	t.Run("same target writes no ledger entry", func(t *testing.T) {
		s := newTestServer(t)
		created := s.createItem(t, "Camiseta", 10)

		var item appcatalog.ItemResponse
		w := s.request(t, http.MethodPatch, "/items/"+created.ID.String(), gin.H{
			"stockQuantity": 10,
		}, &item)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 10, item.StockQuantity)

		var movements []appledger.StockMovementResponse
		w = s.request(t, http.MethodGet, "/stock-movements", nil, &movements)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, movements)
	})

	t.Run("updates descriptive fields without touching stock", func(t *testing.T) {
		s := newTestServer(t)
		created := s.createItem(t, "Camiseta", 10)

		var item appcatalog.ItemResponse
		w := s.request(t, http.MethodPatch, "/items/"+created.ID.String(), gin.H{
			"name":     "Camiseta uniforme G",
			"isActive": false,
		}, &item)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Camiseta uniforme G", item.Name)
		assert.False(t, item.IsActive)
		assert.Equal(t, 10, item.StockQuantity)
	})

	t.Run("rejects negative stock with 400", func(t *testing.T) {
		s := newTestServer(t)
		created := s.createItem(t, "Camiseta", 10)

		w := s.request(t, http.MethodPatch, "/items/"+created.ID.String(), gin.H{
			"stockQuantity": -1,
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 404 for unknown item", func(t *testing.T) {
		s := newTestServer(t)

		w := s.request(t, http.MethodPatch, "/items/6b1e5f93-1fb4-4f9f-9d54-1b64c6a1e001", gin.H{
			"stockQuantity": 5,
		}, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
