package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appcatalog "github.com/pedidos/backend/internal/application/catalog"
	appidentity "github.com/pedidos/backend/internal/application/identity"
	appledger "github.com/pedidos/backend/internal/application/ledger"
	apporder "github.com/pedidos/backend/internal/application/order"
	"github.com/pedidos/backend/internal/domain/catalog"
	"github.com/pedidos/backend/internal/domain/identity"
	"github.com/pedidos/backend/internal/domain/ledger"
	"github.com/pedidos/backend/internal/domain/order"
	"github.com/pedidos/backend/internal/infrastructure/persistence"
	"github.com/pedidos/backend/internal/interfaces/http/middleware"
	"github.com/pedidos/backend/internal/interfaces/http/router"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// testServer wires the full stack over an in-memory database
type testServer struct {
	engine *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&catalog.Item{},
		&order.Order{},
		&order.OrderLine{},
		&ledger.StockMovement{},
		&identity.User{},
	))

	itemRepo := persistence.NewGormItemRepository(db)
	orderRepo := persistence.NewGormOrderRepository(db)
	movementRepo := persistence.NewGormStockMovementRepository(db)
	userRepo := persistence.NewGormUserRepository(db)
	txScope := persistence.NewGormStockTransactionScope(db)

	itemService := appcatalog.NewItemService(itemRepo, txScope)
	orderService := apporder.NewOrderService(orderRepo, itemRepo)
	movementService := appledger.NewStockMovementService(movementRepo)
	authService := appidentity.NewAuthService(userRepo, zap.NewNop())

	engine := gin.New()
	router.NewRouter(engine).
		Use(middleware.RequestID()).
		Register(NewAuthHandler(authService)).
		Register(NewItemHandler(itemService)).
		Register(NewOrderHandler(orderService)).
		Register(NewStockMovementHandler(movementService)).
		Register(NewSystemHandler(nil)).
		Setup()

	return &testServer{engine: engine, db: db}
}

// request performs an HTTP request against the test server and decodes the JSON body
func (s *testServer) request(t *testing.T, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	if out != nil && w.Code < http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

func (s *testServer) createItem(t *testing.T, name string, stock int) appcatalog.ItemResponse {
	t.Helper()

	var item appcatalog.ItemResponse
	w := s.request(t, http.MethodPost, "/items", gin.H{
		"name":          name,
		"category":      "Uniforme",
		"stockQuantity": stock,
	}, &item)
	require.Equal(t, http.StatusCreated, w.Code)
	return item
}

func (s *testServer) createOrder(t *testing.T, lines []gin.H) apporder.OrderResponse {
	t.Helper()

	var ord apporder.OrderResponse
	w := s.request(t, http.MethodPost, "/orders", gin.H{
		"studentName":  "Maria Silva",
		"studentClass": "3A",
		"requestedBy":  "Coordenação",
		"items":        lines,
	}, &ord)
	require.Equal(t, http.StatusCreated, w.Code)
	return ord
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}
