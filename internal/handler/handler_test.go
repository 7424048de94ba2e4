package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/joaodevsafe/service-sales-buddy/internal/models"
	"github.com/joaodevsafe/service-sales-buddy/internal/settings"
	"github.com/joaodevsafe/service-sales-buddy/internal/store"
	"github.com/joaodevsafe/service-sales-buddy/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (*gin.Engine, *storage.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := storage.NewMemoryStore()
	appStore := store.New(mem, zap.NewNop())
	settingsSvc := settings.NewService(mem, zap.NewNop())

	r := gin.New()

	customerHandler := &CustomerHandler{Store: appStore}
	r.GET("/api/v1/customers", customerHandler.ListCustomers)
	r.POST("/api/v1/customers", customerHandler.CreateCustomer)
	r.PUT("/api/v1/customers/:id", customerHandler.UpdateCustomer)

	serviceHandler := &ServiceHandler{Store: appStore, Settings: settingsSvc}
	r.POST("/api/v1/services", serviceHandler.CreateServiceOrder)
	r.PUT("/api/v1/services/:id", serviceHandler.UpdateServiceOrder)
	r.GET("/api/v1/services/:id/slip", serviceHandler.GetOrderSlip)

	productHandler := &ProductHandler{Store: appStore}
	r.POST("/api/v1/products", productHandler.CreateProduct)
	r.GET("/api/v1/products/alerts", productHandler.GetLowStockAlerts)
	r.POST("/api/v1/stock-movements", productHandler.RegisterMovement)
	r.GET("/api/v1/stock-movements", productHandler.ListMovements)

	saleHandler := &SaleHandler{Store: appStore, Settings: settingsSvc}
	r.POST("/api/v1/sales", saleHandler.CreateSale)
	r.GET("/api/v1/sales/:id/receipt", saleHandler.GetReceipt)

	reportHandler := &ReportHandler{Store: appStore}
	r.GET("/api/v1/reports", reportHandler.GetReport)

	settingsHandler := &SettingsHandler{Settings: settingsSvc}
	r.GET("/api/v1/settings/system", settingsHandler.GetSystem)
	r.PUT("/api/v1/settings/system", settingsHandler.UpdateSystem)
	r.GET("/api/v1/backup/export", settingsHandler.ExportBackup)
	r.POST("/api/v1/backup/import", settingsHandler.ImportBackup)

	return r, mem
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(t *testing.T, r *gin.Engine, name string, price float64, stock int) models.Product {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/products", gin.H{
		"name":     name,
		"category": "Parts",
		"price":    price,
		"stock":    stock,
		"minStock": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var p models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func TestCustomerFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/customers", gin.H{"name": "Ana", "phone": "11 99999-0000"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodGet, "/api/v1/customers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	// Update against an unknown id is rejected, not ignored.
	w = doJSON(t, r, http.MethodPut, "/api/v1/customers/missing", gin.H{"name": "Bob", "phone": "1"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/v1/customers/"+created.ID, gin.H{"name": "Ana Maria", "phone": "11 99999-0000"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Missing required fields fail at the binding boundary.
	w = doJSON(t, r, http.MethodPost, "/api/v1/customers", gin.H{"name": "NoPhone"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaleFlowWithReceipt(t *testing.T) {
	r, _ := newTestRouter(t)
	a := createProduct(t, r, "Product A", 10.00, 10)
	b := createProduct(t, r, "Product B", 5.50, 5)

	w := doJSON(t, r, http.MethodPost, "/api/v1/sales", gin.H{
		"paymentMethod": "cash",
		"items": []gin.H{
			{"productId": a.ID, "quantity": 2},
			{"productId": b.ID, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var sale models.Sale
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sale))
	assert.Equal(t, 25.50, sale.Total)
	assert.Len(t, sale.Items, 2)

	w = doJSON(t, r, http.MethodGet, "/api/v1/sales/"+sale.ID+"/receipt", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "=== SALES RECEIPT ===")
	assert.Contains(t, w.Body.String(), "TOTAL: R$ 25.50")

	// Two movements were emitted, one per line.
	w = doJSON(t, r, http.MethodGet, "/api/v1/stock-movements", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var movements []models.StockMovement
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &movements))
	assert.Len(t, movements, 2)
}

func TestSaleRejectedOnInsufficientStock(t *testing.T) {
	r, _ := newTestRouter(t)
	a := createProduct(t, r, "Product A", 10.00, 3)

	w := doJSON(t, r, http.MethodPost, "/api/v1/sales", gin.H{
		"paymentMethod": "card",
		"items":         []gin.H{{"productId": a.ID, "quantity": 4}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient stock")
}

func TestManualMovementRejectedOnOverdraw(t *testing.T) {
	r, _ := newTestRouter(t)
	p := createProduct(t, r, "Screen", 120, 10)

	w := doJSON(t, r, http.MethodPost, "/api/v1/stock-movements", gin.H{
		"productId": p.ID,
		"type":      "out",
		"quantity":  15,
		"reason":    "damaged batch",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Sale movements cannot be forged through the manual endpoint.
	w = doJSON(t, r, http.MethodPost, "/api/v1/stock-movements", gin.H{
		"productId": p.ID,
		"type":      "sale",
		"quantity":  1,
		"reason":    "nope",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServiceOrderSlipEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/customers", gin.H{"name": "Ana", "phone": "123"})
	require.Equal(t, http.StatusCreated, w.Code)
	var customer models.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customer))

	w = doJSON(t, r, http.MethodPost, "/api/v1/services", gin.H{
		"customerId": customer.ID,
		"device":     "Notebook",
		"issue":      "No power",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order models.ServiceOrder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/services/%s/slip", order.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "=== SERVICE ORDER ===")
	assert.Contains(t, w.Body.String(), "Name: Ana")

	// Orders for unknown customers are rejected.
	w = doJSON(t, r, http.MethodPost, "/api/v1/services", gin.H{
		"customerId": "missing",
		"device":     "Phone",
		"issue":      "Screen",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmptyTodayReport(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/reports?period=today", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Report struct {
			TotalRevenue float64           `json:"totalRevenue"`
			TotalSales   int               `json:"totalSales"`
			TopProducts  []json.RawMessage `json:"topProducts"`
			TopCustomers []json.RawMessage `json:"topCustomers"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Report.TotalRevenue)
	assert.Zero(t, resp.Report.TotalSales)
	assert.Empty(t, resp.Report.TopProducts)
	assert.Empty(t, resp.Report.TopCustomers)

	w = doJSON(t, r, http.MethodGet, "/api/v1/reports?period=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBackupExportImport(t *testing.T) {
	r, _ := newTestRouter(t)
	createProduct(t, r, "Screen", 120, 10)

	w := doJSON(t, r, http.MethodGet, "/api/v1/backup/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "techassist-backup-")
	exported := w.Body.Bytes()

	// Restore onto a fresh instance.
	fresh, freshMem := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/backup/import", bytes.NewReader(exported))
	rec := httptest.NewRecorder()
	fresh.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	data, ok, err := freshMem.Read(storage.KeyAppState)
	require.NoError(t, err)
	require.True(t, ok)
	var state models.AppState
	require.NoError(t, json.Unmarshal(data, &state))
	assert.Len(t, state.Products, 1)

	// Malformed uploads are rejected.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/backup/import", bytes.NewReader([]byte("{bad")))
	rec = httptest.NewRecorder()
	fresh.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSystemSettingsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/settings/system", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var system models.SystemSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &system))
	assert.Equal(t, 5, system.LowStockAlert)

	system.LowStockAlert = 8
	w = doJSON(t, r, http.MethodPut, "/api/v1/settings/system", system)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/settings/system", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &system))
	assert.Equal(t, 8, system.LowStockAlert)
}
