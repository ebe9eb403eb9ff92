package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/Githubspruchir/InventoryStore/internal/http"
	handler "github.com/Githubspruchir/InventoryStore/internal/http/handlers"
	"github.com/Githubspruchir/InventoryStore/internal/repo"
)

func TestGetDashboardMetricsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	quiet, _ := decodeProduct(createProduct(r, handler.ProductRequest{Name: "Quiet", StockQuantity: 50}))
	busy, _ := decodeProduct(createProduct(r, handler.ProductRequest{Name: "Busy", StockQuantity: 50}))

	doJSON(r, http.MethodPost, fmt.Sprintf("/api/products/%d/increase?qty=1", quiet.ID), nil)
	doJSON(r, http.MethodPost, fmt.Sprintf("/api/products/%d/increase?qty=2", busy.ID), nil)
	doJSON(r, http.MethodPost, fmt.Sprintf("/api/products/%d/decrease?qty=1", busy.ID), nil)

	createProduct(r, handler.ProductRequest{Name: "Scarce", StockQuantity: 3})

	w := doJSON(r, http.MethodGet, "/api/metrics/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var m repo.Metrics
	if err := json.NewDecoder(w.Body).Decode(&m); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if m.TotalProducts != 3 {
		t.Errorf("expected 3 products, got %d", m.TotalProducts)
	}
	if m.TotalMovements != 3 {
		t.Errorf("expected 3 movements, got %d", m.TotalMovements)
	}
	if m.LowStockCount != 1 {
		t.Errorf("expected 1 low-stock product, got %d", m.LowStockCount)
	}
	if m.MostMovedProduct.Name != "Busy" || m.MostMovedProduct.MovementCount != 2 {
		t.Errorf("unexpected most moved product: %+v", m.MostMovedProduct)
	}
}

func TestGetDashboardMetricsHandler_Unauthorized(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/metrics/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}
