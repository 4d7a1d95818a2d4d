package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	handler "github.com/rogerio-castellano/inventory-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
	"github.com/rogerio-castellano/inventory-dashboard/internal/stock"
)

func TestStockUpdateHandler_CleanApply(t *testing.T) {
	setupTestStore(10)
	r := newRouter()

	product, _ := catalogRepo.GetByID("prod_000000")

	w := postStockUpdate(r, handler.StockUpdateRequest{
		ProductID: "prod_000000",
		VendorID:  "vendor_1",
		NewStock:  120,
		Version:   product.Version,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp stock.UpdateResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if !resp.Success || resp.Conflict {
		t.Errorf("expected clean apply, got %+v", resp)
	}

	updated, _ := catalogRepo.GetByID("prod_000000")
	if updated.CurrentStock != 120 || updated.Version != product.Version+1 {
		t.Errorf("catalog not updated: stock=%d version=%d", updated.CurrentStock, updated.Version)
	}
}

func TestStockUpdateHandler_StaleVersionConflict(t *testing.T) {
	setupTestStore(10)
	r := newRouter()

	product, _ := catalogRepo.GetByID("prod_000000")

	w := postStockUpdate(r, handler.StockUpdateRequest{
		ProductID: "prod_000000",
		VendorID:  "vendor_2",
		NewStock:  80,
		Version:   product.Version + 5,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp stock.UpdateResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if !resp.Success || !resp.Conflict {
		t.Fatalf("expected resolved conflict, got %+v", resp)
	}
	if resp.Resolution == nil {
		t.Fatal("expected a resolution record")
	}
	if resp.Resolution.ResolvedStock != 80 {
		t.Errorf("single-update buffer should win with 80, got %d", resp.Resolution.ResolvedStock)
	}

	events, _ := eventRepo.GetAll()
	if len(events) != 1 {
		t.Fatalf("expected one herd event, got %d", len(events))
	}
	if events[0].ProductsAffected != 1 || events[0].ConflictsDetected != 1 || !events[0].Resolved {
		t.Errorf("unexpected event summary: %+v", events[0])
	}
}

func TestStockUpdateHandler_Validation(t *testing.T) {
	setupTestStore(10)
	r := newRouter()

	tests := []struct {
		name           string
		payload        handler.StockUpdateRequest
		expectedErrors []string
	}{
		{
			name:           "missing product and vendor",
			payload:        handler.StockUpdateRequest{NewStock: 10, Version: 1},
			expectedErrors: []string{"ProductId", "VendorId"},
		},
		{
			name:           "negative stock",
			payload:        handler.StockUpdateRequest{ProductID: "prod_000000", VendorID: "vendor_1", NewStock: -5, Version: 1},
			expectedErrors: []string{"NewStock"},
		},
		{
			name:           "zero version",
			payload:        handler.StockUpdateRequest{ProductID: "prod_000000", VendorID: "vendor_1", NewStock: 5},
			expectedErrors: []string{"Version"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postStockUpdate(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp []handler.StockUpdateValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, e := range resp {
					if strings.EqualFold(e.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestStockUpdateHandler_MalformedJSON(t *testing.T) {
	setupTestStore(10)
	r := newRouter()

	badJSON := `{productId: "prod_000000" newStock: 10}`
	req := httptest.NewRequest(http.MethodPost, "/api/stock-update", bytes.NewBufferString(badJSON))
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}
}

func TestStockUpdateHandler_UnknownProduct(t *testing.T) {
	setupTestStore(10)
	r := newRouter()

	w := postStockUpdate(r, handler.StockUpdateRequest{
		ProductID: "prod_404404",
		VendorID:  "vendor_1",
		NewStock:  10,
		Version:   1,
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found, got %d", w.Code)
	}

	if events, _ := eventRepo.GetAll(); len(events) != 0 {
		t.Error("unknown product must not produce herd events")
	}
}

func TestSimulateHerdHandler(t *testing.T) {
	setupTestStore(60)
	r := newRouter()

	w := doRequest(r, http.MethodPost, "/api/simulate-herd", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var event models.ThunderingHerdEvent
	if err := json.NewDecoder(w.Body).Decode(&event); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if event.VendorCount < 2 || event.VendorCount > 9 {
		t.Errorf("vendorCount %d out of [2,9]", event.VendorCount)
	}
	if event.ProductsAffected < 5 || event.ProductsAffected > 54 {
		t.Errorf("productsAffected %d out of [5,54]", event.ProductsAffected)
	}
	if event.ConflictsDetected != event.ProductsAffected {
		t.Errorf("conflictsDetected %d != productsAffected %d", event.ConflictsDetected, event.ProductsAffected)
	}

	events, _ := eventRepo.GetAll()
	if len(events) != 1 || events[0].ID != event.ID {
		t.Error("episode event not logged")
	}
}
