package repo

import (
	"errors"
	"testing"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
	"github.com/rogerio-castellano/inventory-dashboard/internal/stock"
)

func seedCatalog() *InMemoryCatalogRepository {
	r := NewInMemoryCatalogRepository()
	r.Load([]models.Product{
		{ID: "prod_000000", Title: "Ultra Webcam", CurrentStock: 100, ReorderPoint: 30, MaxStock: 300, AvgDailySales: 4, Version: 1},
		{ID: "prod_000001", Title: "Eco Planter", CurrentStock: 0, ReorderPoint: 45, MaxStock: 250, AvgDailySales: 2.5, Version: 1},
		{ID: "prod_000002", Title: "Classic Journal", CurrentStock: 240, ReorderPoint: 37, MaxStock: 250, AvgDailySales: 8, Version: 1},
	})
	return r
}

func TestGetAll_PreservesSeedOrder(t *testing.T) {
	r := seedCatalog()

	products, err := r.GetAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	for i, want := range []string{"prod_000000", "prod_000001", "prod_000002"} {
		if products[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, products[i].ID)
		}
	}
}

func TestGetByID_NotFound(t *testing.T) {
	r := seedCatalog()

	if _, err := r.GetByID("prod_999999"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestApplyStock_Bookkeeping(t *testing.T) {
	r := seedCatalog()

	p, err := r.ApplyStock("prod_000000", 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CurrentStock != 25 {
		t.Errorf("expected stock 25, got %d", p.CurrentStock)
	}
	if p.Version != 2 {
		t.Errorf("expected version 2, got %d", p.Version)
	}
	if p.LastUpdated == "" {
		t.Error("expected lastUpdated to be refreshed")
	}

	wantStatus, wantDays := stock.DeriveStatus(25, p.ReorderPoint, p.MaxStock, p.AvgDailySales)
	if p.Status != wantStatus {
		t.Errorf("expected status %q, got %q", wantStatus, p.Status)
	}
	if p.DaysOfStockLeft != wantDays {
		t.Errorf("expected %v days, got %v", wantDays, p.DaysOfStockLeft)
	}

	// The stored copy matches the returned one.
	stored, _ := r.GetByID("prod_000000")
	if stored.Version != 2 || stored.CurrentStock != 25 {
		t.Errorf("stored product out of sync: %+v", stored)
	}
}

func TestApplyStock_RejectsNegativeStock(t *testing.T) {
	r := seedCatalog()

	if _, err := r.ApplyStock("prod_000000", -1); err == nil {
		t.Fatal("expected error for negative stock")
	}

	p, _ := r.GetByID("prod_000000")
	if p.Version != 1 || p.CurrentStock != 100 {
		t.Error("failed mutation must not change the product")
	}
}

func TestApplyStock_NotFound(t *testing.T) {
	r := seedCatalog()

	if _, err := r.ApplyStock("prod_999999", 10); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestLoad_DefaultsVersionToOne(t *testing.T) {
	r := NewInMemoryCatalogRepository()
	r.Load([]models.Product{{ID: "prod_000000"}})

	p, _ := r.GetByID("prod_000000")
	if p.Version != 1 {
		t.Errorf("expected version 1, got %d", p.Version)
	}
}
