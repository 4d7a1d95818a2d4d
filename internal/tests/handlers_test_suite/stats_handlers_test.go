package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/inventory-dashboard/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

func TestGetStatsHandler(t *testing.T) {
	setupTestStore(60)
	r := newRouter()

	// Two episodes so the conflict totals have something to sum.
	doRequest(r, http.MethodPost, "/api/simulate-herd", nil)
	doRequest(r, http.MethodPost, "/api/simulate-herd", nil)

	w := doRequest(r, http.MethodGet, "/api/stats", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var stats models.DashboardStats
	if err := json.NewDecoder(w.Body).Decode(&stats); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if stats.TotalProducts != 60 {
		t.Errorf("expected 60 products, got %d", stats.TotalProducts)
	}

	events, _ := eventRepo.GetAll()
	wantConflicts := 0
	for _, e := range events {
		wantConflicts += e.ConflictsDetected
	}
	if stats.TotalConflicts != wantConflicts {
		t.Errorf("totalConflicts %d does not match event log sum %d", stats.TotalConflicts, wantConflicts)
	}
	if stats.ResolvedConflicts != wantConflicts {
		t.Errorf("resolvedConflicts %d does not match resolved event sum %d", stats.ResolvedConflicts, wantConflicts)
	}
}

func TestGetSalesDataHandler(t *testing.T) {
	setupTestStore(10)
	r := newRouter()

	w := doRequest(r, http.MethodGet, "/api/sales", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var data []models.SalesDataPoint
	if err := json.NewDecoder(w.Body).Decode(&data); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(data) != 30 {
		t.Errorf("expected 30 data points, got %d", len(data))
	}
}

func TestGetHerdEventsHandler(t *testing.T) {
	setupTestStore(60)
	r := newRouter()

	if w := doRequest(r, http.MethodGet, "/api/herd-events", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK on empty log, got %d", w.Code)
	}

	doRequest(r, http.MethodPost, "/api/simulate-herd", nil)
	doRequest(r, http.MethodPost, "/api/simulate-herd", nil)

	w := doRequest(r, http.MethodGet, "/api/herd-events", nil)

	var events []models.ThunderingHerdEvent
	if err := json.NewDecoder(w.Body).Decode(&events); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	stored, _ := eventRepo.GetAll()
	if events[0].ID != stored[0].ID {
		t.Error("expected newest event first")
	}
}

func TestHealthHandler(t *testing.T) {
	setupTestStore(1)
	r := newRouter()

	w := doRequest(r, http.MethodGet, "/healthz", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %q", resp.Status)
	}
}
