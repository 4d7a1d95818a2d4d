package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/inventory-dashboard/internal/metrics"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
	repo "github.com/rogerio-castellano/inventory-dashboard/internal/repo"
)

// StockUpdateHandler godoc
// @Summary Apply a vendor stock update
// @Description Applies the update under optimistic concurrency. A stale version triggers synchronous conflict resolution; the response then carries conflict=true and the resolution record.
// @Tags stock
// @Accept json
// @Produce json
// @Param update body StockUpdateRequest true "Proposed stock update"
// @Success 200 {object} stock.UpdateResult
// @Failure 400 {array} StockUpdateValidationError
// @Failure 404 {object} MessageResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/stock-update [post]
func StockUpdateHandler(w http.ResponseWriter, r *http.Request) {
	var req StockUpdateRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateStockUpdate(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	result, err := processor.ApplyUpdate(models.StockUpdate{
		ProductID: req.ProductID,
		VendorID:  req.VendorID,
		NewStock:  req.NewStock,
		Version:   req.Version,
	})
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			metrics.StockUpdatesTotal.WithLabelValues("not_found").Inc()
			writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Product not found"})
			return
		}
		http.Error(w, "could not apply stock update", http.StatusInternalServerError)
		return
	}

	if result.Conflict {
		metrics.StockUpdatesTotal.WithLabelValues("conflict").Inc()
		metrics.ConflictsResolvedTotal.WithLabelValues(string(result.Resolution.Strategy)).Inc()
	} else {
		metrics.StockUpdatesTotal.WithLabelValues("applied").Inc()
	}

	writeJSON(w, http.StatusOK, result)
}

// SimulateHerdHandler godoc
// @Summary Simulate a thundering herd
// @Description Synthesizes one bulk episode of conflicting vendor updates across a random product sample and resolves them with a single strategy.
// @Tags stock
// @Produce json
// @Success 200 {object} models.ThunderingHerdEvent
// @Failure 500 {string} string "Internal error"
// @Router /api/simulate-herd [post]
func SimulateHerdHandler(w http.ResponseWriter, r *http.Request) {
	event, err := simulator.Run()
	if err != nil {
		http.Error(w, "could not simulate herd", http.StatusInternalServerError)
		return
	}

	metrics.HerdSimulationsTotal.Inc()
	metrics.ConflictsResolvedTotal.WithLabelValues(string(event.Strategy)).Add(float64(event.ConflictsDetected))

	writeJSON(w, http.StatusOK, event)
}
