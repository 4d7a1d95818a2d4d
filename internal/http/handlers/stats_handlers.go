package handlers

import "net/http"

// GetStatsHandler godoc
// @Summary Dashboard statistics
// @Description Aggregate projection over the catalog and the herd event log, recomputed per request
// @Tags stats
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Failure 500 {string} string "Internal error"
// @Router /api/stats [get]
func GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := statsRepo.GetDashboardStats()
	if err != nil {
		http.Error(w, "could not compute stats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GetSalesDataHandler godoc
// @Summary Seeded daily sales series
// @Tags stats
// @Produce json
// @Success 200 {array} models.SalesDataPoint
// @Failure 500 {string} string "Internal error"
// @Router /api/sales [get]
func GetSalesDataHandler(w http.ResponseWriter, r *http.Request) {
	data, err := salesRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch sales data", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// GetHerdEventsHandler godoc
// @Summary Thundering-herd event log
// @Description Events newest first
// @Tags stock
// @Produce json
// @Success 200 {array} models.ThunderingHerdEvent
// @Failure 500 {string} string "Internal error"
// @Router /api/herd-events [get]
func GetHerdEventsHandler(w http.ResponseWriter, r *http.Request) {
	events, err := eventRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch herd events", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
