package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/rogerio-castellano/inventory-dashboard/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(RequestLogger)
	r.Use(RequestMetrics)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", handlers.GetProductsHandler)
		r.Get("/products/{id}", handlers.GetProductByIDHandler)
		r.Get("/stats", handlers.GetStatsHandler)
		r.Get("/sales", handlers.GetSalesDataHandler)
		r.Get("/herd-events", handlers.GetHerdEventsHandler)
		r.Post("/stock-update", handlers.StockUpdateHandler)
		r.Post("/simulate-herd", handlers.SimulateHerdHandler)
	})

	r.Get("/healthz", handlers.HealthHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
