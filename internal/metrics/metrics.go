// Package metrics declares the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Stock update metrics, labeled by outcome: applied, conflict or
	// not_found.
	StockUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_stock_updates_total",
			Help: "Total number of processed stock updates",
		},
		[]string{"outcome"},
	)

	ConflictsResolvedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_conflicts_resolved_total",
			Help: "Total number of resolved stock conflicts",
		},
		[]string{"strategy"},
	)

	HerdSimulationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_herd_simulations_total",
			Help: "Total number of simulated thundering-herd episodes",
		},
	)
)
