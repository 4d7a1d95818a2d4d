package repo

import "github.com/rogerio-castellano/inventory-dashboard/internal/models"

// StatsRepository computes the dashboard projection on demand.
type StatsRepository interface {
	GetDashboardStats() (models.DashboardStats, error)
}
