package repo

import (
	"math"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

// InMemoryStatsRepository aggregates over the catalog and the herd event
// log. It holds no state of its own; every call recomputes from the
// current repositories.
type InMemoryStatsRepository struct {
	catalogRepo CatalogRepository
	eventRepo   HerdEventRepository
}

func NewInMemoryStatsRepository() *InMemoryStatsRepository {
	return &InMemoryStatsRepository{}
}

func (r *InMemoryStatsRepository) SetRepositories(catalogRepo CatalogRepository, eventRepo HerdEventRepository) {
	r.catalogRepo = catalogRepo
	r.eventRepo = eventRepo
}

// GetDashboardStats implements StatsRepository.
func (r *InMemoryStatsRepository) GetDashboardStats() (models.DashboardStats, error) {
	stats := models.DashboardStats{}

	products, err := r.catalogRepo.GetAll()
	if err != nil {
		return stats, err
	}
	stats.TotalProducts = len(products)

	totalValue := 0.0
	totalDays := 0.0
	velocity := 0.0
	for _, p := range products {
		totalValue += p.Price * float64(p.CurrentStock)
		totalDays += p.DaysOfStockLeft
		velocity += p.AvgDailySales
		switch p.Status {
		case models.StatusLowStock:
			stats.LowStockCount++
		case models.StatusOutOfStock:
			stats.OutOfStockCount++
		}
	}
	stats.TotalValue = math.Round(totalValue)
	stats.SalesVelocity = math.Round(velocity)
	if len(products) > 0 {
		stats.AvgDaysOfStock = math.Round(totalDays/float64(len(products))*10) / 10
	}

	events, err := r.eventRepo.GetAll()
	if err != nil {
		return stats, err
	}
	for _, e := range events {
		stats.TotalConflicts += e.ConflictsDetected
		if e.Resolved {
			stats.ResolvedConflicts += e.ConflictsDetected
		}
	}

	return stats, nil
}
