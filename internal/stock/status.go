package stock

import (
	"math"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

// DeriveStatus computes a product's stock status and projected days of
// stock left. The precedence order matters: an empty reorder point range
// must not shadow a stockout, and overstock is only checked for products
// above the reorder point.
//
// A zero avgDailySales with positive stock would divide by zero; it is
// reported as 0 days, the same sentinel used for a stockout.
func DeriveStatus(currentStock, reorderPoint, maxStock int, avgDailySales float64) (models.StockStatus, float64) {
	if currentStock == 0 {
		return models.StatusOutOfStock, 0
	}

	days := 0.0
	if avgDailySales > 0 {
		days = round1(float64(currentStock) / avgDailySales)
	}

	switch {
	case currentStock <= reorderPoint:
		return models.StatusLowStock, days
	case float64(currentStock) >= 0.9*float64(maxStock):
		return models.StatusOverstock, days
	default:
		return models.StatusInStock, days
	}
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
