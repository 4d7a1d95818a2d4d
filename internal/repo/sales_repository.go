package repo

import (
	"sync"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

// SalesRepository serves the seeded daily sales series.
type SalesRepository interface {
	GetAll() ([]models.SalesDataPoint, error)
}

// InMemorySalesRepository holds the static series generated at startup.
type InMemorySalesRepository struct {
	mu   sync.RWMutex
	data []models.SalesDataPoint
}

// NewInMemorySalesRepository creates a repository over the given series.
func NewInMemorySalesRepository(data []models.SalesDataPoint) *InMemorySalesRepository {
	return &InMemorySalesRepository{data: data}
}

// GetAll returns the series oldest day first.
func (r *InMemorySalesRepository) GetAll() ([]models.SalesDataPoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.SalesDataPoint, len(r.data))
	copy(out, r.data)
	return out, nil
}
