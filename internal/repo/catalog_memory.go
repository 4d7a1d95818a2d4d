package repo

import (
	"fmt"
	"sync"
	"time"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
	"github.com/rogerio-castellano/inventory-dashboard/internal/stock"
)

// InMemoryCatalogRepository is an in-memory implementation of
// CatalogRepository. Products keep their insertion order; a store-wide
// RWMutex makes every mutation one atomic critical section, which is what
// preserves the version-monotonicity invariant on a multi-threaded
// runtime.
type InMemoryCatalogRepository struct {
	mu       sync.RWMutex
	order    []string
	products map[string]models.Product
}

// NewInMemoryCatalogRepository creates an empty catalog.
func NewInMemoryCatalogRepository() *InMemoryCatalogRepository {
	return &InMemoryCatalogRepository{
		products: make(map[string]models.Product),
	}
}

// Load replaces the catalog contents with the given seed, keeping slice
// order as insertion order. Intended for startup and tests.
func (r *InMemoryCatalogRepository) Load(products []models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = make([]string, 0, len(products))
	r.products = make(map[string]models.Product, len(products))
	for _, p := range products {
		if p.Version == 0 {
			p.Version = 1
		}
		r.order = append(r.order, p.ID)
		r.products[p.ID] = p
	}
}

// GetAll returns a snapshot of all products in insertion order.
func (r *InMemoryCatalogRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.products[id])
	}
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryCatalogRepository) GetByID(id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

// ApplyStock sets a product's stock level and performs the bookkeeping
// every successful mutation requires: version+1, lastUpdated refresh and
// status re-derivation. Stock can never go negative.
func (r *InMemoryCatalogRepository) ApplyStock(id string, newStock int) (models.Product, error) {
	if newStock < 0 {
		return models.Product{}, fmt.Errorf("apply stock to %s: negative stock %d", id, newStock)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}

	p.CurrentStock = newStock
	p.Version++
	p.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	p.Status, p.DaysOfStockLeft = stock.DeriveStatus(p.CurrentStock, p.ReorderPoint, p.MaxStock, p.AvgDailySales)

	r.products[id] = p
	return p, nil
}

// Count reports the catalog size.
func (r *InMemoryCatalogRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
