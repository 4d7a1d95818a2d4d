package repo

import (
	"errors"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

// ErrProductNotFound is returned when a product is not found in the catalog.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository defines the interface for product catalog operations.
// Reads return snapshots in seed order. ApplyStock is the only mutation:
// it sets the stock level, bumps the version by one, refreshes lastUpdated
// and re-derives the status fields atomically. No caller may bypass it.
type CatalogRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	ApplyStock(id string, newStock int) (models.Product, error)
}
