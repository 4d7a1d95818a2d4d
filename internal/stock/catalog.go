package stock

import "github.com/rogerio-castellano/inventory-dashboard/internal/models"

// Catalog is the slice of the product store the stock machinery needs.
// ApplyStock is the single mutation entry point: implementations must set
// the new stock level, bump the version by exactly one, refresh
// lastUpdated and re-derive the status fields in one atomic step.
type Catalog interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	ApplyStock(id string, newStock int) (models.Product, error)
}

// EventLog receives thundering-herd event summaries, newest first.
type EventLog interface {
	Append(event models.ThunderingHerdEvent)
}
