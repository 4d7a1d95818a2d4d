package stock

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

// UpdateResult is the outcome of applying one stock update. A resolved
// conflict is not an error: Success stays true and Resolution carries the
// record.
type UpdateResult struct {
	Success    bool                       `json:"success"`
	Conflict   bool                       `json:"conflict"`
	Resolution *models.ConflictResolution `json:"resolution,omitempty"`
}

// Processor applies vendor stock updates under optimistic concurrency.
// Version mismatches are buffered per product and escalated to the
// resolver synchronously, so no update is ever silently dropped.
type Processor struct {
	catalog  Catalog
	events   EventLog
	resolver *Resolver

	mu      sync.Mutex
	pending map[string][]models.StockUpdate
	rng     *rand.Rand
}

// NewProcessor creates a Processor. The rand source only feeds the
// synthetic latency reported on manual-conflict events.
func NewProcessor(catalog Catalog, events EventLog, resolver *Resolver, rng *rand.Rand) *Processor {
	return &Processor{
		catalog:  catalog,
		events:   events,
		resolver: resolver,
		pending:  make(map[string][]models.StockUpdate),
		rng:      rng,
	}
}

// ApplyUpdate applies one update. If the update's version matches the
// product's current version it is applied directly. Otherwise the update
// joins the product's pending buffer (FIFO by arrival) and the whole
// buffer is resolved immediately; one herd event summarizing the
// single-product conflict is appended.
//
// An unknown product id returns the catalog's not-found error with a zero
// result, never a panic.
func (p *Processor) ApplyUpdate(update models.StockUpdate) (UpdateResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	product, err := p.catalog.GetByID(update.ProductID)
	if err != nil {
		return UpdateResult{}, err
	}

	if update.Version == product.Version {
		if _, err := p.catalog.ApplyStock(update.ProductID, update.NewStock); err != nil {
			return UpdateResult{}, err
		}
		return UpdateResult{Success: true}, nil
	}

	p.pending[update.ProductID] = append(p.pending[update.ProductID], update)
	buffered := p.pending[update.ProductID]

	resolution, err := p.resolver.Resolve(update.ProductID, buffered, p.resolver.PickStrategy())
	if err != nil {
		return UpdateResult{}, err
	}
	delete(p.pending, update.ProductID)

	p.events.Append(models.ThunderingHerdEvent{
		ID:                uuid.NewString(),
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
		VendorCount:       len(buffered),
		ProductsAffected:  1,
		ConflictsDetected: 1,
		Resolved:          true,
		Strategy:          resolution.Strategy,
		DurationMs:        int64(p.rng.Intn(200) + 10),
	})

	return UpdateResult{Success: true, Conflict: true, Resolution: &resolution}, nil
}

// PendingCount reports the buffered update count for a product.
func (p *Processor) PendingCount(productID string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending[productID])
}
