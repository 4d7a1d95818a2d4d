package stock

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

// Simulator synthesizes a thundering herd: many vendors pushing
// concurrent stock updates across many products in one episode. It reuses
// the resolver's strategies, so the conflict machinery exercised here is
// the same one behind manual updates.
type Simulator struct {
	catalog  Catalog
	events   EventLog
	resolver *Resolver

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator creates a Simulator with an injectable rand source.
func NewSimulator(catalog Catalog, events EventLog, resolver *Resolver, rng *rand.Rand) *Simulator {
	return &Simulator{catalog: catalog, events: events, resolver: resolver, rng: rng}
}

// Run simulates one herd episode and appends its event to the log.
//
// Vendor count is drawn from [2,9] and sample size from [5,54]; sampled
// products are distinct. Every synthetic update carries the product's
// current version, so with at least two vendors each sampled product is
// guaranteed to conflict. One strategy is picked for the whole episode.
func (s *Simulator) Run() (models.ThunderingHerdEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()

	vendorCount := s.rng.Intn(8) + 2
	productsAffected := s.rng.Intn(50) + 5

	products, err := s.catalog.GetAll()
	if err != nil {
		return models.ThunderingHerdEvent{}, fmt.Errorf("simulate herd: %w", err)
	}
	s.rng.Shuffle(len(products), func(i, j int) {
		products[i], products[j] = products[j], products[i]
	})
	if productsAffected > len(products) {
		productsAffected = len(products)
	}
	targets := products[:productsAffected]

	strategy := activeStrategies[s.rng.Intn(len(activeStrategies))]

	conflictsDetected := 0
	for _, product := range targets {
		updates := make([]models.StockUpdate, 0, vendorCount)
		for v := 0; v < vendorCount; v++ {
			newStock := 0
			if product.MaxStock > 0 {
				newStock = s.rng.Intn(product.MaxStock)
			}
			updates = append(updates, models.StockUpdate{
				ProductID: product.ID,
				VendorID:  fmt.Sprintf("vendor_%d", v),
				NewStock:  newStock,
				Version:   product.Version,
			})
		}

		if _, err := s.resolver.Resolve(product.ID, updates, strategy); err != nil {
			return models.ThunderingHerdEvent{}, fmt.Errorf("simulate herd: %w", err)
		}
		conflictsDetected++
	}

	event := models.ThunderingHerdEvent{
		ID:                uuid.NewString(),
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
		VendorCount:       vendorCount,
		ProductsAffected:  productsAffected,
		ConflictsDetected: conflictsDetected,
		Resolved:          true,
		Strategy:          strategy,
		DurationMs:        time.Since(start).Milliseconds() + int64(s.rng.Intn(500)),
	}
	s.events.Append(event)
	return event, nil
}
