package stock

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

// activeStrategies are the strategies automatic selection draws from.
// StrategyReject is declared in the schema but never selected here.
var activeStrategies = []models.ResolutionStrategy{
	models.StrategyLastWriteWins,
	models.StrategyHighestStock,
	models.StrategyAverage,
}

// Resolver collapses a set of conflicting stock updates for one product
// into a single winning value and applies it to the catalog.
type Resolver struct {
	catalog Catalog

	mu  sync.Mutex
	rng *rand.Rand
}

// NewResolver creates a Resolver. The rand source is injected so tests
// can fix the strategy sequence.
func NewResolver(catalog Catalog, rng *rand.Rand) *Resolver {
	return &Resolver{catalog: catalog, rng: rng}
}

// PickStrategy draws one of the three active strategies at random.
func (r *Resolver) PickStrategy() models.ResolutionStrategy {
	r.mu.Lock()
	defer r.mu.Unlock()
	return activeStrategies[r.rng.Intn(len(activeStrategies))]
}

// Resolve applies strategy over updates (in submission order), writes the
// winning stock level to the catalog like any other mutation, and returns
// an immutable resolution record. Appending the herd event is the
// caller's responsibility.
func (r *Resolver) Resolve(productID string, updates []models.StockUpdate, strategy models.ResolutionStrategy) (models.ConflictResolution, error) {
	if len(updates) == 0 {
		return models.ConflictResolution{}, fmt.Errorf("resolve %s: no pending updates", productID)
	}

	resolved, err := resolveStock(strategy, updates, func() (int, error) {
		p, err := r.catalog.GetByID(productID)
		if err != nil {
			return 0, err
		}
		return p.CurrentStock, nil
	})
	if err != nil {
		return models.ConflictResolution{}, fmt.Errorf("resolve %s: %w", productID, err)
	}

	if _, err := r.catalog.ApplyStock(productID, resolved); err != nil {
		return models.ConflictResolution{}, fmt.Errorf("resolve %s: %w", productID, err)
	}

	return models.ConflictResolution{
		ProductID:     productID,
		Updates:       updates,
		ResolvedStock: resolved,
		Strategy:      strategy,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// resolveStock picks the winning stock value. currentStock is fetched
// lazily because only the reject strategy needs it.
func resolveStock(strategy models.ResolutionStrategy, updates []models.StockUpdate, currentStock func() (int, error)) (int, error) {
	switch strategy {
	case models.StrategyLastWriteWins:
		return updates[len(updates)-1].NewStock, nil
	case models.StrategyHighestStock:
		highest := updates[0].NewStock
		for _, u := range updates[1:] {
			if u.NewStock > highest {
				highest = u.NewStock
			}
		}
		return highest, nil
	case models.StrategyAverage:
		sum := 0
		for _, u := range updates {
			sum += u.NewStock
		}
		return int(math.Round(float64(sum) / float64(len(updates)))), nil
	case models.StrategyReject:
		return currentStock()
	default:
		return 0, fmt.Errorf("unknown strategy %q", strategy)
	}
}
