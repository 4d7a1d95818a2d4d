package repo

import (
	"sync"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

// InMemoryHerdEventRepository keeps herd events in memory, newest first.
type InMemoryHerdEventRepository struct {
	mu     sync.RWMutex
	events []models.ThunderingHerdEvent
}

// NewInMemoryHerdEventRepository creates an empty event log.
func NewInMemoryHerdEventRepository() *InMemoryHerdEventRepository {
	return &InMemoryHerdEventRepository{}
}

// Append prepends an event so the most recent episode is always first.
func (r *InMemoryHerdEventRepository) Append(event models.ThunderingHerdEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append([]models.ThunderingHerdEvent{event}, r.events...)
}

// GetAll returns a snapshot of the log, newest first.
func (r *InMemoryHerdEventRepository) GetAll() ([]models.ThunderingHerdEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ThunderingHerdEvent, len(r.events))
	copy(out, r.events)
	return out, nil
}

// Clear empties the log. Intended for tests.
func (r *InMemoryHerdEventRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
