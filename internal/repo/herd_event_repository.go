package repo

import "github.com/rogerio-castellano/inventory-dashboard/internal/models"

// HerdEventRepository is the ordered log of thundering-herd events.
// GetAll returns events newest first; appended events are immutable.
type HerdEventRepository interface {
	Append(event models.ThunderingHerdEvent)
	GetAll() ([]models.ThunderingHerdEvent, error)
}
