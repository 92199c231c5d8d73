package events

import (
	"eventum/internal/domain"
)

// Repository defines the interface for event storage.
type Repository interface {
	domain.EntityRepository[*Event]
}
