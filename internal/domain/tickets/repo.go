package tickets

import (
	"eventum/internal/domain"
)

// Repository defines the interface for ticket storage.
type Repository interface {
	domain.EntityRepository[*Ticket]
}
