package organizations

import (
	"eventum/internal/domain"
)

// Repository defines the interface for organization storage.
type Repository interface {
	domain.EntityRepository[*Organization]
}
