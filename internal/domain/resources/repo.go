package resources

import (
	"eventum/internal/domain"
)

// Repository defines the interface for resource storage.
type Repository interface {
	domain.EntityRepository[*Resource]
}
