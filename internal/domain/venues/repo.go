package venues

import (
	"context"

	"eventum/internal/domain"
)

// Repository defines the interface for venue storage.
type Repository interface {
	domain.EntityRepository[*Venue]

	// GetByName retrieves a venue by its unique name.
	GetByName(ctx context.Context, name string) (*Venue, error)
}
