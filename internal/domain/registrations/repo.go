package registrations

import (
	"context"

	"eventum/internal/core/id"
	"eventum/internal/domain"
)

// Repository defines the interface for registration storage.
type Repository interface {
	domain.EntityRepository[*Registration]

	// CountByEvent counts registrations for an event in the given status.
	CountByEvent(ctx context.Context, eventID id.ID, status Status) (int, error)
}
