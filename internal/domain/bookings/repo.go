package bookings

import (
	"context"
	"time"

	"eventum/internal/domain"
)

// Repository defines the interface for venue booking storage.
type Repository interface {
	domain.EntityRepository[*VenueBooking]

	// ExistsConfirmedForDate reports whether the venue already has a
	// confirmed booking on the given calendar date.
	ExistsConfirmedForDate(ctx context.Context, venueName string, date time.Time) (bool, error)
}
