package entity_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"eventum/internal/domain/bookings"
	"eventum/internal/infrastructure/storage/postgres"
)

const bookingsTable = "venue_bookings"

// BookingRepo implements bookings.Repository.
type BookingRepo struct {
	*BaseEntityRepo[*bookings.VenueBooking]
}

// NewBookingRepo creates a new venue booking repository.
func NewBookingRepo(txManager *postgres.TxManager) *BookingRepo {
	return &BookingRepo{
		BaseEntityRepo: NewBaseEntityRepo(
			txManager,
			bookingsTable,
			postgres.ExtractDBColumns[bookings.VenueBooking](),
			func() *bookings.VenueBooking { return &bookings.VenueBooking{} },
		),
	}
}

// ExistsConfirmedForDate reports whether the venue already has a confirmed
// booking on the given date.
func (r *BookingRepo) ExistsConfirmedForDate(ctx context.Context, venueName string, date time.Time) (bool, error) {
	q := r.Builder().
		Select("1").
		From(bookingsTable).
		Where(squirrel.Eq{
			"venue_name":    venueName,
			"event_date":    date,
			"status":        bookings.StatusConfirmed,
			"deletion_mark": false,
		}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists int
	err = r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&exists)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists confirmed for date: %w", err)
	}

	return true, nil
}
