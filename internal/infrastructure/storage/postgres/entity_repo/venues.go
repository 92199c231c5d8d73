package entity_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"eventum/internal/domain/venues"
	"eventum/internal/infrastructure/storage/postgres"
)

const venuesTable = "venues"

// VenueRepo implements venues.Repository.
type VenueRepo struct {
	*BaseEntityRepo[*venues.Venue]
}

// NewVenueRepo creates a new venue repository.
func NewVenueRepo(txManager *postgres.TxManager) *VenueRepo {
	return &VenueRepo{
		BaseEntityRepo: NewBaseEntityRepo(
			txManager,
			venuesTable,
			postgres.ExtractDBColumns[venues.Venue](),
			func() *venues.Venue { return &venues.Venue{} },
		),
	}
}

// GetByName retrieves a venue by its exact name.
func (r *VenueRepo) GetByName(ctx context.Context, name string) (*venues.Venue, error) {
	q := r.Builder().
		Select(r.selectCols...).
		From(venuesTable).
		Where(squirrel.Eq{"name": name, "deletion_mark": false}).
		Limit(1)

	return r.FindOne(ctx, q)
}
