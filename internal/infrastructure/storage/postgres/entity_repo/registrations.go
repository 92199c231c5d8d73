package entity_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"eventum/internal/core/id"
	"eventum/internal/domain/registrations"
	"eventum/internal/infrastructure/storage/postgres"
)

const registrationsTable = "registrations"

// RegistrationRepo implements registrations.Repository.
type RegistrationRepo struct {
	*BaseEntityRepo[*registrations.Registration]
}

// NewRegistrationRepo creates a new registration repository.
func NewRegistrationRepo(txManager *postgres.TxManager) *RegistrationRepo {
	return &RegistrationRepo{
		BaseEntityRepo: NewBaseEntityRepo(
			txManager,
			registrationsTable,
			postgres.ExtractDBColumns[registrations.Registration](),
			func() *registrations.Registration { return &registrations.Registration{} },
		),
	}
}

// CountByEvent counts registrations for an event in the given status.
func (r *RegistrationRepo) CountByEvent(ctx context.Context, eventID id.ID, status registrations.Status) (int, error) {
	q := r.Builder().
		Select("COUNT(*)").
		From(registrationsTable).
		Where(squirrel.Eq{
			"event_id":      eventID,
			"status":        status,
			"deletion_mark": false,
		})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int
	if err := r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count by event: %w", err)
	}

	return count, nil
}
