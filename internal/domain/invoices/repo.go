package invoices

import (
	"context"
	"time"

	"eventum/internal/domain"
)

// Repository defines the interface for invoice storage.
type Repository interface {
	domain.EntityRepository[*Invoice]

	// MarkOverdue flips unpaid invoices past their due date to Overdue and
	// returns the number of affected rows.
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}
