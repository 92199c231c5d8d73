package entity_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"eventum/internal/domain/invoices"
	"eventum/internal/infrastructure/storage/postgres"
)

const invoicesTable = "invoices"

// InvoiceRepo implements invoices.Repository.
type InvoiceRepo struct {
	*BaseEntityRepo[*invoices.Invoice]
}

// NewInvoiceRepo creates a new invoice repository.
func NewInvoiceRepo(txManager *postgres.TxManager) *InvoiceRepo {
	return &InvoiceRepo{
		BaseEntityRepo: NewBaseEntityRepo(
			txManager,
			invoicesTable,
			postgres.ExtractDBColumns[invoices.Invoice](),
			func() *invoices.Invoice { return &invoices.Invoice{} },
		),
	}
}

// MarkOverdue flips unpaid invoices past their due date to Overdue.
func (r *InvoiceRepo) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	q := r.Builder().
		Update(invoicesTable).
		Set("status", invoices.StatusOverdue).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"status": invoices.StatusUnpaid, "deletion_mark": false}).
		Where(squirrel.Lt{"due_at": asOf})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build mark overdue: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("mark overdue: %w", err)
	}

	return result.RowsAffected(), nil
}
