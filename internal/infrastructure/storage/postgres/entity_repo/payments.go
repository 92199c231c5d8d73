package entity_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"eventum/internal/core/id"
	"eventum/internal/domain/payments"
	"eventum/internal/infrastructure/storage/postgres"
)

const paymentsTable = "payments"

// PaymentRepo implements payments.Repository.
type PaymentRepo struct {
	*BaseEntityRepo[*payments.Payment]
}

// NewPaymentRepo creates a new payment repository.
func NewPaymentRepo(txManager *postgres.TxManager) *PaymentRepo {
	return &PaymentRepo{
		BaseEntityRepo: NewBaseEntityRepo(
			txManager,
			paymentsTable,
			postgres.ExtractDBColumns[payments.Payment](),
			func() *payments.Payment { return &payments.Payment{} },
		),
	}
}

// ListByInvoice returns all payments recorded against an invoice.
func (r *PaymentRepo) ListByInvoice(ctx context.Context, invoiceID id.ID) ([]*payments.Payment, error) {
	q := r.Builder().
		Select(r.selectCols...).
		From(paymentsTable).
		Where(squirrel.Eq{"invoice_id": invoiceID, "deletion_mark": false}).
		OrderBy("created_at ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*payments.Payment
	if err := pgxscan.Select(ctx, r.Querier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list by invoice: %w", err)
	}

	return items, nil
}
