package payments

import (
	"context"

	"eventum/internal/core/id"
	"eventum/internal/domain"
)

// Repository defines the interface for payment storage.
type Repository interface {
	domain.EntityRepository[*Payment]

	// ListByInvoice returns all payments recorded against an invoice.
	ListByInvoice(ctx context.Context, invoiceID id.ID) ([]*Payment, error)
}
