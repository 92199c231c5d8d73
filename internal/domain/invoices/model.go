// Package invoices provides the Invoice entity.
package invoices

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"eventum/internal/core/apperror"
	"eventum/internal/core/entity"
	"eventum/internal/core/id"
	"eventum/internal/core/types"
	"eventum/internal/listing"
)

// Status is the invoice payment state.
type Status string

const (
	StatusPaid    Status = "Paid"
	StatusUnpaid  Status = "Unpaid"
	StatusOverdue Status = "Overdue"
)

// Invoice represents a bill issued to a customer organization.
type Invoice struct {
	entity.Base

	Number         string      `db:"number" json:"number"`
	Customer       string      `db:"customer" json:"customer"`
	Amount         types.Money `db:"amount" json:"amount"`
	Status         Status      `db:"status" json:"status"`
	IssuedAt       time.Time   `db:"issued_at" json:"issuedAt"`
	DueAt          time.Time   `db:"due_at" json:"dueAt"`
	OrganizationID id.ID       `db:"organization_id" json:"organizationId,omitempty"`
}

// New creates an unpaid Invoice. The number is assigned by the numbering
// hook at create time.
func New(customer string, amount types.Money, dueAt time.Time) *Invoice {
	return &Invoice{
		Base:     entity.NewBase(),
		Customer: customer,
		Amount:   amount,
		Status:   StatusUnpaid,
		IssuedAt: time.Now().UTC(),
		DueAt:    dueAt,
	}
}

// IsPastDue reports whether an unpaid invoice is past its due date.
func (i *Invoice) IsPastDue(asOf time.Time) bool {
	return i.Status == StatusUnpaid && i.DueAt.Before(asOf)
}

// Validate implements entity.Validatable.
func (i *Invoice) Validate(ctx context.Context) error {
	if i.Customer == "" {
		return apperror.NewValidation("customer is required").WithDetail("field", "customer")
	}
	if !i.Amount.IsPositive() {
		return apperror.NewValidation("amount must be a positive number").WithDetail("field", "amount")
	}
	switch i.Status {
	case StatusPaid, StatusUnpaid, StatusOverdue:
	default:
		return apperror.NewValidation("unknown invoice status").WithDetail("field", "status")
	}
	return nil
}

// Descriptor configures the list pipeline for invoices.
// Free-text search covers the customer and the invoice number.
func Descriptor() listing.Descriptor[*Invoice] {
	return listing.Descriptor[*Invoice]{
		SearchFields: []func(*Invoice) string{
			func(i *Invoice) string { return i.Customer },
			func(i *Invoice) string { return i.Number },
		},
		FilterFields: map[string]func(*Invoice) string{
			"status": func(i *Invoice) string { return string(i.Status) },
		},
		Stats: []listing.StatSpec[*Invoice]{
			listing.CountStat[*Invoice]("total", nil),
			listing.CountStat("paid", func(i *Invoice) bool { return i.Status == StatusPaid }),
			listing.CountStat("unpaid", func(i *Invoice) bool { return i.Status == StatusUnpaid }),
			listing.CountStat("overdue", func(i *Invoice) bool { return i.Status == StatusOverdue }),
			listing.SumStat("totalAmount", func(i *Invoice) decimal.Decimal { return i.Amount }, nil),
		},
	}
}
