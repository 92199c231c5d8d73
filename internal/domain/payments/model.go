// Package payments provides the Payment entity: money received against an
// invoice. Card numbers are never stored, only the last four digits.
package payments

import (
	"context"

	"github.com/shopspring/decimal"

	"eventum/internal/core/apperror"
	"eventum/internal/core/entity"
	"eventum/internal/core/id"
	"eventum/internal/core/types"
	"eventum/internal/listing"
)

// Method is the payment method.
type Method string

const (
	MethodCard     Method = "card"
	MethodTransfer Method = "transfer"
	MethodCash     Method = "cash"
)

// Status is the payment processing state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Payment represents a payment recorded against an invoice.
type Payment struct {
	entity.Base

	Payer     string      `db:"payer" json:"payer"`
	Method    Method      `db:"method" json:"method"`
	CardLast4 string      `db:"card_last4" json:"cardLast4,omitempty"`
	Amount    types.Money `db:"amount" json:"amount"`
	Status    Status      `db:"status" json:"status"`
	InvoiceID id.ID       `db:"invoice_id" json:"invoiceId"`
}

// New creates a pending Payment.
func New(payer string, method Method, amount types.Money, invoiceID id.ID) *Payment {
	return &Payment{
		Base:      entity.NewBase(),
		Payer:     payer,
		Method:    method,
		Amount:    amount,
		Status:    StatusPending,
		InvoiceID: invoiceID,
	}
}

// Validate implements entity.Validatable.
func (p *Payment) Validate(ctx context.Context) error {
	if p.Payer == "" {
		return apperror.NewValidation("payer is required").WithDetail("field", "payer")
	}
	switch p.Method {
	case MethodCard, MethodTransfer, MethodCash:
	default:
		return apperror.NewValidation("unknown payment method").WithDetail("field", "method")
	}
	if !p.Amount.IsPositive() {
		return apperror.NewValidation("amount must be a positive number").WithDetail("field", "amount")
	}
	if id.IsNil(p.InvoiceID) {
		return apperror.NewValidation("invoice is required").WithDetail("field", "invoiceId")
	}
	return nil
}

// Descriptor configures the list pipeline for payments.
func Descriptor() listing.Descriptor[*Payment] {
	return listing.Descriptor[*Payment]{
		SearchFields: []func(*Payment) string{
			func(p *Payment) string { return p.Payer },
		},
		FilterFields: map[string]func(*Payment) string{
			"method": func(p *Payment) string { return string(p.Method) },
			"status": func(p *Payment) string { return string(p.Status) },
		},
		Stats: []listing.StatSpec[*Payment]{
			listing.CountStat[*Payment]("total", nil),
			listing.CountStat("succeeded", func(p *Payment) bool { return p.Status == StatusSucceeded }),
			listing.SumStat("totalAmount",
				func(p *Payment) decimal.Decimal { return p.Amount },
				func(p *Payment) bool { return p.Status == StatusSucceeded }),
		},
	}
}
