package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"eventum/internal/core/apperror"
	"eventum/internal/core/id"
	"eventum/internal/domain/invoices"
)

// CreateInvoiceRequest is the DTO for creating an invoice.
// The invoice number is assigned server-side.
type CreateInvoiceRequest struct {
	Customer       string          `json:"customer" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	DueAt          time.Time       `json:"dueAt" binding:"required"`
	OrganizationID string          `json:"organizationId"`
}

func (r CreateInvoiceRequest) ToEntity() (*invoices.Invoice, error) {
	inv := invoices.New(r.Customer, r.Amount, r.DueAt)
	if r.OrganizationID != "" {
		orgID, err := id.Parse(r.OrganizationID)
		if err != nil {
			return nil, apperror.NewValidation("invalid organizationId format")
		}
		inv.OrganizationID = orgID
	}
	return inv, nil
}

// UpdateInvoiceRequest is the DTO for updating an invoice.
type UpdateInvoiceRequest struct {
	Version  int              `json:"version" binding:"required,min=1"`
	Customer *string          `json:"customer"`
	Amount   *decimal.Decimal `json:"amount"`
	Status   *string          `json:"status"`
	DueAt    *time.Time       `json:"dueAt"`
}

func (r UpdateInvoiceRequest) ApplyTo(inv *invoices.Invoice) {
	inv.Version = r.Version
	if r.Customer != nil {
		inv.Customer = *r.Customer
	}
	if r.Amount != nil {
		inv.Amount = *r.Amount
	}
	if r.Status != nil {
		inv.Status = invoices.Status(*r.Status)
	}
	if r.DueAt != nil {
		inv.DueAt = *r.DueAt
	}
}

// InvoiceResponse is the DTO for returning invoice data.
type InvoiceResponse struct {
	BaseResponse
	Number         string          `json:"number"`
	Customer       string          `json:"customer"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
	IssuedAt       time.Time       `json:"issuedAt"`
	DueAt          time.Time       `json:"dueAt"`
	OrganizationID string          `json:"organizationId,omitempty"`
}

func FromInvoice(inv *invoices.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		BaseResponse: FromBase(inv.Base),
		Number:       inv.Number,
		Customer:     inv.Customer,
		Amount:       inv.Amount,
		Status:       string(inv.Status),
		IssuedAt:     inv.IssuedAt,
		DueAt:        inv.DueAt,
	}
	if !id.IsNil(inv.OrganizationID) {
		resp.OrganizationID = inv.OrganizationID.String()
	}
	return resp
}
