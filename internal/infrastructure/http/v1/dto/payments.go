package dto

import (
	"github.com/shopspring/decimal"

	"eventum/internal/domain/payments"
)

// RecordPaymentRequest is the DTO for recording a payment against an
// invoice. Card fields are only read when method is "card" and are never
// echoed back.
type RecordPaymentRequest struct {
	Payer      string          `json:"payer" binding:"required"`
	Method     string          `json:"method" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	InvoiceID  string          `json:"invoiceId" binding:"required"`
	CardNumber string          `json:"cardNumber"`
	Expiry     string          `json:"expiry"`
}

// PaymentResponse is the DTO for returning payment data.
type PaymentResponse struct {
	BaseResponse
	Payer     string          `json:"payer"`
	Method    string          `json:"method"`
	CardLast4 string          `json:"cardLast4,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	InvoiceID string          `json:"invoiceId"`
}

func FromPayment(p *payments.Payment) PaymentResponse {
	return PaymentResponse{
		BaseResponse: FromBase(p.Base),
		Payer:        p.Payer,
		Method:       string(p.Method),
		CardLast4:    p.CardLast4,
		Amount:       p.Amount,
		Status:       string(p.Status),
		InvoiceID:    p.InvoiceID.String(),
	}
}
