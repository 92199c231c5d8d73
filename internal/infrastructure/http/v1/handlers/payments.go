package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventum/internal/core/apperror"
	"eventum/internal/core/id"
	"eventum/internal/core/types"
	"eventum/internal/domain/payments"
	"eventum/internal/infrastructure/http/v1/dto"
	"eventum/internal/mutation"
)

// paymentDraft carries a payment submission through the mutation gateway.
// Card input lives only on the draft; the committed payment holds the
// masked last four digits.
type paymentDraft struct {
	Payer     string
	Method    payments.Method
	Amount    types.Money
	InvoiceID id.ID
	Card      payments.CardDetails

	Committed *payments.Payment
	Err       error
}

// paymentStore adapts the payment service to the gateway's store.
type paymentStore struct {
	svc *payments.Service
}

func (s *paymentStore) Create(ctx context.Context, d *paymentDraft) (*paymentDraft, error) {
	var err error
	if d.Method == payments.MethodCard {
		d.Committed, err = s.svc.RecordCard(ctx, d.Payer, d.Amount, d.InvoiceID, d.Card)
	} else {
		d.Committed, err = s.svc.Record(ctx, d.Payer, d.Method, d.Amount, d.InvoiceID)
	}
	d.Err = err
	return d, err
}

func (s *paymentStore) Update(ctx context.Context, d *paymentDraft) (*paymentDraft, error) {
	return d, apperror.NewValidation("payments cannot be edited")
}

func (s *paymentStore) Remove(ctx context.Context, paymentID string) error {
	parsed, err := id.Parse(paymentID)
	if err != nil {
		return apperror.NewValidation("invalid id format")
	}
	return s.svc.Delete(ctx, parsed)
}

// PaymentHandler handles payment endpoints. Submissions go through a
// per-user mutation gateway: while a user's payment is in flight, their
// second submission is rejected with 409 instead of hitting the store
// twice. Other users' submissions are unaffected.
type PaymentHandler struct {
	*BaseHandler
	service  *payments.Service
	gateways *mutation.Pool[*paymentDraft]
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(base *BaseHandler, service *payments.Service) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler: base,
		service:     service,
		gateways: mutation.NewPool(mutation.GatewayConfig[*paymentDraft]{
			Store: &paymentStore{svc: service},
		}),
	}
}

// Record handles POST /payments.
func (h *PaymentHandler) Record(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	invoiceID, err := id.Parse(req.InvoiceID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid invoiceId format"))
		return
	}

	draft := &paymentDraft{
		Payer:     req.Payer,
		Method:    payments.Method(req.Method),
		Amount:    req.Amount,
		InvoiceID: invoiceID,
		Card:      payments.CardDetails{Number: req.CardNumber, Expiry: req.Expiry},
	}

	result := h.gateways.Get(submissionKey(c, h.BaseHandler)).Submit(c.Request.Context(), mutation.Add, draft)
	if !result.OK {
		if result.Reason == mutation.ReasonPending {
			h.Error(c, apperror.NewSubmissionPending())
			return
		}
		h.Error(c, draft.Err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromPayment(result.Record.Committed))
}

// Get handles GET /payments/:id.
func (h *PaymentHandler) Get(c *gin.Context) {
	paymentID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), paymentID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPayment(p))
}

// ListByInvoice handles GET /invoices/:id/payments.
func (h *PaymentHandler) ListByInvoice(c *gin.Context) {
	invoiceID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	items, err := h.service.ListByInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		h.Error(c, err)
		return
	}

	dtos := make([]dto.PaymentResponse, len(items))
	for i, p := range items {
		dtos[i] = dto.FromPayment(p)
	}

	h.OK(c, gin.H{"items": dtos})
}

// List handles GET /payments with the listing pipeline.
func (h *PaymentHandler) List(c *gin.Context) {
	listEntities(c, h.BaseHandler, h.service, payments.Descriptor(),
		func(p *payments.Payment) any { return dto.FromPayment(p) })
}
