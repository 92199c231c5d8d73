package handlers

import (
	"github.com/gin-gonic/gin"

	"eventum/internal/core/apperror"
	"eventum/internal/core/id"
	"eventum/internal/domain/invoices"
	"eventum/internal/infrastructure/http/v1/dto"
)

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	*EntityHandler[*invoices.Invoice, dto.CreateInvoiceRequest, dto.UpdateInvoiceRequest]
	service *invoices.Service
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(base *BaseHandler, service *invoices.Service) *InvoiceHandler {
	return &InvoiceHandler{
		EntityHandler: NewEntityHandler(base, EntityHandlerConfig[*invoices.Invoice, dto.CreateInvoiceRequest, dto.UpdateInvoiceRequest]{
			Service:    service,
			Descriptor: invoices.Descriptor(),
			EntityName: "invoice",
			MapCreateDTO: func(req dto.CreateInvoiceRequest) (*invoices.Invoice, error) {
				return req.ToEntity()
			},
			MapUpdateDTO: func(req dto.UpdateInvoiceRequest, existing *invoices.Invoice) (*invoices.Invoice, error) {
				req.ApplyTo(existing)
				return existing, nil
			},
			MapToDTO: func(inv *invoices.Invoice) any { return dto.FromInvoice(inv) },
		}),
		service: service,
	}
}

// MarkPaid handles POST /invoices/:id/mark-paid.
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	invoiceID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.MarkPaid(c.Request.Context(), invoiceID); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "invoice marked paid")
}
