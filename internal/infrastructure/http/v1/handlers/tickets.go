package handlers

import (
	"github.com/gin-gonic/gin"

	"eventum/internal/core/apperror"
	"eventum/internal/core/id"
	"eventum/internal/domain/tickets"
	"eventum/internal/infrastructure/http/v1/dto"
)

// TicketHandler handles ticket endpoints.
type TicketHandler struct {
	*EntityHandler[*tickets.Ticket, dto.CreateTicketRequest, dto.UpdateTicketRequest]
	service *tickets.Service
}

// NewTicketHandler creates a new ticket handler.
func NewTicketHandler(base *BaseHandler, service *tickets.Service) *TicketHandler {
	return &TicketHandler{
		EntityHandler: NewEntityHandler(base, EntityHandlerConfig[*tickets.Ticket, dto.CreateTicketRequest, dto.UpdateTicketRequest]{
			Service:    service,
			Descriptor: tickets.Descriptor(),
			EntityName: "ticket",
			MapCreateDTO: func(req dto.CreateTicketRequest) (*tickets.Ticket, error) {
				return req.ToEntity()
			},
			MapUpdateDTO: func(req dto.UpdateTicketRequest, existing *tickets.Ticket) (*tickets.Ticket, error) {
				req.ApplyTo(existing)
				return existing, nil
			},
			MapToDTO: func(t *tickets.Ticket) any { return dto.FromTicket(t) },
		}),
		service: service,
	}
}

// CheckIn handles POST /tickets/:id/check-in.
func (h *TicketHandler) CheckIn(c *gin.Context) {
	ticketID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	t, err := h.service.CheckIn(c.Request.Context(), ticketID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromTicket(t))
}

// Void handles POST /tickets/:id/void.
func (h *TicketHandler) Void(c *gin.Context) {
	ticketID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	t, err := h.service.Void(c.Request.Context(), ticketID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromTicket(t))
}
