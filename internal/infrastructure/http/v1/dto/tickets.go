package dto

import (
	"github.com/shopspring/decimal"

	"eventum/internal/core/apperror"
	"eventum/internal/core/id"
	"eventum/internal/domain/tickets"
)

// CreateTicketRequest is the DTO for issuing a ticket. The ticket number
// is assigned server-side.
type CreateTicketRequest struct {
	EventID string          `json:"eventId" binding:"required"`
	Holder  string          `json:"holder" binding:"required"`
	Tier    string          `json:"tier"`
	Price   decimal.Decimal `json:"price"`
}

func (r CreateTicketRequest) ToEntity() (*tickets.Ticket, error) {
	eventID, err := id.Parse(r.EventID)
	if err != nil {
		return nil, apperror.NewValidation("invalid eventId format")
	}
	return tickets.New(eventID, r.Holder, r.Tier, r.Price), nil
}

// UpdateTicketRequest is the DTO for updating a ticket.
type UpdateTicketRequest struct {
	Version int              `json:"version" binding:"required,min=1"`
	Holder  *string          `json:"holder"`
	Tier    *string          `json:"tier"`
	Price   *decimal.Decimal `json:"price"`
}

func (r UpdateTicketRequest) ApplyTo(t *tickets.Ticket) {
	t.Version = r.Version
	if r.Holder != nil {
		t.Holder = *r.Holder
	}
	if r.Tier != nil {
		t.Tier = *r.Tier
	}
	if r.Price != nil {
		t.Price = *r.Price
	}
}

// TicketResponse is the DTO for returning ticket data.
type TicketResponse struct {
	BaseResponse
	Number  string          `json:"number"`
	EventID string          `json:"eventId"`
	Holder  string          `json:"holder"`
	Tier    string          `json:"tier,omitempty"`
	Price   decimal.Decimal `json:"price"`
	Status  string          `json:"status"`
}

func FromTicket(t *tickets.Ticket) TicketResponse {
	return TicketResponse{
		BaseResponse: FromBase(t.Base),
		Number:       t.Number,
		EventID:      t.EventID.String(),
		Holder:       t.Holder,
		Tier:         t.Tier,
		Price:        t.Price,
		Status:       string(t.Status),
	}
}
