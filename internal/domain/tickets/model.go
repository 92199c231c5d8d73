// Package tickets provides the Ticket entity: an admission document for
// an event, numbered per year.
package tickets

import (
	"context"

	"github.com/shopspring/decimal"

	"eventum/internal/core/apperror"
	"eventum/internal/core/entity"
	"eventum/internal/core/id"
	"eventum/internal/core/types"
	"eventum/internal/listing"
)

// Status is the ticket lifecycle state.
type Status string

const (
	StatusIssued    Status = "issued"
	StatusCheckedIn Status = "checked_in"
	StatusVoid      Status = "void"
)

// Ticket represents an issued admission ticket.
type Ticket struct {
	entity.Base

	Number  string      `db:"number" json:"number"`
	EventID id.ID       `db:"event_id" json:"eventId"`
	Holder  string      `db:"holder" json:"holder"`
	Tier    string      `db:"tier" json:"tier"`
	Price   types.Money `db:"price" json:"price"`
	Status  Status      `db:"status" json:"status"`
}

// New creates an issued Ticket. The number is assigned by the numbering
// hook at create time.
func New(eventID id.ID, holder, tier string, price types.Money) *Ticket {
	return &Ticket{
		Base:    entity.NewBase(),
		EventID: eventID,
		Holder:  holder,
		Tier:    tier,
		Price:   price,
		Status:  StatusIssued,
	}
}

// Validate implements entity.Validatable.
func (t *Ticket) Validate(ctx context.Context) error {
	if id.IsNil(t.EventID) {
		return apperror.NewValidation("event is required").WithDetail("field", "eventId")
	}
	if t.Holder == "" {
		return apperror.NewValidation("holder name is required").WithDetail("field", "holder")
	}
	if t.Price.IsNegative() {
		return apperror.NewValidation("price must not be negative").WithDetail("field", "price")
	}
	return nil
}

// Descriptor configures the list pipeline for tickets.
func Descriptor() listing.Descriptor[*Ticket] {
	return listing.Descriptor[*Ticket]{
		SearchFields: []func(*Ticket) string{
			func(t *Ticket) string { return t.Holder },
			func(t *Ticket) string { return t.Number },
		},
		FilterFields: map[string]func(*Ticket) string{
			"status": func(t *Ticket) string { return string(t.Status) },
			"tier":   func(t *Ticket) string { return t.Tier },
		},
		Stats: []listing.StatSpec[*Ticket]{
			listing.CountStat[*Ticket]("total", nil),
			listing.CountStat("checkedIn", func(t *Ticket) bool { return t.Status == StatusCheckedIn }),
			listing.SumStat("revenue",
				func(t *Ticket) decimal.Decimal { return t.Price },
				func(t *Ticket) bool { return t.Status != StatusVoid }),
		},
	}
}
