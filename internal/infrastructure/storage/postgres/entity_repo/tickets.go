package entity_repo

import (
	"eventum/internal/domain/tickets"
	"eventum/internal/infrastructure/storage/postgres"
)

const ticketsTable = "tickets"

// TicketRepo implements tickets.Repository.
type TicketRepo struct {
	*BaseEntityRepo[*tickets.Ticket]
}

// NewTicketRepo creates a new ticket repository.
func NewTicketRepo(txManager *postgres.TxManager) *TicketRepo {
	return &TicketRepo{
		BaseEntityRepo: NewBaseEntityRepo(
			txManager,
			ticketsTable,
			postgres.ExtractDBColumns[tickets.Ticket](),
			func() *tickets.Ticket { return &tickets.Ticket{} },
		),
	}
}
