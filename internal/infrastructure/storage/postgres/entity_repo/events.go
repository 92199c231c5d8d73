package entity_repo

import (
	"eventum/internal/domain/events"
	"eventum/internal/infrastructure/storage/postgres"
)

const eventsTable = "events"

// EventRepo implements events.Repository.
type EventRepo struct {
	*BaseEntityRepo[*events.Event]
}

// NewEventRepo creates a new event repository.
func NewEventRepo(txManager *postgres.TxManager) *EventRepo {
	return &EventRepo{
		BaseEntityRepo: NewBaseEntityRepo(
			txManager,
			eventsTable,
			postgres.ExtractDBColumns[events.Event](),
			func() *events.Event { return &events.Event{} },
		),
	}
}
