package events

import (
	"context"

	"eventum/internal/core/apperror"
	"eventum/internal/core/id"
	"eventum/internal/core/tx"
	"eventum/internal/domain"
)

// Service provides business logic for events.
type Service struct {
	*domain.EntityService[*Event]
	repo Repository
}

// NewService creates a new event service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewEntityService(domain.EntityServiceConfig[*Event]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "event",
	})
	return &Service{EntityService: base, repo: repo}
}

// Publish moves a draft event to published.
func (s *Service) Publish(ctx context.Context, eventID id.ID) (*Event, error) {
	event, err := s.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status == StatusCancelled || event.Status == StatusCompleted {
		return nil, apperror.NewBusinessRule(apperror.CodeBusinessRule, "event is no longer editable").
			WithDetail("status", event.Status)
	}
	event.Status = StatusPublished
	if err := s.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Cancel cancels an event.
func (s *Service) Cancel(ctx context.Context, eventID id.ID) (*Event, error) {
	event, err := s.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	event.Status = StatusCancelled
	if err := s.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}
