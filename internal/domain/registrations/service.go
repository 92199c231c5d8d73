package registrations

import (
	"context"

	"eventum/internal/core/apperror"
	"eventum/internal/core/id"
	"eventum/internal/core/tx"
	"eventum/internal/domain"
	"eventum/internal/domain/events"
)

// Service provides business logic for registrations.
type Service struct {
	*domain.EntityService[*Registration]
	repo      Repository
	events    events.Repository
	txManager tx.Manager
}

// NewService creates a new registration service.
func NewService(repo Repository, eventRepo events.Repository, txManager tx.Manager) *Service {
	base := domain.NewEntityService(domain.EntityServiceConfig[*Registration]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "registration",
	})
	return &Service{
		EntityService: base,
		repo:          repo,
		events:        eventRepo,
		txManager:     txManager,
	}
}

// Register creates a registration for a published event. A full event
// produces a waitlisted registration instead of a confirmed one.
func (s *Service) Register(ctx context.Context, eventID id.ID, attendee, email string) (*Registration, error) {
	reg := New(eventID, attendee, email)
	if err := reg.Validate(ctx); err != nil {
		return nil, err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		event, err := s.events.GetByID(ctx, eventID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound("event", eventID.String())
			}
			return err
		}
		if event.Status != events.StatusPublished {
			return apperror.NewBusinessRule(apperror.CodeBusinessRule, "event is not open for registration").
				WithDetail("status", event.Status)
		}

		if event.IsFull() {
			reg.Status = StatusWaitlisted
			return s.repo.Create(ctx, reg)
		}

		reg.Status = StatusConfirmed
		if err := s.repo.Create(ctx, reg); err != nil {
			return err
		}

		// The seat count rides on the event's optimistic lock: a concurrent
		// registration against the same version fails and rolls back both
		// the counter and the registration row.
		event.Registered++
		return s.events.Update(ctx, event)
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// Confirm promotes a pending or waitlisted registration, taking a seat.
// Confirming an already confirmed registration is a no-op.
func (s *Service) Confirm(ctx context.Context, regID id.ID) (*Registration, error) {
	reg, err := s.GetByID(ctx, regID)
	if err != nil {
		return nil, err
	}
	if reg.Status == StatusConfirmed {
		return reg, nil
	}
	if reg.Status == StatusCancelled {
		return nil, apperror.NewBusinessRule(apperror.CodeBusinessRule, "registration was cancelled").
			WithDetail("id", regID.String())
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		event, err := s.events.GetByID(ctx, reg.EventID)
		if err != nil {
			return err
		}
		if event.IsFull() {
			return apperror.NewCapacityExceeded(event.ID.String(), event.Capacity, event.Registered)
		}

		reg.Status = StatusConfirmed
		if err := s.repo.Update(ctx, reg); err != nil {
			return err
		}

		event.Registered++
		return s.events.Update(ctx, event)
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// Cancel cancels a registration, releasing the seat when it was confirmed.
func (s *Service) Cancel(ctx context.Context, regID id.ID) (*Registration, error) {
	reg, err := s.GetByID(ctx, regID)
	if err != nil {
		return nil, err
	}
	if reg.Status == StatusCancelled {
		return reg, nil
	}

	wasConfirmed := reg.Status == StatusConfirmed

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		reg.Status = StatusCancelled
		if err := s.repo.Update(ctx, reg); err != nil {
			return err
		}
		if !wasConfirmed {
			return nil
		}

		event, err := s.events.GetByID(ctx, reg.EventID)
		if err != nil {
			return err
		}
		if event.Registered > 0 {
			event.Registered--
		}
		return s.events.Update(ctx, event)
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}
