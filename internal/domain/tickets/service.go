package tickets

import (
	"context"
	"time"

	"eventum/internal/core/apperror"
	"eventum/internal/core/id"
	"eventum/internal/core/tx"
	"eventum/internal/domain"
	"eventum/pkg/numerator"
)

// Service provides business logic for tickets.
type Service struct {
	*domain.EntityService[*Ticket]
	repo Repository
}

// NewService creates a new ticket service. Ticket numbers use the cached
// strategy: gaps after a restart are fine for admission documents.
func NewService(repo Repository, txManager tx.Manager, num *numerator.Service) *Service {
	base := domain.NewEntityService(domain.EntityServiceConfig[*Ticket]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "ticket",
	})
	s := &Service{EntityService: base, repo: repo}

	if num != nil {
		cfg := numerator.DefaultConfig("TKT")
		opts := &numerator.Options{Strategy: numerator.StrategyCached, RangeSize: 100}
		base.Hooks().On(domain.BeforeCreate, func(ctx context.Context, t *Ticket) error {
			if t.Number != "" {
				return nil
			}
			n, err := num.GetNextNumber(ctx, cfg, opts, time.Now())
			if err != nil {
				return err
			}
			t.Number = n
			return nil
		})
	}

	return s
}

// CheckIn marks a ticket as used at the door. Checking in twice is a
// no-op; a void ticket is rejected.
func (s *Service) CheckIn(ctx context.Context, ticketID id.ID) (*Ticket, error) {
	t, err := s.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	switch t.Status {
	case StatusCheckedIn:
		return t, nil
	case StatusVoid:
		return nil, apperror.NewBusinessRule(apperror.CodeBusinessRule, "ticket is void").
			WithDetail("number", t.Number)
	}
	t.Status = StatusCheckedIn
	if err := s.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Void invalidates a ticket.
func (s *Service) Void(ctx context.Context, ticketID id.ID) (*Ticket, error) {
	t, err := s.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t.Status == StatusVoid {
		return t, nil
	}
	t.Status = StatusVoid
	if err := s.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
