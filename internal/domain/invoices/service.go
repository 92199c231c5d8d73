package invoices

import (
	"context"
	"time"

	"eventum/internal/core/apperror"
	"eventum/internal/core/id"
	"eventum/internal/core/tx"
	"eventum/internal/domain"
	"eventum/pkg/logger"
	"eventum/pkg/numerator"
)

// Service provides business logic for invoices.
type Service struct {
	*domain.EntityService[*Invoice]
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new invoice service. When a numerator is provided,
// invoice numbers are assigned on create with the strict strategy so the
// sequence has no gaps.
func NewService(repo Repository, txManager tx.Manager, num *numerator.Service) *Service {
	base := domain.NewEntityService(domain.EntityServiceConfig[*Invoice]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "invoice",
	})
	s := &Service{EntityService: base, repo: repo, txManager: txManager}

	if num != nil {
		cfg := numerator.DefaultConfig("INV")
		base.Hooks().On(domain.BeforeCreate, func(ctx context.Context, inv *Invoice) error {
			if inv.Number != "" {
				return nil
			}
			n, err := num.GetNextNumber(ctx, cfg, numerator.DefaultOptions(), inv.IssuedAt)
			if err != nil {
				return err
			}
			inv.Number = n
			return nil
		})
	}

	return s
}

// MarkPaid transitions an invoice to Paid.
func (s *Service) MarkPaid(ctx context.Context, invoiceID id.ID) error {
	inv, err := s.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if inv.Status == StatusPaid {
		return nil
	}
	inv.Status = StatusPaid
	return s.Update(ctx, inv)
}

// SweepOverdue marks unpaid invoices past their due date as Overdue.
// Runs from the background worker.
func (s *Service) SweepOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	var affected int64
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		n, err := s.repo.MarkOverdue(ctx, asOf)
		if err != nil {
			return err
		}
		affected = n
		return nil
	})
	if err != nil {
		return 0, apperror.NewInternal(err).WithDetail("op", "sweep overdue")
	}
	if affected > 0 {
		logger.Info(ctx, "marked invoices overdue", "count", affected)
	}
	return affected, nil
}
