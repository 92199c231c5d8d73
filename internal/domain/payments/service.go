package payments

import (
	"context"
	"time"

	"eventum/internal/core/apperror"
	"eventum/internal/core/id"
	"eventum/internal/core/tx"
	"eventum/internal/core/types"
	"eventum/internal/domain"
	"eventum/internal/domain/invoices"
	"eventum/internal/form"
)

// CardDetails carries raw card input for a card payment. It is validated
// and masked before anything is persisted.
type CardDetails struct {
	Number string
	Expiry string
}

// Service provides business logic for payments.
type Service struct {
	*domain.EntityService[*Payment]
	repo      Repository
	invoices  *invoices.Service
	txManager tx.Manager
}

// NewService creates a new payment service.
func NewService(repo Repository, txManager tx.Manager, invSvc *invoices.Service) *Service {
	base := domain.NewEntityService(domain.EntityServiceConfig[*Payment]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "payment",
	})
	return &Service{EntityService: base, repo: repo, invoices: invSvc, txManager: txManager}
}

// RecordCard validates card input, records a succeeded card payment and
// marks the invoice paid. Only the last four digits of the card survive.
func (s *Service) RecordCard(ctx context.Context, payer string, amount types.Money, invoiceID id.ID, card CardDetails) (*Payment, error) {
	formatted, cardErr := form.FormatCardNumber(card.Number)
	if cardErr != "" {
		return nil, apperror.NewValidation(cardErr).WithDetail("field", "cardNumber")
	}
	if err := form.ValidateExpiry(card.Expiry, time.Now()); err != nil {
		return nil, apperror.NewValidation(err.Error()).WithDetail("field", "expiry")
	}

	p := New(payer, MethodCard, amount, invoiceID)
	p.CardLast4 = formatted[len(formatted)-4:]
	return s.commit(ctx, p)
}

// Record registers a non-card payment (transfer or cash) and marks the
// invoice paid.
func (s *Service) Record(ctx context.Context, payer string, method Method, amount types.Money, invoiceID id.ID) (*Payment, error) {
	if method == MethodCard {
		return nil, apperror.NewValidation("card payments require card details").WithDetail("field", "method")
	}

	p := New(payer, method, amount, invoiceID)
	return s.commit(ctx, p)
}

// commit persists the payment and marks its invoice paid in one
// transaction. A failure on either side leaves neither: a succeeded
// payment against a still-unpaid invoice must not be observable.
func (s *Service) commit(ctx context.Context, p *Payment) (*Payment, error) {
	p.Status = StatusSucceeded

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		inv, err := s.invoices.GetByID(ctx, p.InvoiceID)
		if err != nil {
			return err
		}
		if inv.Status == invoices.StatusPaid {
			return apperror.NewBusinessRule(apperror.CodeInvoiceClosed, "invoice is already paid").
				WithDetail("invoice", inv.Number)
		}
		if err := s.Create(ctx, p); err != nil {
			return err
		}
		return s.invoices.MarkPaid(ctx, p.InvoiceID)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListByInvoice returns all payments for an invoice.
func (s *Service) ListByInvoice(ctx context.Context, invoiceID id.ID) ([]*Payment, error) {
	return s.repo.ListByInvoice(ctx, invoiceID)
}
