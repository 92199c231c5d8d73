package payments

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventum/internal/core/apperror"
	"eventum/internal/core/id"
	"eventum/internal/domain"
	"eventum/internal/domain/domaintest"
	"eventum/internal/domain/invoices"
)

type fakePaymentRepo struct {
	*domaintest.MemRepo[*Payment]
}

func (r *fakePaymentRepo) ListByInvoice(ctx context.Context, invoiceID id.ID) ([]*Payment, error) {
	result, err := r.List(ctx, domain.ListFilter{IncludeDeleted: true})
	if err != nil {
		return nil, err
	}
	var out []*Payment
	for _, p := range result.Items {
		if p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeInvoiceRepo struct {
	*domaintest.MemRepo[*invoices.Invoice]
}

func (r *fakeInvoiceRepo) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	result, err := r.List(ctx, domain.ListFilter{})
	if err != nil {
		return 0, err
	}
	var n int64
	for _, inv := range result.Items {
		if inv.IsPastDue(asOf) {
			inv.Status = invoices.StatusOverdue
			if err := r.Update(ctx, inv); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}

func newFixture(t *testing.T) (*Service, *invoices.Invoice) {
	t.Helper()

	invRepo := &fakeInvoiceRepo{MemRepo: domaintest.NewMemRepo[*invoices.Invoice]("invoice")}
	invSvc := invoices.NewService(invRepo, domaintest.TxManager{}, nil)

	inv := invoices.New("Acme Corp", decimal.NewFromInt(500), time.Now().AddDate(0, 0, 30))
	inv.Number = "INV-2026-000001"
	require.NoError(t, invSvc.Create(context.Background(), inv))

	payRepo := &fakePaymentRepo{MemRepo: domaintest.NewMemRepo[*Payment]("payment")}
	txm := domaintest.TxManager{Repos: []domaintest.TxRepo{payRepo.MemRepo, invRepo.MemRepo}}
	return NewService(payRepo, txm, invSvc), inv
}

func validCard() CardDetails {
	expiry := time.Now().AddDate(1, 0, 0).Format("01/06")
	return CardDetails{Number: "4111 1111 1111 1111", Expiry: expiry}
}

func TestRecordCard_Succeeds(t *testing.T) {
	svc, inv := newFixture(t)
	ctx := context.Background()

	p, err := svc.RecordCard(ctx, "Acme Corp", decimal.NewFromInt(500), inv.ID, validCard())
	require.NoError(t, err)

	assert.Equal(t, StatusSucceeded, p.Status)
	assert.Equal(t, MethodCard, p.Method)
	assert.Equal(t, "1111", p.CardLast4, "only the last four digits survive")

	// The invoice flips to paid.
	paid, err := svc.invoices.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, invoices.StatusPaid, paid.Status)
}

func TestRecordCard_InvalidNumber(t *testing.T) {
	svc, inv := newFixture(t)

	card := validCard()
	card.Number = "4111111111"

	_, err := svc.RecordCard(context.Background(), "Acme Corp", decimal.NewFromInt(500), inv.ID, card)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestRecordCard_ExpiredCard(t *testing.T) {
	svc, inv := newFixture(t)

	card := validCard()
	card.Expiry = "01/20"

	_, err := svc.RecordCard(context.Background(), "Acme Corp", decimal.NewFromInt(500), inv.ID, card)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestRecordCard_PaidInvoiceRejected(t *testing.T) {
	svc, inv := newFixture(t)
	ctx := context.Background()

	_, err := svc.RecordCard(ctx, "Acme Corp", decimal.NewFromInt(500), inv.ID, validCard())
	require.NoError(t, err)

	_, err = svc.RecordCard(ctx, "Acme Corp", decimal.NewFromInt(500), inv.ID, validCard())
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvoiceClosed, appErr.Code)
}

func TestRecord_TransferMarksInvoicePaid(t *testing.T) {
	svc, inv := newFixture(t)
	ctx := context.Background()

	p, err := svc.Record(ctx, "Acme Corp", MethodTransfer, decimal.NewFromInt(500), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusSucceeded, p.Status)
	assert.Empty(t, p.CardLast4)

	paid, err := svc.invoices.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, invoices.StatusPaid, paid.Status)
}

// conflictingInvoiceRepo rejects every update, as a concurrent writer
// bumping the invoice version would.
type conflictingInvoiceRepo struct {
	*fakeInvoiceRepo
}

func (r *conflictingInvoiceRepo) Update(ctx context.Context, inv *invoices.Invoice) error {
	return apperror.NewConcurrentModification("invoice", inv.ID.String())
}

func TestRecordCard_MarkPaidFailureLeavesNoPayment(t *testing.T) {
	ctx := context.Background()

	invRepo := &conflictingInvoiceRepo{
		fakeInvoiceRepo: &fakeInvoiceRepo{MemRepo: domaintest.NewMemRepo[*invoices.Invoice]("invoice")},
	}
	invSvc := invoices.NewService(invRepo, domaintest.TxManager{}, nil)

	inv := invoices.New("Acme Corp", decimal.NewFromInt(500), time.Now().AddDate(0, 0, 30))
	require.NoError(t, invSvc.Create(ctx, inv))

	payRepo := &fakePaymentRepo{MemRepo: domaintest.NewMemRepo[*Payment]("payment")}
	txm := domaintest.TxManager{Repos: []domaintest.TxRepo{payRepo.MemRepo, invRepo.MemRepo}}
	svc := NewService(payRepo, txm, invSvc)

	_, err := svc.RecordCard(ctx, "Acme Corp", decimal.NewFromInt(500), inv.ID, validCard())
	require.Error(t, err)
	assert.True(t, apperror.IsConcurrentModification(err))

	// The whole submission rolls back: no succeeded payment may survive
	// against a still-unpaid invoice.
	listed, err := svc.ListByInvoice(ctx, inv.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	got, err := invSvc.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, invoices.StatusUnpaid, got.Status)
}

func TestRecord_CardMethodRequiresCardDetails(t *testing.T) {
	svc, inv := newFixture(t)

	_, err := svc.Record(context.Background(), "Acme Corp", MethodCard, decimal.NewFromInt(500), inv.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestListByInvoice(t *testing.T) {
	svc, inv := newFixture(t)
	ctx := context.Background()

	_, err := svc.Record(ctx, "Acme Corp", MethodCash, decimal.NewFromInt(200), inv.ID)
	require.NoError(t, err)

	listed, err := svc.ListByInvoice(ctx, inv.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	other, err := svc.ListByInvoice(ctx, id.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}
