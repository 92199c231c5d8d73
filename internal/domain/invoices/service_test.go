package invoices

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
	"eventum/internal/listing"
)

type fakeInvoiceRepo struct {
	*domaintest.MemRepo[*Invoice]
}

func (r *fakeInvoiceRepo) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	result, err := r.List(ctx, domain.ListFilter{})
	if err != nil {
		return 0, err
	}
	var n int64
	for _, inv := range result.Items {
		if inv.IsPastDue(asOf) {
			inv.Status = StatusOverdue
			if err := r.Update(ctx, inv); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}

func newTestService(t *testing.T) (*Service, *fakeInvoiceRepo) {
	t.Helper()
	repo := &fakeInvoiceRepo{MemRepo: domaintest.NewMemRepo[*Invoice]("invoice")}
	return NewService(repo, domaintest.TxManager{}, nil), repo
}

func TestMarkPaid(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	inv := New("Acme Corp", decimal.NewFromInt(100), time.Now().AddDate(0, 0, 30))
	require.NoError(t, svc.Create(ctx, inv))

	require.NoError(t, svc.MarkPaid(ctx, inv.ID))

	paid, err := svc.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, paid.Status)

	// Marking a paid invoice again is a no-op, not an error.
	require.NoError(t, svc.MarkPaid(ctx, inv.ID))
}

func TestMarkPaid_UnknownInvoice(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.MarkPaid(context.Background(), id.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestSweepOverdue(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	now := time.Now()

	pastDue := New("Acme Corp", decimal.NewFromInt(100), now.AddDate(0, 0, -5))
	current := New("Borealis Ltd", decimal.NewFromInt(200), now.AddDate(0, 0, 30))
	paid := New("Cobalt Partners", decimal.NewFromInt(300), now.AddDate(0, 0, -5))
	for _, inv := range []*Invoice{pastDue, current, paid} {
		require.NoError(t, svc.Create(ctx, inv))
	}
	require.NoError(t, svc.MarkPaid(ctx, paid.ID))

	count, err := svc.SweepOverdue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "only unpaid past-due invoices are swept")

	swept, err := svc.GetByID(ctx, pastDue.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusOverdue, swept.Status)

	untouched, err := svc.GetByID(ctx, current.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusUnpaid, untouched.Status)
}

func TestDescriptor_Stats(t *testing.T) {
	due := time.Now().AddDate(0, 0, 30)
	mk := func(customer string, amount int64, status Status) *Invoice {
		inv := New(customer, decimal.NewFromInt(amount), due)
		inv.Status = status
		return inv
	}

	collection := []*Invoice{
		mk("Acme Corp", 500, StatusPaid),
		mk("Borealis Ltd", 200, StatusUnpaid),
		mk("Cobalt Partners", 600, StatusPaid),
		mk("Dunmore Events", 400, StatusOverdue),
	}

	stats := listing.Aggregate(collection, Descriptor().Stats)

	assert.True(t, stats["total"].Equal(decimal.NewFromInt(4)))
	assert.True(t, stats["paid"].Equal(decimal.NewFromInt(2)))
	assert.True(t, stats["unpaid"].Equal(decimal.NewFromInt(1)))
	assert.True(t, stats["overdue"].Equal(decimal.NewFromInt(1)))
	assert.True(t, stats["totalAmount"].Equal(decimal.NewFromInt(1700)),
		"totalAmount sums every invoice regardless of status, got %s", stats["totalAmount"])
}

func TestInvoice_IsPastDue(t *testing.T) {
	now := time.Now()

	inv := New("Acme Corp", decimal.NewFromInt(100), now.AddDate(0, 0, -1))
	assert.True(t, inv.IsPastDue(now))

	inv.Status = StatusPaid
	assert.False(t, inv.IsPastDue(now), "a paid invoice is never past due")

	future := New("Acme Corp", decimal.NewFromInt(100), now.AddDate(0, 0, 1))
	assert.False(t, future.IsPastDue(now))
}

func TestInvoice_Validate(t *testing.T) {
	ctx := context.Background()
	due := time.Now().AddDate(0, 0, 30)

	valid := New("Acme Corp", decimal.NewFromInt(100), due)
	assert.NoError(t, valid.Validate(ctx))

	noCustomer := New("", decimal.NewFromInt(100), due)
	assert.True(t, apperror.IsValidation(noCustomer.Validate(ctx)))

	zeroAmount := New("Acme Corp", decimal.Zero, due)
	assert.True(t, apperror.IsValidation(zeroAmount.Validate(ctx)))

	badStatus := New("Acme Corp", decimal.NewFromInt(100), due)
	badStatus.Status = "Settled"
	assert.True(t, apperror.IsValidation(badStatus.Validate(ctx)))
}
