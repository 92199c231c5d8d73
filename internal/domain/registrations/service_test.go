package registrations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventum/internal/core/apperror"
	"eventum/internal/core/id"
	"eventum/internal/domain"
	"eventum/internal/domain/domaintest"
	"eventum/internal/domain/events"
)

type fakeRegRepo struct {
	*domaintest.MemRepo[*Registration]
}

func (r *fakeRegRepo) CountByEvent(ctx context.Context, eventID id.ID, status Status) (int, error) {
	result, err := r.List(ctx, domain.ListFilter{IncludeDeleted: true})
	if err != nil {
		return 0, err
	}
	count := 0
	for _, reg := range result.Items {
		if reg.EventID == eventID && reg.Status == status {
			count++
		}
	}
	return count, nil
}

func newFixture(t *testing.T, capacity int, status events.Status) (*Service, *events.Event) {
	t.Helper()

	eventRepo := domaintest.NewMemRepo[*events.Event]("event")
	event := events.New("Launch Party", "Riverside Hall", time.Now().AddDate(0, 1, 0), capacity)
	event.Status = status
	require.NoError(t, eventRepo.Create(context.Background(), event))

	regRepo := &fakeRegRepo{MemRepo: domaintest.NewMemRepo[*Registration]("registration")}
	svc := NewService(regRepo, eventRepo, domaintest.TxManager{})
	return svc, event
}

func TestRegister_ConfirmsAndTakesSeat(t *testing.T) {
	svc, event := newFixture(t, 2, events.StatusPublished)
	ctx := context.Background()

	reg, err := svc.Register(ctx, event.ID, "Alex Morgan", "alex@example.com")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, reg.Status)

	updated, err := svc.events.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Registered)
}

func TestRegister_FullEventWaitlists(t *testing.T) {
	svc, event := newFixture(t, 1, events.StatusPublished)
	ctx := context.Background()

	first, err := svc.Register(ctx, event.ID, "Alex Morgan", "alex@example.com")
	require.NoError(t, err)
	require.Equal(t, StatusConfirmed, first.Status)

	second, err := svc.Register(ctx, event.ID, "Priya Shah", "priya@example.com")
	require.NoError(t, err)
	assert.Equal(t, StatusWaitlisted, second.Status)

	// The waitlisted registration must not take a seat.
	updated, err := svc.events.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Registered)
}

func TestRegister_UnpublishedEventRejected(t *testing.T) {
	for _, status := range []events.Status{events.StatusDraft, events.StatusCancelled, events.StatusCompleted} {
		t.Run(string(status), func(t *testing.T) {
			svc, event := newFixture(t, 10, status)

			_, err := svc.Register(context.Background(), event.ID, "Alex Morgan", "alex@example.com")
			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeBusinessRule, appErr.Code)
		})
	}
}

func TestRegister_UnknownEvent(t *testing.T) {
	svc, _ := newFixture(t, 10, events.StatusPublished)

	_, err := svc.Register(context.Background(), id.New(), "Alex Morgan", "alex@example.com")
	assert.True(t, apperror.IsNotFound(err))
}

func TestRegister_InvalidInput(t *testing.T) {
	svc, event := newFixture(t, 10, events.StatusPublished)
	ctx := context.Background()

	_, err := svc.Register(ctx, event.ID, "", "alex@example.com")
	assert.True(t, apperror.IsValidation(err), "missing attendee must fail validation")

	_, err = svc.Register(ctx, event.ID, "Alex Morgan", "not-an-address")
	assert.True(t, apperror.IsValidation(err), "malformed email must fail validation")
}

func TestConfirm_PromotesWaitlisted(t *testing.T) {
	svc, event := newFixture(t, 1, events.StatusPublished)
	ctx := context.Background()

	confirmed, err := svc.Register(ctx, event.ID, "Alex Morgan", "alex@example.com")
	require.NoError(t, err)
	waitlisted, err := svc.Register(ctx, event.ID, "Priya Shah", "priya@example.com")
	require.NoError(t, err)

	// No seat free yet.
	_, err = svc.Confirm(ctx, waitlisted.ID)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeCapacityExceeded, appErr.Code)

	// Cancelling the confirmed one frees the seat.
	_, err = svc.Cancel(ctx, confirmed.ID)
	require.NoError(t, err)

	promoted, err := svc.Confirm(ctx, waitlisted.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, promoted.Status)

	updated, err := svc.events.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Registered)
}

func TestConfirm_Idempotent(t *testing.T) {
	svc, event := newFixture(t, 5, events.StatusPublished)
	ctx := context.Background()

	reg, err := svc.Register(ctx, event.ID, "Alex Morgan", "alex@example.com")
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, reg.ID)
	require.NoError(t, err)

	// Second confirm is a no-op, not a second seat.
	updated, err := svc.events.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Registered)
}

func TestConfirm_CancelledRejected(t *testing.T) {
	svc, event := newFixture(t, 5, events.StatusPublished)
	ctx := context.Background()

	reg, err := svc.Register(ctx, event.ID, "Alex Morgan", "alex@example.com")
	require.NoError(t, err)
	_, err = svc.Cancel(ctx, reg.ID)
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, reg.ID)
	require.Error(t, err)
}

func TestCancel_ReleasesSeatOnlyWhenConfirmed(t *testing.T) {
	svc, event := newFixture(t, 1, events.StatusPublished)
	ctx := context.Background()

	confirmed, err := svc.Register(ctx, event.ID, "Alex Morgan", "alex@example.com")
	require.NoError(t, err)
	waitlisted, err := svc.Register(ctx, event.ID, "Priya Shah", "priya@example.com")
	require.NoError(t, err)

	// Cancelling a waitlisted registration releases nothing.
	_, err = svc.Cancel(ctx, waitlisted.ID)
	require.NoError(t, err)
	updated, err := svc.events.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Registered)

	_, err = svc.Cancel(ctx, confirmed.ID)
	require.NoError(t, err)
	updated, err = svc.events.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Registered)
}
