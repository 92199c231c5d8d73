package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventum/internal/core/apperror"
	"eventum/internal/core/id"
	"eventum/internal/domain/domaintest"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(domaintest.NewMemRepo[*Event]("event"), domaintest.TxManager{})
}

func TestPublish(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	event := New("Launch Party", "Riverside Hall", time.Now().AddDate(0, 1, 0), 100)
	require.NoError(t, svc.Create(ctx, event))

	published, err := svc.Publish(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPublished, published.Status)
}

func TestPublish_CancelledRejected(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	event := New("Launch Party", "Riverside Hall", time.Now().AddDate(0, 1, 0), 100)
	require.NoError(t, svc.Create(ctx, event))
	_, err := svc.Cancel(ctx, event.ID)
	require.NoError(t, err)

	_, err = svc.Publish(ctx, event.ID)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeBusinessRule, appErr.Code)
}

func TestPublish_UnknownEvent(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Publish(context.Background(), id.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdate_StaleVersionRejected(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	event := New("Launch Party", "Riverside Hall", time.Now().AddDate(0, 1, 0), 100)
	require.NoError(t, svc.Create(ctx, event))

	// First writer wins.
	first, err := svc.GetByID(ctx, event.ID)
	require.NoError(t, err)
	staleVersion := first.Version

	first.Title = "Launch Party (updated)"
	require.NoError(t, svc.Update(ctx, first))

	// Second writer carries the version it loaded before the first write.
	stale := *first
	stale.Version = staleVersion
	stale.Title = "Conflicting edit"

	err = svc.Update(ctx, &stale)
	require.Error(t, err)
	assert.True(t, apperror.IsConcurrentModification(err))
}

func TestEvent_Validate(t *testing.T) {
	ctx := context.Background()
	starts := time.Now().AddDate(0, 1, 0)

	assert.NoError(t, New("Launch Party", "Hall", starts, 10).Validate(ctx))
	assert.Error(t, New("", "Hall", starts, 10).Validate(ctx))
	assert.Error(t, New("Launch Party", "Hall", starts, 0).Validate(ctx))
	assert.Error(t, New("Launch Party", "Hall", time.Time{}, 10).Validate(ctx))

	over := New("Launch Party", "Hall", starts, 10)
	over.Registered = 11
	assert.Error(t, over.Validate(ctx))
}

func TestEvent_Capacity(t *testing.T) {
	event := New("Launch Party", "Hall", time.Now(), 2)
	assert.Equal(t, 2, event.Remaining())
	assert.False(t, event.IsFull())

	event.Registered = 2
	assert.Equal(t, 0, event.Remaining())
	assert.True(t, event.IsFull())
}
