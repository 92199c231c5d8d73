package mutation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventum/internal/core/apperror"
)

type draft struct {
	ID   string
	Name string
}

// fakeStore counts calls and can block until released to simulate an
// in-flight submission.
type fakeStore struct {
	mu      sync.Mutex
	creates int
	updates int
	removes int
	err     error
	blockCh chan struct{}
}

func (s *fakeStore) Create(ctx context.Context, d draft) (draft, error) {
	s.mu.Lock()
	s.creates++
	s.mu.Unlock()
	if s.blockCh != nil {
		<-s.blockCh
	}
	if s.err != nil {
		return draft{}, s.err
	}
	d.ID = "committed"
	return d, nil
}

func (s *fakeStore) Update(ctx context.Context, d draft) (draft, error) {
	s.mu.Lock()
	s.updates++
	s.mu.Unlock()
	if s.err != nil {
		return draft{}, s.err
	}
	return d, nil
}

func (s *fakeStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	s.removes++
	s.mu.Unlock()
	return s.err
}

func (s *fakeStore) createCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creates
}

func TestGateway_SubmitAdd(t *testing.T) {
	store := &fakeStore{}
	g := NewGateway(GatewayConfig[draft]{Store: store})

	res := g.Submit(context.Background(), Add, draft{Name: "first"})

	require.True(t, res.OK)
	assert.Equal(t, "committed", res.Record.ID)
	assert.False(t, g.IsPending(), "pending flag must clear after completion")
}

func TestGateway_SecondSubmitRejectedWhilePending(t *testing.T) {
	store := &fakeStore{blockCh: make(chan struct{})}
	g := NewGateway(GatewayConfig[draft]{Store: store})

	firstDone := make(chan Result[draft])
	go func() {
		firstDone <- g.Submit(context.Background(), Add, draft{Name: "first"})
	}()

	// Wait until the first submission is inside the store.
	require.Eventually(t, func() bool { return g.IsPending() }, time.Second, time.Millisecond)

	second := g.Submit(context.Background(), Add, draft{Name: "second"})
	assert.False(t, second.OK)
	assert.Equal(t, ReasonPending, second.Reason)
	assert.Equal(t, 1, store.createCalls(), "rejected submission must not reach the store")

	close(store.blockCh)
	first := <-firstDone
	assert.True(t, first.OK)

	// The slot is free again.
	store.blockCh = nil
	third := g.Submit(context.Background(), Add, draft{Name: "third"})
	assert.True(t, third.OK)
}

func TestGateway_FailureIsValueNotPanic(t *testing.T) {
	store := &fakeStore{err: apperror.NewValidation("name is required")}
	g := NewGateway(GatewayConfig[draft]{Store: store})

	res := g.Submit(context.Background(), Add, draft{})

	assert.False(t, res.OK)
	assert.Equal(t, "name is required", res.Reason)
	assert.False(t, g.IsPending(), "a failed submission must release the slot")
}

func TestGateway_FailureReasonFromPlainError(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	g := NewGateway(GatewayConfig[draft]{Store: store})

	res := g.Submit(context.Background(), Edit, draft{ID: "x"})

	assert.False(t, res.OK)
	assert.Equal(t, "connection refused", res.Reason)
}

func TestGateway_SubmitDelete(t *testing.T) {
	store := &fakeStore{}
	g := NewGateway(GatewayConfig[draft]{Store: store})

	res := g.SubmitDelete(context.Background(), "abc")

	require.True(t, res.OK)
	assert.Equal(t, "abc", res.RemovedID)
	assert.Equal(t, 1, store.removes)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "add", Add.String())
	assert.Equal(t, "edit", Edit.String())
	assert.Equal(t, "delete", Delete.String())
}
