package mutation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_SameKeySharesSlot(t *testing.T) {
	pool := NewPool(GatewayConfig[draft]{Store: &fakeStore{}})

	assert.Same(t, pool.Get("user-a"), pool.Get("user-a"))
	assert.NotSame(t, pool.Get("user-a"), pool.Get("user-b"))
}

func TestPool_PendingDoesNotBlockOtherKeys(t *testing.T) {
	store := &fakeStore{blockCh: make(chan struct{})}
	pool := NewPool(GatewayConfig[draft]{Store: store})

	firstDone := make(chan Result[draft])
	go func() {
		firstDone <- pool.Get("user-a").Submit(context.Background(), Add, draft{Name: "first"})
	}()
	require.Eventually(t, func() bool { return pool.Get("user-a").IsPending() }, time.Second, time.Millisecond)

	// The same user is rejected while their submission is in flight.
	second := pool.Get("user-a").Submit(context.Background(), Add, draft{Name: "second"})
	assert.False(t, second.OK)
	assert.Equal(t, ReasonPending, second.Reason)

	// A different user's slot is free. The shared store blocks every
	// create, so release the first submission before the second enters.
	close(store.blockCh)
	assert.True(t, (<-firstDone).OK)

	store.blockCh = nil
	other := pool.Get("user-b").Submit(context.Background(), Add, draft{Name: "other"})
	assert.True(t, other.OK)
}

func TestPool_PruneKeepsPendingGateways(t *testing.T) {
	store := &fakeStore{blockCh: make(chan struct{})}
	pool := NewPool(GatewayConfig[draft]{Store: store})

	busy := pool.Get("busy")
	go busy.Submit(context.Background(), Add, draft{Name: "slow"})
	require.Eventually(t, func() bool { return busy.IsPending() }, time.Second, time.Millisecond)

	for i := 0; i < poolPruneAt; i++ {
		pool.Get(fmt.Sprintf("idle-%d", i))
	}

	assert.Same(t, busy, pool.Get("busy"), "a pending gateway must survive pruning")
	close(store.blockCh)
}
