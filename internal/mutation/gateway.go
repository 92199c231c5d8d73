// Package mutation represents add/edit/delete as asynchronous operations
// with observable pending state, decoupled from the concrete transport.
//
// A Gateway belongs to one logical form instance. Its pending flag acts as
// a single-slot mutex, not a queue: a second submission while one is in
// flight is rejected without touching the store.
package mutation

import (
	"context"
	"sync/atomic"
	"time"

	"eventum/internal/core/apperror"
)

// Kind identifies the submission type.
type Kind int

const (
	Add Kind = iota
	Edit
	Delete
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Edit:
		return "edit"
	case Delete:
		return "delete"
	}
	return "unknown"
}

// ReasonPending is the failure reason reported when a submission is
// rejected because another one is still in flight.
const ReasonPending = "a submission is already in progress"

// DefaultTimeout bounds a single submission.
const DefaultTimeout = 10 * time.Second

// Result is the typed outcome of a submission. Failures are values, never
// panics: the reason string is surfaced to the caller verbatim.
type Result[T any] struct {
	OK        bool
	Record    T      // committed record on Add/Edit success
	RemovedID string // removed id on Delete success
	Reason    string // human-readable failure reason
}

// Store is the persistence collaborator the gateway delegates to.
type Store[T any] interface {
	Create(ctx context.Context, draft T) (T, error)
	Update(ctx context.Context, draft T) (T, error)
	Remove(ctx context.Context, id string) error
}

// Gateway serializes submissions for one form instance.
type Gateway[T any] struct {
	store   Store[T]
	timeout time.Duration
	pending atomic.Bool
}

// GatewayConfig configures a mutation gateway.
type GatewayConfig[T any] struct {
	Store Store[T]

	// Timeout bounds each submission; defaults to DefaultTimeout.
	Timeout time.Duration
}

// NewGateway creates a gateway with no submission in flight.
func NewGateway[T any](cfg GatewayConfig[T]) *Gateway[T] {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway[T]{store: cfg.Store, timeout: timeout}
}

// IsPending reports whether a submission is currently in flight.
func (g *Gateway[T]) IsPending() bool {
	return g.pending.Load()
}

// Submit runs an Add or Edit against the store. On success the committed
// record is returned for the caller to merge into its collection (append
// for Add, replace-by-id for Edit). On failure the draft must be kept by
// the caller for correction. The gateway never retries.
func (g *Gateway[T]) Submit(ctx context.Context, kind Kind, draft T) Result[T] {
	if !g.pending.CompareAndSwap(false, true) {
		return Result[T]{OK: false, Reason: ReasonPending}
	}
	defer g.pending.Store(false)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var (
		record T
		err    error
	)
	switch kind {
	case Add:
		record, err = g.store.Create(ctx, draft)
	case Edit:
		record, err = g.store.Update(ctx, draft)
	default:
		return Result[T]{OK: false, Reason: "unsupported submission kind"}
	}
	if err != nil {
		return Result[T]{OK: false, Reason: failureReason(err)}
	}
	return Result[T]{OK: true, Record: record}
}

// SubmitDelete is the degenerate one-argument variant: success carries
// only the removed id, for filtering it out of the collection.
func (g *Gateway[T]) SubmitDelete(ctx context.Context, id string) Result[T] {
	if !g.pending.CompareAndSwap(false, true) {
		return Result[T]{OK: false, Reason: ReasonPending}
	}
	defer g.pending.Store(false)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := g.store.Remove(ctx, id); err != nil {
		return Result[T]{OK: false, Reason: failureReason(err)}
	}
	return Result[T]{OK: true, RemovedID: id}
}

// failureReason extracts the human-readable reason from an error.
func failureReason(err error) string {
	if appErr, ok := apperror.AsAppError(err); ok {
		return appErr.Message
	}
	return err.Error()
}
