// Package domaintest provides in-memory fakes for domain service tests.
package domaintest

import (
	"context"
	"reflect"
	"sync"

	"eventum/internal/core/apperror"
	"eventum/internal/core/entity"
	"eventum/internal/core/id"
	"eventum/internal/domain"
)

// Entity is any domain record with an embedded entity.Base.
type Entity interface {
	entity.Validatable
	GetBase() *entity.Base
}

// MemRepo is an in-memory EntityRepository. It mimics the PostgreSQL
// repo's observable behavior: optimistic locking on update, not-found
// errors keyed by the entity name, and value isolation. Entities are
// copied on the way in and out, so mutating something a test still holds
// never changes stored state, just like against real rows.
type MemRepo[T Entity] struct {
	mu         sync.Mutex
	entityName string
	items      map[id.ID]T
	order      []id.ID
}

// NewMemRepo creates an empty in-memory repository.
func NewMemRepo[T Entity](entityName string) *MemRepo[T] {
	return &MemRepo[T]{
		entityName: entityName,
		items:      make(map[id.ID]T),
	}
}

// clone makes an independent copy of a pointer-to-struct entity.
func clone[T Entity](e T) T {
	v := reflect.ValueOf(e).Elem()
	c := reflect.New(v.Type())
	c.Elem().Set(v)
	return c.Interface().(T)
}

func (r *MemRepo[T]) Create(ctx context.Context, e T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	eid := e.GetBase().ID
	if _, exists := r.items[eid]; exists {
		return apperror.NewDuplicate(r.entityName, "id", eid.String())
	}
	r.items[eid] = clone(e)
	r.order = append(r.order, eid)
	return nil
}

func (r *MemRepo[T]) GetByID(ctx context.Context, eid id.ID) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[eid]
	if !ok {
		var zero T
		return zero, apperror.NewNotFound(r.entityName, eid.String())
	}
	return clone(e), nil
}

// Update enforces the same optimistic-lock contract as the SQL repo: the
// stored version must equal the version the entity was loaded with, and
// the repo increments it. The caller's copy keeps its loaded version,
// exactly as after the SQL UPDATE.
func (r *MemRepo[T]) Update(ctx context.Context, e T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	base := e.GetBase()
	stored, ok := r.items[base.ID]
	if !ok {
		return apperror.NewNotFound(r.entityName, base.ID.String())
	}
	if stored.GetBase().Version != base.Version {
		return apperror.NewConcurrentModification(r.entityName, base.ID.String())
	}
	next := clone(e)
	next.GetBase().Version = base.Version + 1
	r.items[base.ID] = next
	return nil
}

func (r *MemRepo[T]) Delete(ctx context.Context, eid id.ID) error {
	return r.SetDeletionMark(ctx, eid, true)
}

func (r *MemRepo[T]) SetDeletionMark(ctx context.Context, eid id.ID, marked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[eid]
	if !ok {
		return apperror.NewNotFound(r.entityName, eid.String())
	}
	e.GetBase().DeletionMark = marked
	e.GetBase().Version++
	return nil
}

func (r *MemRepo[T]) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[T], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result domain.ListResult[T]
	for _, eid := range r.order {
		e := r.items[eid]
		if !filter.IncludeDeleted && e.GetBase().DeletionMark {
			continue
		}
		result.Items = append(result.Items, clone(e))
	}
	result.TotalCount = int64(len(result.Items))
	return result, nil
}

func (r *MemRepo[T]) Exists(ctx context.Context, eid id.ID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[eid]
	return ok, nil
}

func (r *MemRepo[T]) snapshot() any {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make(map[id.ID]T, len(r.items))
	for eid, e := range r.items {
		items[eid] = clone(e)
	}
	return memSnapshot[T]{items: items, order: append([]id.ID(nil), r.order...)}
}

func (r *MemRepo[T]) restore(s any) {
	snap := s.(memSnapshot[T])

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = snap.items
	r.order = snap.order
}

type memSnapshot[T Entity] struct {
	items map[id.ID]T
	order []id.ID
}

// TxRepo is a repository whose state the test TxManager can snapshot and
// roll back. MemRepo implements it; embedding MemRepo promotes it.
type TxRepo interface {
	snapshot() any
	restore(s any)
}

// TxManager runs the function directly. When Repos are given, a returned
// error restores their state to the snapshot taken at entry, modeling a
// rolled-back transaction. The zero value is a plain pass-through.
type TxManager struct {
	Repos []TxRepo
}

func (m TxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	snaps := make([]any, len(m.Repos))
	for i, r := range m.Repos {
		snaps[i] = r.snapshot()
	}
	if err := fn(ctx); err != nil {
		for i, r := range m.Repos {
			r.restore(snaps[i])
		}
		return err
	}
	return nil
}
