package listing

import (
	"context"
	"fmt"
)

// Source supplies the full collection for a controller. It is the
// persistence collaborator boundary: tests inject a fake, production wires
// a repository-backed loader.
type Source[T any] interface {
	Load(ctx context.Context) ([]T, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc[T any] func(ctx context.Context) ([]T, error)

// Load implements Source.
func (f SourceFunc[T]) Load(ctx context.Context) ([]T, error) { return f(ctx) }

// Controller owns one entity list: the collection, the active search and
// filter specs, and the current page. It is single-owner state: each
// instance belongs to one view and is not safe for concurrent mutation.
type Controller[T any] struct {
	desc     Descriptor[T]
	source   Source[T]
	items    []T
	query    string
	filters  FilterSpec
	page     int
	pageSize int
}

// ControllerConfig configures a list controller.
type ControllerConfig[T any] struct {
	Descriptor Descriptor[T]
	Source     Source[T] // optional; SetCollection may be used instead
	PageSize   int       // defaults to DefaultPageSize
}

// NewController creates a list controller starting at page 1 with no
// active search or filters.
func NewController[T any](cfg ControllerConfig[T]) *Controller[T] {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Controller[T]{
		desc:     cfg.Descriptor,
		source:   cfg.Source,
		filters:  FilterSpec{},
		page:     1,
		pageSize: pageSize,
	}
}

// SetCollection replaces the backing collection. The page is kept: a
// collection change is not a spec change.
func (c *Controller[T]) SetCollection(items []T) {
	c.items = items
}

// Refresh reloads the collection from the source. Mutation success paths
// call this to fold committed changes back into the view.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	if c.source == nil {
		return fmt.Errorf("list controller has no source")
	}
	items, err := c.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("refresh collection: %w", err)
	}
	c.items = items
	return nil
}

// SetSearch updates the free-text query. Changing the active query resets
// the page to 1.
func (c *Controller[T]) SetSearch(query string) {
	if query == c.query {
		return
	}
	c.query = query
	c.page = 1
}

// SetFilter updates one filter key. Changing the active spec resets the
// page to 1.
func (c *Controller[T]) SetFilter(key, value string) {
	next := c.filters.Clone()
	if next == nil {
		next = FilterSpec{}
	}
	next[key] = value
	if c.filters.Equal(next) {
		return
	}
	c.filters = next
	c.page = 1
}

// SetFilters replaces the whole filter spec. Changing the active spec
// resets the page to 1.
func (c *Controller[T]) SetFilters(filters FilterSpec) {
	if c.filters.Equal(filters) {
		return
	}
	c.filters = filters.Clone()
	if c.filters == nil {
		c.filters = FilterSpec{}
	}
	c.page = 1
}

// SetPage jumps to an explicit page (deep link). Out-of-range pages are
// not clamped; the resulting view renders empty with navigation disabled.
func (c *Controller[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.page = page
}

// Page returns the current 1-indexed page.
func (c *Controller[T]) Page() int { return c.page }

// Next advances one page. Returns false (and does nothing) on the last page.
func (c *Controller[T]) Next() bool {
	filtered := Filter(c.items, c.query, c.filters, c.desc)
	if c.page >= TotalPages(len(filtered), c.pageSize) {
		return false
	}
	c.page++
	return true
}

// Prev goes back one page. Returns false (and does nothing) on page 1.
func (c *Controller[T]) Prev() bool {
	if c.page <= 1 {
		return false
	}
	c.page--
	return true
}

// View is the rendered state of a list controller.
type View[T any] struct {
	Items         []T
	Page          int
	PageSize      int
	TotalPages    int
	FilteredCount int
	TotalCount    int
	HasPrev       bool
	HasNext       bool
	Stats         Stats
}

// View recomputes the filtered, paginated view and the summary stats.
// Stats are aggregated over the unfiltered collection.
func (c *Controller[T]) View() View[T] {
	filtered := Filter(c.items, c.query, c.filters, c.desc)
	pageSlice, totalPages := Paginate(filtered, c.page, c.pageSize)

	return View[T]{
		Items:         pageSlice,
		Page:          c.page,
		PageSize:      c.pageSize,
		TotalPages:    totalPages,
		FilteredCount: len(filtered),
		TotalCount:    len(c.items),
		HasPrev:       c.page > 1,
		HasNext:       c.page < totalPages,
		Stats:         Aggregate(c.items, c.desc.Stats),
	}
}
