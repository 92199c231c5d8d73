package listing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(pageSize int) *Controller[record] {
	ctrl := NewController(ControllerConfig[record]{
		Descriptor: testDescriptor(),
		PageSize:   pageSize,
	})
	ctrl.SetCollection(testRecords())
	return ctrl
}

func TestController_SearchResetsPage(t *testing.T) {
	ctrl := newTestController(2)
	ctrl.SetPage(2)

	ctrl.SetSearch("acme")
	assert.Equal(t, 1, ctrl.Page(), "changing the query must reset to page 1")

	ctrl.SetPage(2)
	ctrl.SetSearch("acme")
	assert.Equal(t, 2, ctrl.Page(), "re-applying the same query must keep the page")
}

func TestController_FiltersResetPageOnlyOnChange(t *testing.T) {
	ctrl := newTestController(2)
	ctrl.SetFilters(FilterSpec{"status": "unpaid"})
	ctrl.SetPage(2)

	// Equivalent spec: no reset.
	ctrl.SetFilters(FilterSpec{"status": "unpaid"})
	assert.Equal(t, 2, ctrl.Page())

	// Different spec: reset.
	ctrl.SetFilters(FilterSpec{"status": "paid"})
	assert.Equal(t, 1, ctrl.Page())
}

func TestController_AllSentinelEqualsMissingKey(t *testing.T) {
	ctrl := newTestController(2)
	ctrl.SetPage(2)

	// "all" is the same as no filter, so the page survives.
	ctrl.SetFilters(FilterSpec{"status": FilterAll})
	assert.Equal(t, 2, ctrl.Page())
}

func TestController_SetCollectionKeepsPage(t *testing.T) {
	ctrl := newTestController(2)
	ctrl.SetPage(2)

	ctrl.SetCollection(testRecords())
	assert.Equal(t, 2, ctrl.Page(), "a collection refresh is not a spec change")
}

func TestController_ViewCounts(t *testing.T) {
	ctrl := newTestController(2)
	ctrl.SetFilters(FilterSpec{"status": "unpaid"})

	view := ctrl.View()
	assert.Equal(t, 2, view.FilteredCount)
	assert.Equal(t, 4, view.TotalCount)
	assert.Equal(t, 1, view.TotalPages)
	assert.False(t, view.HasPrev)
	assert.False(t, view.HasNext)
	assert.Len(t, view.Items, 2)
}

func TestController_StatsOverUnfilteredCollection(t *testing.T) {
	ctrl := newTestController(2)
	ctrl.SetFilters(FilterSpec{"status": "paid"})

	view := ctrl.View()
	require.Contains(t, view.Stats, "total")
	assert.Equal(t, "4", view.Stats["total"].String(), "stats ignore the active filter")
	assert.Equal(t, "1", view.Stats["paid"].String())
	assert.Equal(t, "725", view.Stats["totalAmount"].String())
}

func TestController_OutOfRangePageRendersEmpty(t *testing.T) {
	ctrl := newTestController(2)
	ctrl.SetPage(9)

	view := ctrl.View()
	assert.Equal(t, 9, view.Page, "the page is not clamped")
	assert.Empty(t, view.Items)
	assert.Equal(t, 2, view.TotalPages)
	assert.False(t, view.HasNext)
}

func TestController_NextPrev(t *testing.T) {
	ctrl := newTestController(2)

	assert.True(t, ctrl.Next())
	assert.Equal(t, 2, ctrl.Page())
	assert.False(t, ctrl.Next(), "cannot advance past the last page")

	assert.True(t, ctrl.Prev())
	assert.Equal(t, 1, ctrl.Page())
	assert.False(t, ctrl.Prev(), "cannot go before page 1")
}

func TestController_Refresh(t *testing.T) {
	loaded := testRecords()
	ctrl := NewController(ControllerConfig[record]{
		Descriptor: testDescriptor(),
		Source: SourceFunc[record](func(ctx context.Context) ([]record, error) {
			return loaded, nil
		}),
	})

	require.NoError(t, ctrl.Refresh(context.Background()))
	assert.Equal(t, 4, ctrl.View().TotalCount)

	noSource := NewController(ControllerConfig[record]{Descriptor: testDescriptor()})
	assert.Error(t, noSource.Refresh(context.Background()))
}

func TestAggregate_EmptyCollection(t *testing.T) {
	stats := Aggregate(nil, testDescriptor().Stats)

	require.Contains(t, stats, "total")
	assert.True(t, stats["total"].IsZero())
	assert.True(t, stats["totalAmount"].IsZero())
}
