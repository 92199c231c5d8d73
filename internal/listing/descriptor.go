// Package listing implements the generic entity list pipeline: free-text
// search, categorical filters, pagination and summary stats over an
// in-memory collection. It is instantiated once per entity type with a
// Descriptor and identical control flow everywhere.
//
// All pipeline functions are pure: they never mutate the input collection
// and are safe to call on every request.
package listing

// FilterAll is the sentinel filter value meaning "no constraint on this key".
const FilterAll = "all"

// FilterSpec maps a filter key (e.g. "status") to the selected value.
type FilterSpec map[string]string

// Clone returns an independent copy of the spec.
func (f FilterSpec) Clone() FilterSpec {
	if f == nil {
		return nil
	}
	out := make(FilterSpec, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Equal reports whether two specs select the same values.
// A missing key and the FilterAll sentinel are equivalent.
func (f FilterSpec) Equal(other FilterSpec) bool {
	keys := make(map[string]struct{}, len(f)+len(other))
	for k := range f {
		keys[k] = struct{}{}
	}
	for k := range other {
		keys[k] = struct{}{}
	}
	for k := range keys {
		a, ok := f[k]
		if !ok {
			a = FilterAll
		}
		b, ok := other[k]
		if !ok {
			b = FilterAll
		}
		if a != b {
			return false
		}
	}
	return true
}

// Descriptor configures the list pipeline for one entity type.
// Descriptors are built at package init of each domain package, so an
// unconfigured entity type cannot reach the pipeline at runtime.
type Descriptor[T any] struct {
	// SearchFields is the ordered set of accessors whose values are matched
	// against the free-text query.
	SearchFields []func(T) string

	// FilterFields maps filter keys to accessors used for exact,
	// case-sensitive equality filtering.
	FilterFields map[string]func(T) string

	// Stats defines the summary statistics computed over the unfiltered
	// collection.
	Stats []StatSpec[T]
}

// SearchFieldValues returns the searchable field values of a record, in
// descriptor order.
func (d Descriptor[T]) SearchFieldValues(rec T) []string {
	values := make([]string, 0, len(d.SearchFields))
	for _, get := range d.SearchFields {
		values = append(values, get(rec))
	}
	return values
}
