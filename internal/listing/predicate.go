package listing

import (
	"strings"
)

// Matches reports whether a single record passes the search and filter specs.
//
// A record matches when:
//   - the query is empty, or any configured search field contains the query
//     case-insensitively; AND
//   - for every filter key whose value is not the "all" sentinel, the
//     record's value equals the selected value exactly (case-sensitive).
//
// Filters are conjunctive. A filter key the descriptor does not know makes
// the record a non-match rather than an error.
func Matches[T any](rec T, query string, filters FilterSpec, d Descriptor[T]) bool {
	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		found := false
		for _, get := range d.SearchFields {
			if strings.Contains(strings.ToLower(get(rec)), q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for key, want := range filters {
		if want == FilterAll || want == "" {
			continue
		}
		get, ok := d.FilterFields[key]
		if !ok {
			return false
		}
		if get(rec) != want {
			return false
		}
	}

	return true
}

// Filter returns the records matching the specs, preserving input order.
// The input slice is never mutated; an empty collection yields an empty
// result, not an error.
func Filter[T any](items []T, query string, filters FilterSpec, d Descriptor[T]) []T {
	out := make([]T, 0, len(items))
	for _, rec := range items {
		if Matches(rec, query, filters, d) {
			out = append(out, rec)
		}
	}
	return out
}
