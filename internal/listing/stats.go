package listing

import (
	"github.com/shopspring/decimal"
)

// Stats maps stat names to computed values. Counts are whole decimals;
// sums keep full monetary precision.
type Stats map[string]decimal.Decimal

// StatSpec defines one summary statistic: either a predicate count or a
// field sum restricted by a predicate.
type StatSpec[T any] struct {
	Name string

	// Field, when set, makes this a sum stat over its values.
	// When nil the stat is a count.
	Field func(T) decimal.Decimal

	// Where restricts the records included; nil means all records.
	Where func(T) bool
}

// CountStat defines a count of records matching the predicate.
func CountStat[T any](name string, where func(T) bool) StatSpec[T] {
	return StatSpec[T]{Name: name, Where: where}
}

// SumStat defines a sum of field values over records matching the predicate.
func SumStat[T any](name string, field func(T) decimal.Decimal, where func(T) bool) StatSpec[T] {
	return StatSpec[T]{Name: name, Field: field, Where: where}
}

// Aggregate computes all descriptor stats over the UNFILTERED collection.
// An empty collection yields all-zero stats, never an error.
func Aggregate[T any](items []T, specs []StatSpec[T]) Stats {
	out := make(Stats, len(specs))
	for _, spec := range specs {
		total := decimal.Zero
		for _, rec := range items {
			if spec.Where != nil && !spec.Where(rec) {
				continue
			}
			if spec.Field != nil {
				total = total.Add(spec.Field(rec))
			} else {
				total = total.Add(decimal.NewFromInt(1))
			}
		}
		out[spec.Name] = total
	}
	return out
}
