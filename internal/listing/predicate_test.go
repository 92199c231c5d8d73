package listing

import (
	"testing"

	"github.com/shopspring/decimal"
)

type record struct {
	Customer string
	Number   string
	Status   string
	Amount   decimal.Decimal
}

func testDescriptor() Descriptor[record] {
	return Descriptor[record]{
		SearchFields: []func(record) string{
			func(r record) string { return r.Customer },
			func(r record) string { return r.Number },
		},
		FilterFields: map[string]func(record) string{
			"status": func(r record) string { return r.Status },
		},
		Stats: []StatSpec[record]{
			CountStat[record]("total", nil),
			CountStat("paid", func(r record) bool { return r.Status == "paid" }),
			SumStat("totalAmount", func(r record) decimal.Decimal { return r.Amount }, nil),
		},
	}
}

func testRecords() []record {
	return []record{
		{Customer: "Acme Corp", Number: "INV-2026-000001", Status: "paid", Amount: decimal.NewFromInt(100)},
		{Customer: "Borealis Ltd", Number: "INV-2026-000002", Status: "unpaid", Amount: decimal.NewFromInt(250)},
		{Customer: "Cobalt Partners", Number: "INV-2026-000003", Status: "unpaid", Amount: decimal.NewFromInt(75)},
		{Customer: "Acme West", Number: "INV-2026-000004", Status: "overdue", Amount: decimal.NewFromInt(300)},
	}
}

func TestMatches_Search(t *testing.T) {
	d := testDescriptor()
	rec := record{Customer: "Acme Corp", Number: "INV-2026-000001", Status: "paid"}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query matches", "", true},
		{"whitespace query matches", "   ", true},
		{"case-insensitive customer", "acme", true},
		{"substring of number", "000001", true},
		{"no field contains query", "zebra", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(rec, tt.query, nil, d); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestMatches_Filters(t *testing.T) {
	d := testDescriptor()
	rec := record{Customer: "Acme Corp", Status: "paid"}

	tests := []struct {
		name    string
		filters FilterSpec
		want    bool
	}{
		{"nil filters match", nil, true},
		{"all sentinel matches", FilterSpec{"status": FilterAll}, true},
		{"empty value matches", FilterSpec{"status": ""}, true},
		{"exact match", FilterSpec{"status": "paid"}, true},
		{"value mismatch", FilterSpec{"status": "unpaid"}, false},
		{"case-sensitive", FilterSpec{"status": "Paid"}, false},
		{"unknown key never matches", FilterSpec{"color": "red"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(rec, "", tt.filters, d); got != tt.want {
				t.Errorf("Matches(filters=%v) = %v, want %v", tt.filters, got, tt.want)
			}
		})
	}
}

func TestMatches_SearchAndFilterConjunctive(t *testing.T) {
	d := testDescriptor()
	rec := record{Customer: "Acme Corp", Status: "paid"}

	if !Matches(rec, "acme", FilterSpec{"status": "paid"}, d) {
		t.Error("record should match when both specs pass")
	}
	if Matches(rec, "acme", FilterSpec{"status": "unpaid"}, d) {
		t.Error("record should not match when the filter fails")
	}
	if Matches(rec, "zebra", FilterSpec{"status": "paid"}, d) {
		t.Error("record should not match when the search fails")
	}
}

func TestFilter_PreservesOrderAndInput(t *testing.T) {
	d := testDescriptor()
	items := testRecords()

	got := Filter(items, "", FilterSpec{"status": "unpaid"}, d)

	if len(got) != 2 {
		t.Fatalf("expected 2 unpaid records, got %d", len(got))
	}
	if got[0].Customer != "Borealis Ltd" || got[1].Customer != "Cobalt Partners" {
		t.Errorf("input order not preserved: %v", got)
	}

	// Input must not be mutated.
	if items[0].Customer != "Acme Corp" || len(items) != 4 {
		t.Error("Filter mutated the input collection")
	}
}

func TestFilter_Idempotent(t *testing.T) {
	d := testDescriptor()
	filters := FilterSpec{"status": "unpaid"}

	once := Filter(testRecords(), "", filters, d)
	twice := Filter(once, "", filters, d)

	if len(once) != len(twice) {
		t.Fatalf("filtering a filtered result changed it: %d vs %d", len(once), len(twice))
	}
}

func TestFilter_EmptyCollection(t *testing.T) {
	d := testDescriptor()

	got := Filter(nil, "acme", FilterSpec{"status": "paid"}, d)
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d records", len(got))
	}
}
