package listing

import (
	"testing"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		pageSize int
		want     int
	}{
		{"empty collection still has one page", 0, 10, 1},
		{"exact multiple", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"single record", 1, 10, 1},
		{"zero page size falls back to default", 25, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPages(tt.count, tt.pageSize); got != tt.want {
				t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.count, tt.pageSize, got, tt.want)
			}
		})
	}
}

func TestPaginate_PagesConcatenateToWholeCollection(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	pageSize := 5
	var combined []int
	for page := 1; page <= TotalPages(len(items), pageSize); page++ {
		slice, _ := Paginate(items, page, pageSize)
		combined = append(combined, slice...)
	}

	if len(combined) != len(items) {
		t.Fatalf("pages cover %d records, want %d", len(combined), len(items))
	}
	for i, v := range combined {
		if v != i {
			t.Fatalf("record %d out of order: got %d", i, v)
		}
	}
}

func TestPaginate_LastPageShorter(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	slice, totalPages := Paginate(items, 2, 5)
	if totalPages != 2 {
		t.Errorf("totalPages = %d, want 2", totalPages)
	}
	if len(slice) != 2 {
		t.Errorf("last page has %d records, want 2", len(slice))
	}
}

func TestPaginate_OutOfRangePageIsEmpty(t *testing.T) {
	items := []int{1, 2, 3}

	slice, totalPages := Paginate(items, 5, 10)
	if totalPages != 1 {
		t.Errorf("totalPages = %d, want 1", totalPages)
	}
	if len(slice) != 0 {
		t.Errorf("out-of-range page returned %d records, want empty", len(slice))
	}

	slice, _ = Paginate(items, 0, 10)
	if len(slice) != 0 {
		t.Errorf("page 0 returned %d records, want empty", len(slice))
	}
}

func TestPaginate_EmptyCollection(t *testing.T) {
	slice, totalPages := Paginate([]int(nil), 1, 10)
	if totalPages != 1 {
		t.Errorf("totalPages = %d, want 1", totalPages)
	}
	if len(slice) != 0 {
		t.Errorf("expected empty slice, got %d records", len(slice))
	}
}
