package entity_repo

import (
	"testing"

	"eventum/internal/core/apperror"
)

func TestParseOrderBy(t *testing.T) {
	repo := NewBaseEntityRepo[any](nil, "test_table", []string{"id", "name", "created_at"}, func() any { return nil })

	tests := []struct {
		name    string
		orderBy string
		want    string
		wantErr bool
	}{
		{"empty defaults to created_at", "", "created_at ASC", false},
		{"plain field ascending", "name", "name ASC", false},
		{"dash prefix descending", "-name", "name DESC", false},
		{"unknown column rejected", "secret_col", "", true},
		{"injection attempt rejected", "name; DROP TABLE test_table", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.parseOrderBy(tt.orderBy)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseOrderBy(%q): expected error", tt.orderBy)
				}
				if !apperror.IsValidation(err) {
					t.Errorf("parseOrderBy(%q): expected validation error, got %v", tt.orderBy, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseOrderBy(%q) failed: %v", tt.orderBy, err)
			}
			if got != tt.want {
				t.Errorf("parseOrderBy(%q) = %q, want %q", tt.orderBy, got, tt.want)
			}
		})
	}
}
