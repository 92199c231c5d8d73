package form

import (
	"testing"
	"time"
)

func TestFormatCardNumber(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantError bool
	}{
		{"plain 16 digits", "4111111111111111", "4111 1111 1111 1111", false},
		{"already grouped", "4111 1111 1111 1111", "4111 1111 1111 1111", false},
		{"dashes accepted", "4111-1111-1111-1111", "4111 1111 1111 1111", false},
		{"10 digits rejected", "4111111111", "", true},
		{"17 digits rejected", "41111111111111111", "", true},
		{"letters rejected", "4111 1111 1111 111a", "", true},
		{"empty rejected", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatted, cardErr := FormatCardNumber(tt.input)
			if tt.wantError {
				if cardErr == "" {
					t.Errorf("FormatCardNumber(%q): expected card error", tt.input)
				}
				if formatted != "" {
					t.Errorf("FormatCardNumber(%q): formatted value must be empty on error", tt.input)
				}
				return
			}
			if cardErr != "" {
				t.Fatalf("FormatCardNumber(%q): unexpected error %q", tt.input, cardErr)
			}
			if formatted != tt.want {
				t.Errorf("FormatCardNumber(%q) = %q, want %q", tt.input, formatted, tt.want)
			}
		})
	}
}

func TestParseExpiry(t *testing.T) {
	tests := []struct {
		input     string
		month     int
		year      int
		wantError bool
	}{
		{"09/27", 9, 2027, false},
		{"12/2030", 12, 2030, false},
		{"00/27", 0, 0, true},
		{"13/27", 0, 0, true},
		{"0927", 0, 0, true},
		{"ab/cd", 0, 0, true},
	}

	for _, tt := range tests {
		month, year, err := ParseExpiry(tt.input)
		if tt.wantError {
			if err == nil {
				t.Errorf("ParseExpiry(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseExpiry(%q): %v", tt.input, err)
			continue
		}
		if month != tt.month || year != tt.year {
			t.Errorf("ParseExpiry(%q) = %d/%d, want %d/%d", tt.input, month, year, tt.month, tt.year)
		}
	}
}

func TestValidateExpiry(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	if err := ValidateExpiry("08/26", now); err != nil {
		t.Errorf("current month must still be valid: %v", err)
	}
	if err := ValidateExpiry("12/26", now); err != nil {
		t.Errorf("future month must be valid: %v", err)
	}
	if err := ValidateExpiry("07/26", now); err == nil {
		t.Error("previous month must be expired")
	}
	if err := ValidateExpiry("08/25", now); err == nil {
		t.Error("previous year must be expired")
	}
}
