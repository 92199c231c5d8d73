package form

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatCardNumber normalizes a card number input into "dddd dddd dddd dddd".
// Spaces and dashes in the input are ignored. Anything other than exactly
// 16 digits yields a non-empty card error and an empty formatted value.
// No real payment processing happens here: this is input masking only.
func FormatCardNumber(input string) (formatted string, cardError string) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, input)

	stripped := strings.NewReplacer(" ", "", "-", "").Replace(input)
	if stripped != digits {
		return "", "card number may contain only digits"
	}
	if len(digits) != 16 {
		return "", "card number must be 16 digits"
	}

	var groups []string
	for i := 0; i < 16; i += 4 {
		groups = append(groups, digits[i:i+4])
	}
	return strings.Join(groups, " "), ""
}

// ParseExpiry parses an "MM/YY" or "MM/YYYY" expiry input.
func ParseExpiry(input string) (month, year int, err error) {
	parts := strings.Split(strings.TrimSpace(input), "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expiry must be MM/YY")
	}

	month, err = strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("expiry month must be 01-12")
	}

	year, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("expiry year is not a number")
	}
	if year < 100 {
		year += 2000
	}
	return month, year, nil
}

// ValidateExpiry checks that an expiry month/year is not earlier than the
// current calendar month.
func ValidateExpiry(input string, now time.Time) error {
	month, year, err := ParseExpiry(input)
	if err != nil {
		return err
	}
	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return fmt.Errorf("card is expired")
	}
	return nil
}
