package form

import (
	"testing"

	"eventum/internal/core/apperror"
)

func TestForm_ValidateRequiredFields(t *testing.T) {
	f := New(
		Field{Name: "payer", Kind: Text, Required: true},
		Field{Name: "amount", Kind: Number, Required: true},
		Field{Name: "notes", Kind: Text},
	)

	err := f.Validate()
	if err == nil {
		t.Fatal("expected validation error for empty required fields")
	}
	appErr, ok := apperror.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	missing, _ := appErr.Details["missing"].([]string)
	if len(missing) != 2 {
		t.Errorf("expected 2 missing fields, got %v", missing)
	}
	if f.Error() == "" {
		t.Error("form must display the error after failed validation")
	}

	f.SetField("payer", "Acme Corp")
	if f.Error() != "" {
		t.Error("editing a field must clear the displayed error")
	}

	f.SetField("amount", "120.50")
	if err := f.Validate(); err != nil {
		t.Errorf("expected valid draft, got %v", err)
	}
}

func TestForm_ValidateFieldKinds(t *testing.T) {
	tests := []struct {
		name   string
		field  Field
		value  string
		wantOK bool
	}{
		{"positive number", Field{Name: "amount", Kind: Number, Required: true}, "42", true},
		{"zero is invalid", Field{Name: "amount", Kind: Number, Required: true}, "0", false},
		{"negative is invalid", Field{Name: "amount", Kind: Number, Required: true}, "-5", false},
		{"non-numeric is invalid", Field{Name: "amount", Kind: Number, Required: true}, "abc", false},
		{"select with a choice", Field{Name: "method", Kind: Select, Required: true}, "card", true},
		{"select placeholder is no choice", Field{Name: "method", Kind: Select, Required: true}, "all", false},
		{"optional empty number ok", Field{Name: "hours", Kind: Number}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.field)
			f.SetField(tt.field.Name, tt.value)

			err := f.Validate()
			if tt.wantOK && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestForm_Reset(t *testing.T) {
	f := New(Field{Name: "payer", Kind: Text, Required: true})
	f.SetField("payer", "old value")
	_ = f.Validate()

	f.Reset(map[string]string{"payer": "seeded"})
	if f.Get("payer") != "seeded" {
		t.Errorf("Reset did not seed initial values: %q", f.Get("payer"))
	}
	if f.Error() != "" {
		t.Error("Reset must clear the error")
	}
}
