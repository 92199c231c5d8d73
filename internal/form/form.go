// Package form maintains a draft record while an add/edit form is being
// composed: field-level setters, required-field validation, and a single
// current error message. A draft is discarded unless its submission
// succeeds; on failure it stays intact for correction.
package form

import (
	"strconv"
	"strings"

	"eventum/internal/core/apperror"
)

// FieldKind selects the validation applied to a field value.
type FieldKind int

const (
	// Text requires a non-empty string when the field is required.
	Text FieldKind = iota

	// Number requires a value that parses as a positive number.
	Number

	// Date requires a non-empty value (calendar semantics live in the
	// card expiry helpers).
	Date

	// Select requires a chosen enum value; the "all" placeholder does not
	// count as a choice.
	Select
)

// Field declares one form field.
type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
}

// Form binds a draft record to its field values.
type Form struct {
	fields []Field
	values map[string]string
	err    string
}

// New creates a form over the declared fields with an empty draft.
func New(fields ...Field) *Form {
	return &Form{
		fields: fields,
		values: make(map[string]string, len(fields)),
	}
}

// SetField updates one draft value. Any displayed error is cleared: the
// error is sticky only until the next edit.
func (f *Form) SetField(name, value string) {
	f.values[name] = value
	f.err = ""
}

// Get returns the current draft value for a field.
func (f *Form) Get(name string) string {
	return f.values[name]
}

// Values returns a copy of the draft.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Reset discards the draft, optionally seeding initial values (edit forms
// start from the existing record).
func (f *Form) Reset(initial map[string]string) {
	f.values = make(map[string]string, len(f.fields))
	for k, v := range initial {
		f.values[k] = v
	}
	f.err = ""
}

// Error returns the current error message, empty when none.
func (f *Form) Error() string {
	return f.err
}

// Validate checks required fields and field kinds. It returns nil when the
// draft may be submitted; otherwise a validation error listing the missing
// field names, which also becomes the current error message. Validation
// never reaches the store: submission is blocked while it fails.
func (f *Form) Validate() error {
	var missing []string
	var malformed []string

	for _, field := range f.fields {
		raw := strings.TrimSpace(f.values[field.Name])

		if raw == "" {
			if field.Required {
				missing = append(missing, field.Name)
			}
			continue
		}

		switch field.Kind {
		case Number:
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil || n <= 0 {
				malformed = append(malformed, field.Name)
			}
		case Select:
			if raw == "all" {
				missing = append(missing, field.Name)
			}
		}
	}

	if len(missing) == 0 && len(malformed) == 0 {
		return nil
	}

	appErr := apperror.NewValidation("required fields are missing or invalid")
	if len(missing) > 0 {
		appErr = appErr.WithDetail("missing", missing)
	}
	if len(malformed) > 0 {
		appErr = appErr.WithDetail("invalid", malformed)
	}
	f.err = appErr.Message
	return appErr
}
