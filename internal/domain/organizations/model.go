// Package organizations provides the Organization entity: a client
// company that hosts events and receives invoices.
package organizations

import (
	"context"
	"strings"

	"eventum/internal/core/apperror"
	"eventum/internal/core/entity"
	"eventum/internal/listing"
)

// Status is the organization state.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Organization represents a client organization.
type Organization struct {
	entity.Base

	Name         string `db:"name" json:"name"`
	Assigned     string `db:"assigned" json:"assigned"`
	ContactEmail string `db:"contact_email" json:"contactEmail"`
	Phone        string `db:"phone" json:"phone,omitempty"`
	Status       Status `db:"status" json:"status"`
}

// New creates an active Organization.
func New(name, assigned, contactEmail string) *Organization {
	return &Organization{
		Base:         entity.NewBase(),
		Name:         name,
		Assigned:     assigned,
		ContactEmail: contactEmail,
		Status:       StatusActive,
	}
}

// Validate implements entity.Validatable.
func (o *Organization) Validate(ctx context.Context) error {
	if o.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if o.ContactEmail == "" {
		return apperror.NewValidation("contact email is required").WithDetail("field", "contactEmail")
	}
	if !strings.Contains(o.ContactEmail, "@") {
		return apperror.NewValidation("contact email is not a valid address").WithDetail("field", "contactEmail")
	}
	return nil
}

// Descriptor configures the list pipeline for organizations.
// Free-text search covers name and the assigned account manager.
func Descriptor() listing.Descriptor[*Organization] {
	return listing.Descriptor[*Organization]{
		SearchFields: []func(*Organization) string{
			func(o *Organization) string { return o.Name },
			func(o *Organization) string { return o.Assigned },
		},
		FilterFields: map[string]func(*Organization) string{
			"status": func(o *Organization) string { return string(o.Status) },
		},
		Stats: []listing.StatSpec[*Organization]{
			listing.CountStat[*Organization]("total", nil),
			listing.CountStat("active", func(o *Organization) bool { return o.Status == StatusActive }),
		},
	}
}
