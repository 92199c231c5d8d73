// Package registrations provides the Registration entity: an attendee
// signed up for an event.
package registrations

import (
	"context"
	"strings"

	"eventum/internal/core/apperror"
	"eventum/internal/core/entity"
	"eventum/internal/core/id"
	"eventum/internal/listing"
)

// Status is the registration state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCancelled  Status = "cancelled"
	StatusWaitlisted Status = "waitlisted"
)

// Registration represents an attendee registration for an event.
type Registration struct {
	entity.Base

	EventID  id.ID  `db:"event_id" json:"eventId"`
	Attendee string `db:"attendee" json:"attendee"`
	Email    string `db:"email" json:"email"`
	Status   Status `db:"status" json:"status"`
}

// New creates a pending Registration.
func New(eventID id.ID, attendee, email string) *Registration {
	return &Registration{
		Base:     entity.NewBase(),
		EventID:  eventID,
		Attendee: attendee,
		Email:    email,
		Status:   StatusPending,
	}
}

// Validate implements entity.Validatable.
func (r *Registration) Validate(ctx context.Context) error {
	if id.IsNil(r.EventID) {
		return apperror.NewValidation("event is required").WithDetail("field", "eventId")
	}
	if r.Attendee == "" {
		return apperror.NewValidation("attendee name is required").WithDetail("field", "attendee")
	}
	if r.Email == "" {
		return apperror.NewValidation("email is required").WithDetail("field", "email")
	}
	if !strings.Contains(r.Email, "@") {
		return apperror.NewValidation("email is not a valid address").WithDetail("field", "email")
	}
	return nil
}

// Descriptor configures the list pipeline for registrations.
func Descriptor() listing.Descriptor[*Registration] {
	return listing.Descriptor[*Registration]{
		SearchFields: []func(*Registration) string{
			func(r *Registration) string { return r.Attendee },
			func(r *Registration) string { return r.Email },
		},
		FilterFields: map[string]func(*Registration) string{
			"status": func(r *Registration) string { return string(r.Status) },
		},
		Stats: []listing.StatSpec[*Registration]{
			listing.CountStat[*Registration]("total", nil),
			listing.CountStat("confirmed", func(r *Registration) bool { return r.Status == StatusConfirmed }),
			listing.CountStat("waitlisted", func(r *Registration) bool { return r.Status == StatusWaitlisted }),
		},
	}
}
