// Package bookings provides the VenueBooking entity: a reservation of a
// venue for an event date. A booking references its venue by name, not id.
package bookings

import (
	"context"
	"time"

	"eventum/internal/core/apperror"
	"eventum/internal/core/entity"
	"eventum/internal/listing"
)

// Status is the booking lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// VenueBooking represents a venue reservation.
type VenueBooking struct {
	entity.Base

	VenueName string    `db:"venue_name" json:"venueName"`
	Organizer string    `db:"organizer" json:"organizer"`
	EventDate time.Time `db:"event_date" json:"eventDate"`
	Hours     int       `db:"hours" json:"hours"`
	Status    Status    `db:"status" json:"status"`
}

// New creates a pending VenueBooking.
func New(venueName, organizer string, eventDate time.Time, hours int) *VenueBooking {
	return &VenueBooking{
		Base:      entity.NewBase(),
		VenueName: venueName,
		Organizer: organizer,
		EventDate: eventDate,
		Hours:     hours,
		Status:    StatusPending,
	}
}

// Validate implements entity.Validatable.
func (b *VenueBooking) Validate(ctx context.Context) error {
	if b.VenueName == "" {
		return apperror.NewValidation("venue is required").WithDetail("field", "venueName")
	}
	if b.Organizer == "" {
		return apperror.NewValidation("organizer is required").WithDetail("field", "organizer")
	}
	if b.EventDate.IsZero() {
		return apperror.NewValidation("event date is required").WithDetail("field", "eventDate")
	}
	if b.Hours <= 0 {
		return apperror.NewValidation("hours must be a positive number").WithDetail("field", "hours")
	}
	return nil
}

// Descriptor configures the list pipeline for venue bookings.
func Descriptor() listing.Descriptor[*VenueBooking] {
	return listing.Descriptor[*VenueBooking]{
		SearchFields: []func(*VenueBooking) string{
			func(b *VenueBooking) string { return b.VenueName },
			func(b *VenueBooking) string { return b.Organizer },
		},
		FilterFields: map[string]func(*VenueBooking) string{
			"status": func(b *VenueBooking) string { return string(b.Status) },
		},
		Stats: []listing.StatSpec[*VenueBooking]{
			listing.CountStat[*VenueBooking]("total", nil),
			listing.CountStat("pending", func(b *VenueBooking) bool { return b.Status == StatusPending }),
			listing.CountStat("confirmed", func(b *VenueBooking) bool { return b.Status == StatusConfirmed }),
		},
	}
}
