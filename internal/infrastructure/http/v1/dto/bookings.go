package dto

import (
	"time"

	"eventum/internal/domain/bookings"
)

// CreateBookingRequest is the DTO for creating a venue booking.
type CreateBookingRequest struct {
	VenueName string    `json:"venueName" binding:"required"`
	Organizer string    `json:"organizer" binding:"required"`
	EventDate time.Time `json:"eventDate" binding:"required"`
	Hours     int       `json:"hours" binding:"required,min=1"`
}

func (r CreateBookingRequest) ToEntity() *bookings.VenueBooking {
	return bookings.New(r.VenueName, r.Organizer, r.EventDate, r.Hours)
}

// UpdateBookingRequest is the DTO for updating a venue booking.
type UpdateBookingRequest struct {
	Version   int        `json:"version" binding:"required,min=1"`
	VenueName *string    `json:"venueName"`
	Organizer *string    `json:"organizer"`
	EventDate *time.Time `json:"eventDate"`
	Hours     *int       `json:"hours"`
}

func (r UpdateBookingRequest) ApplyTo(b *bookings.VenueBooking) {
	b.Version = r.Version
	if r.VenueName != nil {
		b.VenueName = *r.VenueName
	}
	if r.Organizer != nil {
		b.Organizer = *r.Organizer
	}
	if r.EventDate != nil {
		b.EventDate = *r.EventDate
	}
	if r.Hours != nil {
		b.Hours = *r.Hours
	}
}

// BookingResponse is the DTO for returning booking data.
type BookingResponse struct {
	BaseResponse
	VenueName string    `json:"venueName"`
	Organizer string    `json:"organizer"`
	EventDate time.Time `json:"eventDate"`
	Hours     int       `json:"hours"`
	Status    string    `json:"status"`
}

func FromBooking(b *bookings.VenueBooking) BookingResponse {
	return BookingResponse{
		BaseResponse: FromBase(b.Base),
		VenueName:    b.VenueName,
		Organizer:    b.Organizer,
		EventDate:    b.EventDate,
		Hours:        b.Hours,
		Status:       string(b.Status),
	}
}
