// Package events provides the Event entity: something attendees can
// browse and register for.
package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"eventum/internal/core/apperror"
	"eventum/internal/core/entity"
	"eventum/internal/listing"
)

// Status is the event lifecycle state.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Event represents a bookable event.
type Event struct {
	entity.Base

	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description,omitempty"`
	VenueName   string    `db:"venue_name" json:"venueName"`
	StartsAt    time.Time `db:"starts_at" json:"startsAt"`
	Capacity    int       `db:"capacity" json:"capacity"`
	Registered  int       `db:"registered" json:"registered"`
	Status      Status    `db:"status" json:"status"`
	Category    string    `db:"category" json:"category"`
}

// New creates a draft Event.
func New(title, venueName string, startsAt time.Time, capacity int) *Event {
	return &Event{
		Base:      entity.NewBase(),
		Title:     title,
		VenueName: venueName,
		StartsAt:  startsAt,
		Capacity:  capacity,
		Status:    StatusDraft,
	}
}

// Remaining returns the number of available seats.
func (e *Event) Remaining() int {
	return e.Capacity - e.Registered
}

// IsFull returns true when no seats remain.
func (e *Event) IsFull() bool {
	return e.Registered >= e.Capacity
}

// Validate implements entity.Validatable.
func (e *Event) Validate(ctx context.Context) error {
	if e.Title == "" {
		return apperror.NewValidation("title is required").WithDetail("field", "title")
	}
	if e.Capacity <= 0 {
		return apperror.NewValidation("capacity must be a positive number").WithDetail("field", "capacity")
	}
	if e.StartsAt.IsZero() {
		return apperror.NewValidation("start date is required").WithDetail("field", "startsAt")
	}
	if e.Registered < 0 || e.Registered > e.Capacity {
		return apperror.NewValidation("registered count out of range").WithDetail("field", "registered")
	}
	return nil
}

// Descriptor configures the list pipeline for events.
func Descriptor() listing.Descriptor[*Event] {
	return listing.Descriptor[*Event]{
		SearchFields: []func(*Event) string{
			func(e *Event) string { return e.Title },
			func(e *Event) string { return e.VenueName },
		},
		FilterFields: map[string]func(*Event) string{
			"status":   func(e *Event) string { return string(e.Status) },
			"category": func(e *Event) string { return e.Category },
		},
		Stats: []listing.StatSpec[*Event]{
			listing.CountStat[*Event]("total", nil),
			listing.CountStat("published", func(e *Event) bool { return e.Status == StatusPublished }),
			listing.CountStat("upcoming", func(e *Event) bool {
				return e.Status == StatusPublished && e.StartsAt.After(time.Now())
			}),
			listing.SumStat("registered", func(e *Event) decimal.Decimal {
				return decimal.NewFromInt(int64(e.Registered))
			}, nil),
		},
	}
}
