package dto

import (
	"time"

	"eventum/internal/domain/events"
)

// CreateEventRequest is the DTO for creating an event.
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	VenueName   string    `json:"venueName"`
	StartsAt    time.Time `json:"startsAt" binding:"required"`
	Capacity    int       `json:"capacity" binding:"required,min=1"`
	Category    string    `json:"category"`
}

func (r CreateEventRequest) ToEntity() *events.Event {
	e := events.New(r.Title, r.VenueName, r.StartsAt, r.Capacity)
	e.Description = r.Description
	e.Category = r.Category
	return e
}

// UpdateEventRequest is the DTO for updating an event.
type UpdateEventRequest struct {
	Version     int        `json:"version" binding:"required,min=1"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	VenueName   *string    `json:"venueName"`
	StartsAt    *time.Time `json:"startsAt"`
	Capacity    *int       `json:"capacity"`
	Category    *string    `json:"category"`
}

func (r UpdateEventRequest) ApplyTo(e *events.Event) {
	e.Version = r.Version
	if r.Title != nil {
		e.Title = *r.Title
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
	if r.VenueName != nil {
		e.VenueName = *r.VenueName
	}
	if r.StartsAt != nil {
		e.StartsAt = *r.StartsAt
	}
	if r.Capacity != nil {
		e.Capacity = *r.Capacity
	}
	if r.Category != nil {
		e.Category = *r.Category
	}
}

// EventResponse is the DTO for returning event data.
type EventResponse struct {
	BaseResponse
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	VenueName   string    `json:"venueName"`
	StartsAt    time.Time `json:"startsAt"`
	Capacity    int       `json:"capacity"`
	Registered  int       `json:"registered"`
	Remaining   int       `json:"remaining"`
	Status      string    `json:"status"`
	Category    string    `json:"category,omitempty"`
}

func FromEvent(e *events.Event) EventResponse {
	return EventResponse{
		BaseResponse: FromBase(e.Base),
		Title:        e.Title,
		Description:  e.Description,
		VenueName:    e.VenueName,
		StartsAt:     e.StartsAt,
		Capacity:     e.Capacity,
		Registered:   e.Registered,
		Remaining:    e.Remaining(),
		Status:       string(e.Status),
		Category:     e.Category,
	}
}
