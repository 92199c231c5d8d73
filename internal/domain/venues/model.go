// Package venues provides the Venue entity.
package venues

import (
	"context"

	"eventum/internal/core/apperror"
	"eventum/internal/core/entity"
	"eventum/internal/core/types"
	"eventum/internal/listing"
)

// Venue represents a bookable location.
type Venue struct {
	entity.Base

	Name       string      `db:"name" json:"name"`
	Address    string      `db:"address" json:"address"`
	City       string      `db:"city" json:"city"`
	Capacity   int         `db:"capacity" json:"capacity"`
	HourlyRate types.Money `db:"hourly_rate" json:"hourlyRate"`
}

// New creates a Venue.
func New(name, address, city string, capacity int) *Venue {
	return &Venue{
		Base:     entity.NewBase(),
		Name:     name,
		Address:  address,
		City:     city,
		Capacity: capacity,
	}
}

// Validate implements entity.Validatable.
func (v *Venue) Validate(ctx context.Context) error {
	if v.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if v.Capacity <= 0 {
		return apperror.NewValidation("capacity must be a positive number").WithDetail("field", "capacity")
	}
	if v.HourlyRate.IsNegative() {
		return apperror.NewValidation("hourly rate cannot be negative").WithDetail("field", "hourlyRate")
	}
	return nil
}

// Descriptor configures the list pipeline for venues.
func Descriptor() listing.Descriptor[*Venue] {
	return listing.Descriptor[*Venue]{
		SearchFields: []func(*Venue) string{
			func(v *Venue) string { return v.Name },
			func(v *Venue) string { return v.City },
		},
		FilterFields: map[string]func(*Venue) string{
			"city": func(v *Venue) string { return v.City },
		},
		Stats: []listing.StatSpec[*Venue]{
			listing.CountStat[*Venue]("total", nil),
		},
	}
}
