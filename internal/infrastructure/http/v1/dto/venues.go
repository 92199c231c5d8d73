package dto

import (
	"github.com/shopspring/decimal"

	"eventum/internal/domain/venues"
)

// CreateVenueRequest is the DTO for creating a venue.
type CreateVenueRequest struct {
	Name       string          `json:"name" binding:"required"`
	Address    string          `json:"address"`
	City       string          `json:"city"`
	Capacity   int             `json:"capacity" binding:"required,min=1"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
}

func (r CreateVenueRequest) ToEntity() *venues.Venue {
	v := venues.New(r.Name, r.Address, r.City, r.Capacity)
	v.HourlyRate = r.HourlyRate
	return v
}

// UpdateVenueRequest is the DTO for updating a venue.
type UpdateVenueRequest struct {
	Version    int              `json:"version" binding:"required,min=1"`
	Name       *string          `json:"name"`
	Address    *string          `json:"address"`
	City       *string          `json:"city"`
	Capacity   *int             `json:"capacity"`
	HourlyRate *decimal.Decimal `json:"hourlyRate"`
}

func (r UpdateVenueRequest) ApplyTo(v *venues.Venue) {
	v.Version = r.Version
	if r.Name != nil {
		v.Name = *r.Name
	}
	if r.Address != nil {
		v.Address = *r.Address
	}
	if r.City != nil {
		v.City = *r.City
	}
	if r.Capacity != nil {
		v.Capacity = *r.Capacity
	}
	if r.HourlyRate != nil {
		v.HourlyRate = *r.HourlyRate
	}
}

// VenueResponse is the DTO for returning venue data.
type VenueResponse struct {
	BaseResponse
	Name       string          `json:"name"`
	Address    string          `json:"address,omitempty"`
	City       string          `json:"city,omitempty"`
	Capacity   int             `json:"capacity"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
}

func FromVenue(v *venues.Venue) VenueResponse {
	return VenueResponse{
		BaseResponse: FromBase(v.Base),
		Name:         v.Name,
		Address:      v.Address,
		City:         v.City,
		Capacity:     v.Capacity,
		HourlyRate:   v.HourlyRate,
	}
}
