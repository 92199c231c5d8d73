package dto

import (
	"eventum/internal/listing"
)

// DashboardResponse groups per-entity summary stats for the overview
// screen.
type DashboardResponse struct {
	Events        listing.Stats `json:"events"`
	Invoices      listing.Stats `json:"invoices"`
	Registrations listing.Stats `json:"registrations"`
	Bookings      listing.Stats `json:"bookings"`
}
