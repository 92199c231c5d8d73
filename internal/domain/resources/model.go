// Package resources provides the Resource entity: equipment, staff and
// services that can be attached to events.
package resources

import (
	"context"

	"eventum/internal/core/apperror"
	"eventum/internal/core/entity"
	"eventum/internal/listing"
)

// Kind classifies a resource.
type Kind string

const (
	KindEquipment Kind = "equipment"
	KindStaff     Kind = "staff"
	KindService   Kind = "service"
)

// Status is the resource availability state.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
)

// Resource represents a bookable resource.
type Resource struct {
	entity.Base

	Name   string `db:"name" json:"name"`
	Kind   Kind   `db:"kind" json:"kind"`
	Status Status `db:"status" json:"status"`
	Notes  string `db:"notes" json:"notes,omitempty"`
}

// New creates an available Resource.
func New(name string, kind Kind) *Resource {
	return &Resource{
		Base:   entity.NewBase(),
		Name:   name,
		Kind:   kind,
		Status: StatusAvailable,
	}
}

// Validate implements entity.Validatable.
func (r *Resource) Validate(ctx context.Context) error {
	if r.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	switch r.Kind {
	case KindEquipment, KindStaff, KindService:
	default:
		return apperror.NewValidation("unknown resource kind").WithDetail("field", "kind")
	}
	return nil
}

// Descriptor configures the list pipeline for resources.
func Descriptor() listing.Descriptor[*Resource] {
	return listing.Descriptor[*Resource]{
		SearchFields: []func(*Resource) string{
			func(r *Resource) string { return r.Name },
			func(r *Resource) string { return r.Notes },
		},
		FilterFields: map[string]func(*Resource) string{
			"kind":   func(r *Resource) string { return string(r.Kind) },
			"status": func(r *Resource) string { return string(r.Status) },
		},
		Stats: []listing.StatSpec[*Resource]{
			listing.CountStat[*Resource]("total", nil),
			listing.CountStat("available", func(r *Resource) bool { return r.Status == StatusAvailable }),
		},
	}
}
