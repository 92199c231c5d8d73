package dto

import (
	"eventum/internal/domain/resources"
)

// CreateResourceRequest is the DTO for creating a resource.
type CreateResourceRequest struct {
	Name  string `json:"name" binding:"required"`
	Kind  string `json:"kind" binding:"required"`
	Notes string `json:"notes"`
}

func (r CreateResourceRequest) ToEntity() *resources.Resource {
	res := resources.New(r.Name, resources.Kind(r.Kind))
	res.Notes = r.Notes
	return res
}

// UpdateResourceRequest is the DTO for updating a resource.
type UpdateResourceRequest struct {
	Version int     `json:"version" binding:"required,min=1"`
	Name    *string `json:"name"`
	Kind    *string `json:"kind"`
	Status  *string `json:"status"`
	Notes   *string `json:"notes"`
}

func (r UpdateResourceRequest) ApplyTo(res *resources.Resource) {
	res.Version = r.Version
	if r.Name != nil {
		res.Name = *r.Name
	}
	if r.Kind != nil {
		res.Kind = resources.Kind(*r.Kind)
	}
	if r.Status != nil {
		res.Status = resources.Status(*r.Status)
	}
	if r.Notes != nil {
		res.Notes = *r.Notes
	}
}

// ResourceResponse is the DTO for returning resource data.
type ResourceResponse struct {
	BaseResponse
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

func FromResource(res *resources.Resource) ResourceResponse {
	return ResourceResponse{
		BaseResponse: FromBase(res.Base),
		Name:         res.Name,
		Kind:         string(res.Kind),
		Status:       string(res.Status),
		Notes:        res.Notes,
	}
}
