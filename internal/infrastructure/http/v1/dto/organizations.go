package dto

import (
	"eventum/internal/domain/organizations"
)

// CreateOrganizationRequest is the DTO for creating an organization.
type CreateOrganizationRequest struct {
	Name         string `json:"name" binding:"required"`
	Assigned     string `json:"assigned"`
	ContactEmail string `json:"contactEmail" binding:"required"`
	Phone        string `json:"phone"`
}

func (r CreateOrganizationRequest) ToEntity() *organizations.Organization {
	org := organizations.New(r.Name, r.Assigned, r.ContactEmail)
	org.Phone = r.Phone
	return org
}

// UpdateOrganizationRequest is the DTO for updating an organization.
type UpdateOrganizationRequest struct {
	Version      int     `json:"version" binding:"required,min=1"`
	Name         *string `json:"name"`
	Assigned     *string `json:"assigned"`
	ContactEmail *string `json:"contactEmail"`
	Phone        *string `json:"phone"`
	Status       *string `json:"status"`
}

func (r UpdateOrganizationRequest) ApplyTo(org *organizations.Organization) {
	org.Version = r.Version
	if r.Name != nil {
		org.Name = *r.Name
	}
	if r.Assigned != nil {
		org.Assigned = *r.Assigned
	}
	if r.ContactEmail != nil {
		org.ContactEmail = *r.ContactEmail
	}
	if r.Phone != nil {
		org.Phone = *r.Phone
	}
	if r.Status != nil {
		org.Status = organizations.Status(*r.Status)
	}
}

// OrganizationResponse is the DTO for returning organization data.
type OrganizationResponse struct {
	BaseResponse
	Name         string `json:"name"`
	Assigned     string `json:"assigned,omitempty"`
	ContactEmail string `json:"contactEmail"`
	Phone        string `json:"phone,omitempty"`
	Status       string `json:"status"`
}

func FromOrganization(org *organizations.Organization) OrganizationResponse {
	return OrganizationResponse{
		BaseResponse: FromBase(org.Base),
		Name:         org.Name,
		Assigned:     org.Assigned,
		ContactEmail: org.ContactEmail,
		Phone:        org.Phone,
		Status:       string(org.Status),
	}
}
