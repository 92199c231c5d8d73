package handlers

import (
	"eventum/internal/domain/organizations"
	"eventum/internal/infrastructure/http/v1/dto"
)

// OrganizationHandler handles organization endpoints.
type OrganizationHandler struct {
	*EntityHandler[*organizations.Organization, dto.CreateOrganizationRequest, dto.UpdateOrganizationRequest]
}

// NewOrganizationHandler creates a new organization handler.
func NewOrganizationHandler(base *BaseHandler, service *organizations.Service) *OrganizationHandler {
	return &OrganizationHandler{
		EntityHandler: NewEntityHandler(base, EntityHandlerConfig[*organizations.Organization, dto.CreateOrganizationRequest, dto.UpdateOrganizationRequest]{
			Service:    service,
			Descriptor: organizations.Descriptor(),
			EntityName: "organization",
			MapCreateDTO: func(req dto.CreateOrganizationRequest) (*organizations.Organization, error) {
				return req.ToEntity(), nil
			},
			MapUpdateDTO: func(req dto.UpdateOrganizationRequest, existing *organizations.Organization) (*organizations.Organization, error) {
				req.ApplyTo(existing)
				return existing, nil
			},
			MapToDTO: func(o *organizations.Organization) any { return dto.FromOrganization(o) },
		}),
	}
}
