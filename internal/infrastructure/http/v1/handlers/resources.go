package handlers

import (
	"eventum/internal/domain/resources"
	"eventum/internal/infrastructure/http/v1/dto"
)

// ResourceHandler handles resource endpoints.
type ResourceHandler struct {
	*EntityHandler[*resources.Resource, dto.CreateResourceRequest, dto.UpdateResourceRequest]
}

// NewResourceHandler creates a new resource handler.
func NewResourceHandler(base *BaseHandler, service *resources.Service) *ResourceHandler {
	return &ResourceHandler{
		EntityHandler: NewEntityHandler(base, EntityHandlerConfig[*resources.Resource, dto.CreateResourceRequest, dto.UpdateResourceRequest]{
			Service:    service,
			Descriptor: resources.Descriptor(),
			EntityName: "resource",
			MapCreateDTO: func(req dto.CreateResourceRequest) (*resources.Resource, error) {
				return req.ToEntity(), nil
			},
			MapUpdateDTO: func(req dto.UpdateResourceRequest, existing *resources.Resource) (*resources.Resource, error) {
				req.ApplyTo(existing)
				return existing, nil
			},
			MapToDTO: func(res *resources.Resource) any { return dto.FromResource(res) },
		}),
	}
}
