package handlers

import (
	"github.com/gin-gonic/gin"

	"eventum/internal/domain/venues"
	"eventum/internal/infrastructure/http/v1/dto"
)

// VenueHandler handles venue endpoints.
type VenueHandler struct {
	*EntityHandler[*venues.Venue, dto.CreateVenueRequest, dto.UpdateVenueRequest]
	service *venues.Service
}

// NewVenueHandler creates a new venue handler.
func NewVenueHandler(base *BaseHandler, service *venues.Service) *VenueHandler {
	return &VenueHandler{
		service: service,
		EntityHandler: NewEntityHandler(base, EntityHandlerConfig[*venues.Venue, dto.CreateVenueRequest, dto.UpdateVenueRequest]{
			Service:    service,
			Descriptor: venues.Descriptor(),
			EntityName: "venue",
			MapCreateDTO: func(req dto.CreateVenueRequest) (*venues.Venue, error) {
				return req.ToEntity(), nil
			},
			MapUpdateDTO: func(req dto.UpdateVenueRequest, existing *venues.Venue) (*venues.Venue, error) {
				req.ApplyTo(existing)
				return existing, nil
			},
			MapToDTO: func(v *venues.Venue) any { return dto.FromVenue(v) },
		}),
	}
}

// GetByName handles GET /venues/by-name/:name. Venue names are unique, so
// booking screens can resolve a venue without knowing its id.
func (h *VenueHandler) GetByName(c *gin.Context) {
	v, err := h.service.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromVenue(v))
}
