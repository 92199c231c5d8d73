package handlers

import (
	"github.com/gin-gonic/gin"

	"eventum/internal/core/apperror"
	"eventum/internal/core/id"
	"eventum/internal/domain/events"
	"eventum/internal/infrastructure/http/v1/dto"
)

// EventHandler handles event endpoints.
type EventHandler struct {
	*EntityHandler[*events.Event, dto.CreateEventRequest, dto.UpdateEventRequest]
	service *events.Service
}

// NewEventHandler creates a new event handler.
func NewEventHandler(base *BaseHandler, service *events.Service) *EventHandler {
	return &EventHandler{
		EntityHandler: NewEntityHandler(base, EntityHandlerConfig[*events.Event, dto.CreateEventRequest, dto.UpdateEventRequest]{
			Service:    service,
			Descriptor: events.Descriptor(),
			EntityName: "event",
			MapCreateDTO: func(req dto.CreateEventRequest) (*events.Event, error) {
				return req.ToEntity(), nil
			},
			MapUpdateDTO: func(req dto.UpdateEventRequest, existing *events.Event) (*events.Event, error) {
				req.ApplyTo(existing)
				return existing, nil
			},
			MapToDTO: func(e *events.Event) any { return dto.FromEvent(e) },
		}),
		service: service,
	}
}

// Publish handles POST /events/:id/publish.
func (h *EventHandler) Publish(c *gin.Context) {
	eventID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	event, err := h.service.Publish(c.Request.Context(), eventID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromEvent(event))
}

// Cancel handles POST /events/:id/cancel.
func (h *EventHandler) Cancel(c *gin.Context) {
	eventID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	event, err := h.service.Cancel(c.Request.Context(), eventID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromEvent(event))
}
