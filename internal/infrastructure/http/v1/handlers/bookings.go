package handlers

import (
	"github.com/gin-gonic/gin"

	"eventum/internal/core/apperror"
	"eventum/internal/core/id"
	"eventum/internal/domain/bookings"
	"eventum/internal/infrastructure/http/v1/dto"
)

// BookingHandler handles venue booking endpoints.
type BookingHandler struct {
	*EntityHandler[*bookings.VenueBooking, dto.CreateBookingRequest, dto.UpdateBookingRequest]
	service *bookings.Service
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(base *BaseHandler, service *bookings.Service) *BookingHandler {
	return &BookingHandler{
		EntityHandler: NewEntityHandler(base, EntityHandlerConfig[*bookings.VenueBooking, dto.CreateBookingRequest, dto.UpdateBookingRequest]{
			Service:    service,
			Descriptor: bookings.Descriptor(),
			EntityName: "booking",
			MapCreateDTO: func(req dto.CreateBookingRequest) (*bookings.VenueBooking, error) {
				return req.ToEntity(), nil
			},
			MapUpdateDTO: func(req dto.UpdateBookingRequest, existing *bookings.VenueBooking) (*bookings.VenueBooking, error) {
				req.ApplyTo(existing)
				return existing, nil
			},
			MapToDTO: func(b *bookings.VenueBooking) any { return dto.FromBooking(b) },
		}),
		service: service,
	}
}

// Confirm handles POST /bookings/:id/confirm.
func (h *BookingHandler) Confirm(c *gin.Context) {
	bookingID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	booking, err := h.service.Confirm(c.Request.Context(), bookingID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromBooking(booking))
}

// Cancel handles POST /bookings/:id/cancel.
func (h *BookingHandler) Cancel(c *gin.Context) {
	bookingID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	booking, err := h.service.Cancel(c.Request.Context(), bookingID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromBooking(booking))
}
