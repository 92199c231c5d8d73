package handlers

import (
	"github.com/gin-gonic/gin"

	"eventum/internal/domain"
	"eventum/internal/domain/bookings"
	"eventum/internal/domain/events"
	"eventum/internal/domain/invoices"
	"eventum/internal/domain/registrations"
	"eventum/internal/infrastructure/http/v1/dto"
	"eventum/internal/listing"
)

// DashboardHandler aggregates summary stats across entities for the
// overview screen. Each section reuses the entity's own stat specs over
// its full collection.
type DashboardHandler struct {
	*BaseHandler
	events        *events.Service
	invoices      *invoices.Service
	registrations *registrations.Service
	bookings      *bookings.Service
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(
	base *BaseHandler,
	eventSvc *events.Service,
	invoiceSvc *invoices.Service,
	registrationSvc *registrations.Service,
	bookingSvc *bookings.Service,
) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:   base,
		events:        eventSvc,
		invoices:      invoiceSvc,
		registrations: registrationSvc,
		bookings:      bookingSvc,
	}
}

// Overview handles GET /dashboard.
func (h *DashboardHandler) Overview(c *gin.Context) {
	ctx := c.Request.Context()
	filter := domain.DefaultListFilter()

	eventResult, err := h.events.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	invoiceResult, err := h.invoices.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	registrationResult, err := h.registrations.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	bookingResult, err := h.bookings.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.DashboardResponse{
		Events:        listing.Aggregate(eventResult.Items, events.Descriptor().Stats),
		Invoices:      listing.Aggregate(invoiceResult.Items, invoices.Descriptor().Stats),
		Registrations: listing.Aggregate(registrationResult.Items, registrations.Descriptor().Stats),
		Bookings:      listing.Aggregate(bookingResult.Items, bookings.Descriptor().Stats),
	})
}
