package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventum/internal/core/apperror"
	"eventum/internal/core/id"
	"eventum/internal/domain/registrations"
	"eventum/internal/infrastructure/http/v1/dto"
	"eventum/internal/mutation"
)

// registrationDraft carries a registration submission through the
// mutation gateway.
type registrationDraft struct {
	EventID  id.ID
	Attendee string
	Email    string

	Committed *registrations.Registration
	Err       error
}

// registrationStore adapts the registration service to the gateway's store.
type registrationStore struct {
	svc *registrations.Service
}

func (s *registrationStore) Create(ctx context.Context, d *registrationDraft) (*registrationDraft, error) {
	d.Committed, d.Err = s.svc.Register(ctx, d.EventID, d.Attendee, d.Email)
	return d, d.Err
}

func (s *registrationStore) Update(ctx context.Context, d *registrationDraft) (*registrationDraft, error) {
	return d, apperror.NewValidation("registrations are changed via confirm and cancel")
}

func (s *registrationStore) Remove(ctx context.Context, regID string) error {
	parsed, err := id.Parse(regID)
	if err != nil {
		return apperror.NewValidation("invalid id format")
	}
	return s.svc.Delete(ctx, parsed)
}

// RegistrationHandler handles registration endpoints. Register goes
// through a per-user mutation gateway so a double-submitted form cannot
// take two seats for the same attendee, while other users register
// freely in parallel.
type RegistrationHandler struct {
	*BaseHandler
	service  *registrations.Service
	gateways *mutation.Pool[*registrationDraft]
}

// NewRegistrationHandler creates a new registration handler.
func NewRegistrationHandler(base *BaseHandler, service *registrations.Service) *RegistrationHandler {
	return &RegistrationHandler{
		BaseHandler: base,
		service:     service,
		gateways: mutation.NewPool(mutation.GatewayConfig[*registrationDraft]{
			Store: &registrationStore{svc: service},
		}),
	}
}

// Register handles POST /registrations.
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req dto.CreateRegistrationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	eventID, err := id.Parse(req.EventID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid eventId format"))
		return
	}

	draft := &registrationDraft{
		EventID:  eventID,
		Attendee: req.Attendee,
		Email:    req.Email,
	}

	result := h.gateways.Get(submissionKey(c, h.BaseHandler)).Submit(c.Request.Context(), mutation.Add, draft)
	if !result.OK {
		if result.Reason == mutation.ReasonPending {
			h.Error(c, apperror.NewSubmissionPending())
			return
		}
		h.Error(c, draft.Err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromRegistration(result.Record.Committed))
}

// Get handles GET /registrations/:id.
func (h *RegistrationHandler) Get(c *gin.Context) {
	regID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	reg, err := h.service.GetByID(c.Request.Context(), regID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromRegistration(reg))
}

// Confirm handles POST /registrations/:id/confirm.
func (h *RegistrationHandler) Confirm(c *gin.Context) {
	regID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	reg, err := h.service.Confirm(c.Request.Context(), regID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromRegistration(reg))
}

// Cancel handles POST /registrations/:id/cancel.
func (h *RegistrationHandler) Cancel(c *gin.Context) {
	regID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	reg, err := h.service.Cancel(c.Request.Context(), regID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromRegistration(reg))
}

// List handles GET /registrations with the listing pipeline.
func (h *RegistrationHandler) List(c *gin.Context) {
	listEntities(c, h.BaseHandler, h.service, registrations.Descriptor(),
		func(r *registrations.Registration) any { return dto.FromRegistration(r) })
}
