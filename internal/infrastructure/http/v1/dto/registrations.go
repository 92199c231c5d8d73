package dto

import (
	"eventum/internal/domain/registrations"
)

// CreateRegistrationRequest is the DTO for registering an attendee.
type CreateRegistrationRequest struct {
	EventID  string `json:"eventId" binding:"required"`
	Attendee string `json:"attendee" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

// RegistrationResponse is the DTO for returning registration data.
type RegistrationResponse struct {
	BaseResponse
	EventID  string `json:"eventId"`
	Attendee string `json:"attendee"`
	Email    string `json:"email"`
	Status   string `json:"status"`
}

func FromRegistration(r *registrations.Registration) RegistrationResponse {
	return RegistrationResponse{
		BaseResponse: FromBase(r.Base),
		EventID:      r.EventID.String(),
		Attendee:     r.Attendee,
		Email:        r.Email,
		Status:       string(r.Status),
	}
}
