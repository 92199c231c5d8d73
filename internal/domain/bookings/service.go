package bookings

import (
	"context"

	"eventum/internal/core/apperror"
	"eventum/internal/core/id"
	"eventum/internal/core/tx"
	"eventum/internal/domain"
)

// Service provides business logic for venue bookings.
type Service struct {
	*domain.EntityService[*VenueBooking]
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new venue booking service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewEntityService(domain.EntityServiceConfig[*VenueBooking]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "venue booking",
	})
	return &Service{EntityService: base, repo: repo, txManager: txManager}
}

// Confirm confirms a pending booking after checking the venue is free on
// the requested date.
func (s *Service) Confirm(ctx context.Context, bookingID id.ID) (*VenueBooking, error) {
	booking, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status == StatusConfirmed {
		return booking, nil
	}
	if booking.Status == StatusCancelled {
		return nil, apperror.NewBusinessRule(apperror.CodeBusinessRule, "cancelled booking cannot be confirmed")
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		taken, err := s.repo.ExistsConfirmedForDate(ctx, booking.VenueName, booking.EventDate)
		if err != nil {
			return err
		}
		if taken {
			return apperror.NewVenueUnavailable(booking.VenueName, booking.EventDate.Format("2006-01-02"))
		}
		booking.Status = StatusConfirmed
		return s.repo.Update(ctx, booking)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// Cancel cancels a booking.
func (s *Service) Cancel(ctx context.Context, bookingID id.ID) (*VenueBooking, error) {
	booking, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	booking.Status = StatusCancelled
	if err := s.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}
