package bookings

import (
	"context"
	"fmt"
	"time"

	"ballroomly/pkg/logger"
)

// EventPublisher receives booking lifecycle events. Publishing is
// best-effort: failures never roll back the booking operation.
type EventPublisher interface {
	BookingCreated(ctx context.Context, booking *Booking) error
	BookingStatusChanged(ctx context.Context, booking *Booking, previous Status) error
}

type Service interface {
	ListBookings(ctx context.Context) ([]BookingResponse, error)
	GetBooking(ctx context.Context, id uint) (*BookingResponse, error)
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, id uint, rawStatus string) (*BookingResponse, error)
}

type service struct {
	repo      Repository
	publisher EventPublisher
	logger    *logger.Logger
}

// NewService builds the booking service. publisher may be nil when no event
// pipeline is configured.
func NewService(repo Repository, publisher EventPublisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		logger:    logger.GetDefault(),
	}
}

func (s *service) ListBookings(ctx context.Context) ([]BookingResponse, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]BookingResponse, 0, len(list))
	for i := range list {
		responses = append(responses, *toResponse(&list[i]))
	}
	return responses, nil
}

func (s *service) GetBooking(ctx context.Context, id uint) (*BookingResponse, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(booking), nil
}

func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error) {
	booking := &Booking{
		BallroomID:      req.BallroomID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		EventDate:       req.EventDate,
		EventType:       req.EventType,
		GuestCount:      req.GuestCount,
		SpecialRequests: req.SpecialRequests,
		Status:          StatusPending,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.LogBookingCreated(ctx, booking.ID, booking.BallroomID)

	if s.publisher != nil {
		if err := s.publisher.BookingCreated(ctx, booking); err != nil {
			s.logger.WithError(err).WarnContext(ctx, "failed to publish booking created event",
				"booking_id", booking.ID)
		}
	}

	// Re-read to resolve the ballroom name for the response.
	created, err := s.repo.GetByID(ctx, booking.ID)
	if err != nil {
		return toResponse(booking), nil
	}
	return toResponse(created), nil
}

func (s *service) UpdateBookingStatus(ctx context.Context, id uint, rawStatus string) (*BookingResponse, error) {
	target, err := ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := booking.Status
	if !previous.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, previous, target)
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateStatus(ctx, id, target, now); err != nil {
		return nil, err
	}

	booking.Status = target
	booking.UpdatedAt = &now

	s.logger.LogBookingStatusChanged(ctx, id, string(previous), string(target))

	if s.publisher != nil {
		if err := s.publisher.BookingStatusChanged(ctx, booking, previous); err != nil {
			s.logger.WithError(err).WarnContext(ctx, "failed to publish status change event",
				"booking_id", id)
		}
	}

	return toResponse(booking), nil
}
