package service

import (
	"context"
	"time"

	"travelease/internal/bookings/repository"
	"travelease/pkg/config"
	apperrors "travelease/pkg/errors"
	"travelease/pkg/events"
	"travelease/pkg/model"
)

type BookingService interface {
	Book(ctx context.Context, booking *model.Booking) (string, error)
	GetByUser(ctx context.Context, email string) ([]*model.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	publisher events.Publisher
	cfg       *config.Config
}

func NewBookingService(repo repository.BookingRepository, publisher events.Publisher, cfg *config.Config) BookingService {
	return &bookingService{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Book persists the reservation as-is. The referenced vehicle is not checked
// for existence or availability.
func (s *bookingService) Book(ctx context.Context, booking *model.Booking) (string, error) {
	// The booking timestamp is server-owned; any caller-supplied value is
	// discarded.
	booking.ID = ""
	booking.BookedAt = time.Now().UTC().Truncate(time.Millisecond)

	id, err := s.repo.Insert(ctx, booking)
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return "", apperrors.Internal("Failed to create booking", err)
	}

	s.publishCreated(ctx, id, booking)
	s.cfg.Log.Info("Booking created successfully", "id", id, "user", booking.UserEmail)
	return id, nil
}

func (s *bookingService) GetByUser(ctx context.Context, email string) ([]*model.Booking, error) {
	bookings, err := s.repo.FindByUserEmail(ctx, email)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings by user", "email", email, "error", err)
		return nil, apperrors.Internal("Error fetching bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) publishCreated(ctx context.Context, id string, booking *model.Booking) {
	err := s.publisher.Publish(ctx, events.TypeBookingCreated, id, events.RecordCreated{
		ID:        id,
		UserEmail: booking.UserEmail,
		CreatedAt: booking.BookedAt,
	})
	if err != nil {
		// Event delivery never fails the request.
		s.cfg.Log.Warn("Failed to publish event", "type", events.TypeBookingCreated, "id", id, "error", err)
	}
}
