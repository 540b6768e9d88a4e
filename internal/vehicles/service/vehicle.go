package service

import (
	"context"
	"errors"
	"time"

	vehicleerrors "travelease/internal/vehicles/errors"
	"travelease/internal/vehicles/repository"
	"travelease/pkg/config"
	apperrors "travelease/pkg/errors"
	"travelease/pkg/events"
	"travelease/pkg/model"
)

type VehicleService interface {
	List(ctx context.Context, filter repository.ListFilter) ([]*model.Vehicle, error)
	GetByID(ctx context.Context, id string) (*model.Vehicle, error)
	Add(ctx context.Context, vehicle *model.Vehicle) (string, error)
	GetByOwner(ctx context.Context, email string) ([]*model.Vehicle, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type vehicleService struct {
	repo      repository.VehicleRepository
	publisher events.Publisher
	cfg       *config.Config
}

func NewVehicleService(repo repository.VehicleRepository, publisher events.Publisher, cfg *config.Config) VehicleService {
	return &vehicleService{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *vehicleService) List(ctx context.Context, filter repository.ListFilter) ([]*model.Vehicle, error) {
	vehicles, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.cfg.Log.Error("Failed to list vehicles",
			"category", filter.Category,
			"location", filter.Location,
			"sort", filter.Sort,
			"error", err,
		)
		return nil, apperrors.Internal("Error fetching vehicles", err)
	}
	return vehicles, nil
}

// GetByID returns (nil, nil) when no vehicle matches a well-formed id; the
// caller serializes that as a null payload. A malformed id surfaces as the
// same generic fetch error as any other failure.
func (s *vehicleService) GetByID(ctx context.Context, id string) (*model.Vehicle, error) {
	vehicle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleerrors.ErrNotFound) {
			return nil, nil
		}
		s.cfg.Log.Error("Failed to fetch vehicle", "id", id, "error", err)
		return nil, apperrors.Internal("Error fetching vehicle", err)
	}
	return vehicle, nil
}

func (s *vehicleService) Add(ctx context.Context, vehicle *model.Vehicle) (string, error) {
	// The creation timestamp is server-owned; any caller-supplied value is
	// discarded.
	vehicle.ID = ""
	vehicle.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	id, err := s.repo.Insert(ctx, vehicle)
	if err != nil {
		s.cfg.Log.Error("Failed to add vehicle", "error", err)
		return "", apperrors.Internal("Failed to add vehicle", err)
	}

	s.publishCreated(ctx, events.TypeVehicleCreated, id, vehicle.UserEmail, vehicle.CreatedAt)
	s.cfg.Log.Info("Vehicle added successfully", "id", id, "owner", vehicle.UserEmail)
	return id, nil
}

func (s *vehicleService) GetByOwner(ctx context.Context, email string) ([]*model.Vehicle, error) {
	vehicles, err := s.repo.FindByOwnerEmail(ctx, email)
	if err != nil {
		s.cfg.Log.Error("Failed to list vehicles by owner", "email", email, "error", err)
		return nil, apperrors.Internal("Error fetching vehicles", err)
	}
	return vehicles, nil
}

// Update merges the supplied fields into the stored document. Identity and
// the creation timestamp are immutable and stripped from the input. Matching
// zero documents still reports success.
func (s *vehicleService) Update(ctx context.Context, id string, fields map[string]any) error {
	delete(fields, "id")
	delete(fields, "_id")
	delete(fields, "createdAt")

	matched, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		s.cfg.Log.Error("Failed to update vehicle", "id", id, "error", err)
		return apperrors.Internal("Failed to update vehicle", err)
	}

	if matched == 0 {
		s.cfg.Log.Warn("Vehicle update matched no documents", "id", id)
	} else {
		s.cfg.Log.Info("Vehicle updated successfully", "id", id)
	}
	return nil
}

func (s *vehicleService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.cfg.Log.Error("Failed to delete vehicle", "id", id, "error", err)
		return apperrors.Internal("Failed to delete vehicle", err)
	}

	if deleted == 0 {
		s.cfg.Log.Warn("Vehicle delete matched no documents", "id", id)
	} else {
		s.cfg.Log.Info("Vehicle deleted successfully", "id", id)
	}
	return nil
}

func (s *vehicleService) publishCreated(ctx context.Context, eventType, id, email string, at time.Time) {
	err := s.publisher.Publish(ctx, eventType, id, events.RecordCreated{
		ID:        id,
		UserEmail: email,
		CreatedAt: at,
	})
	if err != nil {
		// Event delivery never fails the request.
		s.cfg.Log.Warn("Failed to publish event", "type", eventType, "id", id, "error", err)
	}
}
