package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/service/ports"
)

type VenueService struct {
	repo        ports.VenueRepo
	bookingRepo ports.BookingRepo
	userRepo    ports.UserRepo
}

func NewVenueService(repo ports.VenueRepo, bookingRepo ports.BookingRepo, userRepo ports.UserRepo) *VenueService {
	return &VenueService{
		repo:        repo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
	}
}

// Create registers a venue from the onboarding form.
func (s *VenueService) Create(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error) {
	if err := validateVenue(&input); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, input.OwnerID); err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}

	venue := &domain.Venue{
		ID:                    uuid.New().String(),
		OwnerID:               input.OwnerID,
		Name:                  input.Name,
		Description:           input.Description,
		Address:               input.Address,
		City:                  input.City,
		Latitude:              input.Latitude,
		Longitude:             input.Longitude,
		CapacityMin:           input.CapacityMin,
		CapacityMax:           input.CapacityMax,
		Rate:                  input.Rate,
		Currency:              input.Currency,
		ReservationFeePercent: input.ReservationFeePercent,
		ImageURL:              input.ImageURL,
	}

	if err := s.repo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}

	return venue, nil
}

func validateVenue(in *domain.CreateVenueInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.City = strings.TrimSpace(in.City)
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))

	switch {
	case in.Name == "":
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	case in.Address == "":
		return fmt.Errorf("%w: address is required", domain.ErrValidation)
	case in.CapacityMin < 1:
		return fmt.Errorf("%w: capacity_min must be at least 1", domain.ErrValidation)
	case in.CapacityMax < in.CapacityMin:
		return fmt.Errorf("%w: capacity_max must not be below capacity_min", domain.ErrValidation)
	case in.Rate <= 0:
		return fmt.Errorf("%w: rate must be positive", domain.ErrValidation)
	case len(in.Currency) != 3:
		return fmt.Errorf("%w: currency must be a 3-letter code", domain.ErrValidation)
	case in.ReservationFeePercent < 0 || in.ReservationFeePercent > 100:
		return fmt.Errorf("%w: reservation_fee_percent must be between 0 and 100", domain.ErrValidation)
	}

	if (in.Latitude == nil) != (in.Longitude == nil) {
		return fmt.Errorf("%w: latitude and longitude must be set together", domain.ErrValidation)
	}
	if in.Latitude != nil && (*in.Latitude < -90 || *in.Latitude > 90 || *in.Longitude < -180 || *in.Longitude > 180) {
		return fmt.Errorf("%w: coordinates out of range", domain.ErrValidation)
	}

	return nil
}

func (s *VenueService) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VenueService) GetDetails(ctx context.Context, id string) (*domain.VenueDetails, error) {
	venue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	counts, err := s.bookingRepo.CountByStatus(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return &domain.VenueDetails{Venue: *venue, Bookings: counts}, nil
}

func (s *VenueService) List(ctx context.Context, f domain.VenueFilter) ([]*domain.Venue, error) {
	if f.MinGuests < 0 {
		return nil, fmt.Errorf("%w: guests must not be negative", domain.ErrValidation)
	}
	return s.repo.List(ctx, f)
}

func (s *VenueService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Venue, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}
