package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const coarseCheckWarning = "availability could not be fully verified, the owner will re-check before confirming"

type AvailabilityService struct {
	repo       ports.AvailabilityRepo
	venueRepo  ports.VenueRepo
	metrics    ports.Metrics
	logger     logger.Logger
	failClosed bool
	now        func() time.Time
}

func NewAvailabilityService(
	repo ports.AvailabilityRepo,
	venueRepo ports.VenueRepo,
	metrics ports.Metrics,
	settings BookingSettings,
	logger logger.Logger,
) *AvailabilityService {
	settings = settings.withDefaults()
	return &AvailabilityService{
		repo:       repo,
		venueRepo:  venueRepo,
		metrics:    metrics,
		logger:     logger,
		failClosed: settings.AvailabilityFailClosed,
		now:        settings.clock(),
	}
}

// Check runs the availability steps in order and stops at the first decision:
// past date, coarse same-day check for non-owners, then the overlap procedure.
func (s *AvailabilityService) Check(ctx context.Context, q domain.AvailabilityQuery) (domain.AvailabilityDecision, error) {
	decision, err := s.check(ctx, q)
	s.metrics.ObserveAvailability(decision, err)
	return decision, err
}

func (s *AvailabilityService) check(ctx context.Context, q domain.AvailabilityQuery) (domain.AvailabilityDecision, error) {
	if domain.IsPastDate(q.Date, s.now()) {
		return rejected(domain.ConflictPastDate), nil
	}

	venue, err := s.venueRepo.GetByID(ctx, q.VenueID)
	if err != nil {
		return domain.AvailabilityDecision{}, fmt.Errorf("get venue: %w", err)
	}

	coarseSkipped := false
	if q.ActorID != venue.OwnerID {
		exists, err := s.repo.HasConfirmedOnDate(ctx, q.VenueID, q.Date, q.ExcludeBookingID)
		switch {
		case errors.Is(err, domain.ErrPermissionDenied):
			coarseSkipped = true
		case err != nil:
			return domain.AvailabilityDecision{}, fmt.Errorf("same day check: %w", err)
		case exists:
			return rejected(domain.ConflictSameDayConfirmed), nil
		}
	}

	overlaps, err := s.repo.CheckOverlap(ctx, q)
	if err != nil {
		s.logger.Warn("overlap check unavailable",
			logger.String("venue_id", q.VenueID),
			logger.String("date", q.Date.Format(domain.DateLayout)),
			logger.Any("fail_closed", s.failClosed),
			logger.String("error", err.Error()),
		)
		if s.failClosed {
			return domain.AvailabilityDecision{}, fmt.Errorf("%w: %v", domain.ErrAvailabilityUnknown, err)
		}

		d := domain.AvailabilityDecision{Available: true}
		if coarseSkipped {
			d.Warning = coarseCheckWarning
		}
		return d, nil
	}

	if overlaps {
		return rejected(domain.ConflictTimeOverlap), nil
	}

	return domain.AvailabilityDecision{Available: true}, nil
}

func rejected(reason domain.ConflictReason) domain.AvailabilityDecision {
	return domain.AvailabilityDecision{Available: false, Reason: reason}
}
