package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	transitionCreate  = "create"
	transitionConfirm = "confirm"
	transitionCancel  = "cancel"
	transitionDone    = "complete"
	transitionEdit    = "edit"
	transitionPropose = "propose"
	transitionApprove = "approve"
	transitionReject  = "reject"
)

type BookingDeps struct {
	Bookings     ports.BookingRepo
	Venues       ports.VenueRepo
	Users        ports.UserRepo
	Availability ports.AvailabilityChecker
	Notifier     ports.BookingNotifier
	Publisher    ports.EventPublisher
	Ledger       ports.NoticeLedger
	Observer     ports.BookingObserver
	Metrics      ports.Metrics
}

type BookingService struct {
	bookingRepo  ports.BookingRepo
	venueRepo    ports.VenueRepo
	userRepo     ports.UserRepo
	availability ports.AvailabilityChecker
	notifier     ports.BookingNotifier
	publisher    ports.EventPublisher
	ledger       ports.NoticeLedger
	observer     ports.BookingObserver
	metrics      ports.Metrics
	logger       logger.Logger
	settings     BookingSettings

	now   func() time.Time
	async func(func())
}

func NewBookingService(deps BookingDeps, settings BookingSettings, logger logger.Logger) *BookingService {
	settings = settings.withDefaults()
	return &BookingService{
		bookingRepo:  deps.Bookings,
		venueRepo:    deps.Venues,
		userRepo:     deps.Users,
		availability: deps.Availability,
		notifier:     deps.Notifier,
		publisher:    deps.Publisher,
		ledger:       deps.Ledger,
		observer:     deps.Observer,
		metrics:      deps.Metrics,
		logger:       logger,
		settings:     settings,
		now:          settings.clock(),
		async:        func(f func()) { go f() },
	}
}

func (s *BookingService) view(b *domain.Booking) *domain.BookingView {
	v := b.View(s.now(), s.settings.ApprovalSLA)
	return &v
}

func (s *BookingService) Create(ctx context.Context, in domain.CreateBookingInput) (*domain.BookingView, error) {
	if strings.TrimSpace(in.EventName) == "" {
		return nil, fmt.Errorf("%w: event_name is required", domain.ErrValidation)
	}
	if in.EventDate.IsZero() {
		return nil, fmt.Errorf("%w: event_date is required", domain.ErrValidation)
	}
	if in.GuestCount <= 0 {
		return nil, fmt.Errorf("%w: guest_count must be positive", domain.ErrValidation)
	}

	times := domain.FieldChanges{StartTime: in.StartTime, EndTime: in.EndTime, EventDate: &in.EventDate}
	if err := times.Normalize(); err != nil {
		return nil, err
	}
	if err := domain.ValidateTimeRange(times.StartTime, times.EndTime); err != nil {
		return nil, err
	}
	now := s.now()
	if domain.IsPastDate(*times.EventDate, now) {
		return nil, domain.ErrPastDate
	}

	venue, err := s.venueRepo.GetByID(ctx, in.VenueID)
	if err != nil {
		return nil, fmt.Errorf("check venue: %w", err)
	}
	if err = checkCapacity(venue, in.GuestCount); err != nil {
		return nil, err
	}
	if in.GuestCount < venue.CapacityMin {
		return nil, fmt.Errorf("%w: guest_count is below the venue minimum of %d", domain.ErrValidation, venue.CapacityMin)
	}

	if _, err = s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	decision, err := s.availability.Check(ctx, domain.AvailabilityQuery{
		VenueID:   venue.ID,
		Date:      *times.EventDate,
		StartTime: times.StartTime,
		EndTime:   times.EndTime,
		ActorID:   in.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if err = decision.Err(); err != nil {
		return nil, err
	}

	// Postgres keeps microseconds; the local copy must carry the version the row will have.
	stamp := now.UTC().Truncate(time.Microsecond)
	b := &domain.Booking{
		ID:             uuid.New().String(),
		VenueID:        venue.ID,
		VenueOwnerID:   venue.OwnerID,
		UserID:         in.UserID,
		EventName:      strings.TrimSpace(in.EventName),
		EventType:      strings.TrimSpace(in.EventType),
		EventDate:      *times.EventDate,
		GuestCount:     in.GuestCount,
		StartTime:      times.StartTime,
		EndTime:        times.EndTime,
		VenueRate:      venue.Rate,
		ReservationFee: venue.ReservationFee(),
		Currency:       venue.Currency,
		Status:         domain.BookingStatusPending,
		CreatedAt:      stamp,
		UpdatedAt:      stamp,
	}
	if err = b.DeriveSchedule(s.settings.Location); err != nil {
		return nil, err
	}

	err = s.bookingRepo.Create(domain.WithActor(ctx, in.UserID), b)
	s.metrics.ObserveTransition(transitionCreate, err)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	s.observer.Observe(b)

	s.logger.Info("booking created",
		logger.String("booking_id", b.ID),
		logger.String("venue_id", b.VenueID),
		logger.String("user_id", b.UserID),
	)

	s.announce(ctx, domain.NewBookingEvent(domain.EventBookingCreated, b, in.UserID, now),
		b, venue.OwnerID, s.notifier.NotifyBookingCreated)

	view := s.view(b)
	if decision.Warning != "" {
		view.Warning = decision.Warning
		s.logger.Warn("booking created without full availability check",
			logger.String("booking_id", b.ID),
		)
	}
	return view, nil
}

func (s *BookingService) Get(ctx context.Context, id, actorID string) (*domain.BookingView, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if !b.IsParticipant(actorID) {
		return nil, domain.ErrForbidden
	}
	return s.view(b), nil
}

func (s *BookingService) ListByGuest(ctx context.Context, userID string, f domain.BookingFilter) ([]*domain.BookingView, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return s.filterViews(bookings, f), nil
}

func (s *BookingService) ListByVenue(ctx context.Context, venueID, actorID string, f domain.BookingFilter) ([]*domain.BookingView, error) {
	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	if venue.OwnerID != actorID {
		return nil, domain.ErrForbidden
	}

	bookings, err := s.bookingRepo.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return s.filterViews(bookings, f), nil
}

func (s *BookingService) filterViews(bookings []*domain.Booking, f domain.BookingFilter) []*domain.BookingView {
	res := make([]*domain.BookingView, 0, len(bookings))
	for _, b := range bookings {
		v := s.view(b)
		if f.Match(v.EffectiveStatus) {
			res = append(res, v)
		}
	}
	return res
}

// Confirm is the owner accepting a pending request. Times must be set and the slot free.
func (s *BookingService) Confirm(ctx context.Context, id, actorID string) (*domain.BookingView, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b.VenueOwnerID != actorID {
		return nil, domain.ErrForbidden
	}

	switch b.Effective(s.now(), s.settings.ApprovalSLA) {
	case domain.BookingStatusPending:
	case domain.BookingStatusExpired:
		return nil, domain.ErrBookingExpired
	default:
		return nil, domain.ErrBookingNotPending
	}

	if b.StartTime == nil || b.EndTime == nil {
		return nil, domain.ErrTimesRequired
	}

	if _, err = s.ensureAvailable(ctx, b, b.EventDate, b.StartTime, b.EndTime, actorID); err != nil {
		return nil, err
	}

	next := *b
	next.Status = domain.BookingStatusConfirmed
	if err = s.save(ctx, &next, b.UpdatedAt, transitionConfirm, actorID); err != nil {
		return nil, err
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", next.ID),
		logger.String("venue_id", next.VenueID),
	)
	s.announce(ctx, domain.NewBookingEvent(domain.EventBookingConfirmed, &next, actorID, s.now()),
		&next, next.UserID, s.notifier.NotifyBookingConfirmed)

	return s.view(&next), nil
}

// Cancel can be called by either side while the booking is still active.
func (s *BookingService) Cancel(ctx context.Context, id, actorID string) (*domain.BookingView, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if !b.IsParticipant(actorID) {
		return nil, domain.ErrForbidden
	}

	switch b.Effective(s.now(), s.settings.ApprovalSLA) {
	case domain.BookingStatusPending, domain.BookingStatusConfirmed:
	default:
		return nil, domain.ErrBookingNotCancellable
	}

	next := *b
	next.Status = domain.BookingStatusCancelled
	next.ClearApproval()
	if err = s.save(ctx, &next, b.UpdatedAt, transitionCancel, actorID); err != nil {
		return nil, err
	}

	recipient := next.VenueOwnerID
	if actorID == next.VenueOwnerID {
		recipient = next.UserID
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", next.ID),
		logger.String("actor_id", actorID),
	)
	s.announce(ctx, domain.NewBookingEvent(domain.EventBookingCancelled, &next, actorID, s.now()),
		&next, recipient, s.notifier.NotifyBookingCancelled)

	return s.view(&next), nil
}

// Complete persists completion of a confirmed booking.
func (s *BookingService) Complete(ctx context.Context, id, actorID string) (*domain.BookingView, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b.VenueOwnerID != actorID {
		return nil, domain.ErrForbidden
	}
	if b.Status != domain.BookingStatusConfirmed {
		return nil, domain.ErrBookingNotConfirmed
	}

	next := *b
	next.Status = domain.BookingStatusCompleted
	next.ClearApproval()
	if err = s.save(ctx, &next, b.UpdatedAt, transitionDone, actorID); err != nil {
		return nil, err
	}

	s.announce(ctx, domain.NewBookingEvent(domain.EventBookingCompleted, &next, actorID, s.now()),
		&next, "", nil)

	return s.view(&next), nil
}

// ensureAvailable returns the warning of an allowed decision so callers can pass it on.
func (s *BookingService) ensureAvailable(
	ctx context.Context,
	b *domain.Booking,
	date time.Time,
	start, end *string,
	actorID string,
) (string, error) {
	decision, err := s.availability.Check(ctx, domain.AvailabilityQuery{
		VenueID:          b.VenueID,
		Date:             date,
		StartTime:        start,
		EndTime:          end,
		ExcludeBookingID: b.ID,
		ActorID:          actorID,
	})
	if err != nil {
		return "", fmt.Errorf("check availability: %w", err)
	}
	if err = decision.Err(); err != nil {
		return "", err
	}
	return decision.Warning, nil
}

// save writes b on behalf of actorID, whose id scopes the row policies of the write.
func (s *BookingService) save(ctx context.Context, b *domain.Booking, version time.Time, transition, actorID string) error {
	err := s.bookingRepo.Save(domain.WithActor(ctx, actorID), b, version)
	s.metrics.ObserveTransition(transition, err)
	if err != nil {
		return fmt.Errorf("%s booking: %w", transition, err)
	}
	s.observer.Observe(b)
	return nil
}

type notifyFunc func(ctx context.Context, user *domain.User, b *domain.Booking, venue *domain.Venue)

// announce publishes e and, when send is set, notifies recipientID. Both run in the background
// and failures are only logged.
func (s *BookingService) announce(ctx context.Context, e domain.BookingEvent, b *domain.Booking, recipientID string, send notifyFunc) {
	ctx = context.WithoutCancel(ctx)
	snapshot := *b

	s.async(func() {
		if err := s.publisher.Publish(ctx, e); err != nil {
			s.logger.Warn("failed to publish booking event",
				logger.String("booking_id", e.BookingID),
				logger.String("type", string(e.Type)),
				logger.String("error", err.Error()),
			)
		}

		if send == nil || recipientID == "" {
			return
		}

		user, err := s.userRepo.GetByID(ctx, recipientID)
		if err != nil {
			s.logger.Error("failed to get user for notification",
				logger.String("user_id", recipientID),
				logger.String("error", err.Error()),
			)
			return
		}

		venue, err := s.venueRepo.GetByID(ctx, snapshot.VenueID)
		if err != nil {
			s.logger.Error("failed to get venue for notification",
				logger.String("venue_id", snapshot.VenueID),
				logger.String("error", err.Error()),
			)
			return
		}

		send(ctx, user, &snapshot, venue)
	})
}

// NotifyExpired tells guests about pending requests that now read as expired.
// The stored status is left untouched; each booking is announced once.
func (s *BookingService) NotifyExpired(ctx context.Context) ([]*domain.Booking, error) {
	now := s.now()
	stale, err := s.bookingRepo.ListStalePending(ctx, now.Add(-s.settings.ApprovalSLA).UTC(), domain.DayOf(now))
	if err != nil {
		return nil, fmt.Errorf("list stale pending: %w", err)
	}

	var noticed []*domain.Booking
	for _, b := range stale {
		if b.Effective(now, s.settings.ApprovalSLA) != domain.BookingStatusExpired {
			continue
		}

		first, err := s.ledger.MarkOnce(ctx, "booking-expired:"+b.ID)
		if err != nil {
			s.logger.Error("failed to record expiry notice",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if !first {
			continue
		}

		noticed = append(noticed, b)
		e := domain.NewBookingEvent(domain.EventBookingExpired, b, "", now)
		e.Status = domain.BookingStatusExpired
		s.announce(ctx, e, b, b.UserID, s.notifier.NotifyBookingExpired)
	}

	if len(noticed) > 0 {
		s.logger.Info("expired bookings announced",
			logger.Int("count", len(noticed)),
		)
	}

	return noticed, nil
}

func checkCapacity(venue *domain.Venue, guests int) error {
	if guests > venue.CapacityMax {
		return fmt.Errorf("%w (max %d)", domain.ErrCapacityExceeded, venue.CapacityMax)
	}
	return nil
}

func isPolicyRejection(err error) bool {
	return errors.Is(err, domain.ErrPermissionDenied)
}
