package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var testNow = time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func datePtr(t time.Time) *time.Time { return &t }

func testVenue() *domain.Venue {
	return &domain.Venue{
		ID:                    "v1",
		OwnerID:               "owner",
		Name:                  "Riverside Loft",
		CapacityMin:           10,
		CapacityMax:           100,
		Rate:                  1000,
		Currency:              "USD",
		ReservationFeePercent: 10,
	}
}

func pendingBooking() *domain.Booking {
	b := &domain.Booking{
		ID:             "b1",
		VenueID:        "v1",
		VenueOwnerID:   "owner",
		UserID:         "guest",
		EventName:      "Wedding",
		EventType:      "wedding",
		EventDate:      time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		GuestCount:     50,
		StartTime:      strPtr("18:00:00"),
		EndTime:        strPtr("23:00:00"),
		VenueRate:      1000,
		ReservationFee: 100,
		Currency:       "USD",
		Status:         domain.BookingStatusPending,
		CreatedAt:      testNow.Add(-time.Hour),
		UpdatedAt:      testNow.Add(-time.Hour),
	}
	_ = b.DeriveSchedule(time.UTC)
	return b
}

func confirmedBooking() *domain.Booking {
	b := pendingBooking()
	b.Status = domain.BookingStatusConfirmed
	b.CreatedAt = testNow.Add(-100 * time.Hour)
	return b
}

type bookingEnv struct {
	bookings     *mocks.MockBookingRepo
	venues       *mocks.MockVenueRepo
	users        *mocks.MockUserRepo
	availability *mocks.MockAvailabilityChecker
	notifier     *mocks.MockBookingNotifier
	publisher    *mocks.MockEventPublisher
	ledger       *mocks.MockNoticeLedger
	observer     *mocks.MockBookingObserver
	metrics      *mocks.MockMetrics
	svc          *BookingService
}

// newBookingEnv builds a service with a fixed clock. Background announcements are
// dropped unless a test calls runAnnouncements.
func newBookingEnv(t *testing.T) *bookingEnv {
	t.Helper()
	env := &bookingEnv{
		bookings:     mocks.NewMockBookingRepo(t),
		venues:       mocks.NewMockVenueRepo(t),
		users:        mocks.NewMockUserRepo(t),
		availability: mocks.NewMockAvailabilityChecker(t),
		notifier:     mocks.NewMockBookingNotifier(t),
		publisher:    mocks.NewMockEventPublisher(t),
		ledger:       mocks.NewMockNoticeLedger(t),
		observer:     mocks.NewMockBookingObserver(t),
		metrics:      mocks.NewMockMetrics(t),
	}

	env.svc = NewBookingService(BookingDeps{
		Bookings:     env.bookings,
		Venues:       env.venues,
		Users:        env.users,
		Availability: env.availability,
		Notifier:     env.notifier,
		Publisher:    env.publisher,
		Ledger:       env.ledger,
		Observer:     env.observer,
		Metrics:      env.metrics,
	}, BookingSettings{Location: time.UTC}, newTestLogger(t))
	env.svc.now = func() time.Time { return testNow }
	env.svc.async = func(func()) {}

	env.metrics.EXPECT().ObserveTransition(mock.Anything, mock.Anything).Return().Maybe()
	env.observer.EXPECT().Observe(mock.Anything).Return().Maybe()

	return env
}

func (e *bookingEnv) runAnnouncements() {
	e.svc.async = func(f func()) { f() }
}

func available() domain.AvailabilityDecision {
	return domain.AvailabilityDecision{Available: true}
}

// --- Create ---

func TestBookingService_Create_Success(t *testing.T) {
	env := newBookingEnv(t)
	venue := testVenue()

	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	env.users.EXPECT().GetByID(mock.Anything, "guest").Return(&domain.User{ID: "guest"}, nil)
	env.availability.EXPECT().Check(mock.Anything, mock.MatchedBy(func(q domain.AvailabilityQuery) bool {
		return q.VenueID == "v1" && q.ActorID == "guest" && *q.StartTime == "18:00:00" && q.ExcludeBookingID == ""
	})).Return(available(), nil)
	env.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	view, err := env.svc.Create(context.Background(), domain.CreateBookingInput{
		VenueID:    "v1",
		UserID:     "guest",
		EventName:  "  Wedding ",
		EventDate:  time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		GuestCount: 50,
		StartTime:  strPtr("18:00"),
		EndTime:    strPtr("23:00"),
	})

	require.NoError(t, err)
	b := view.Booking
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "Wedding", b.EventName)
	assert.Equal(t, domain.BookingStatusPending, b.Status)
	assert.Equal(t, domain.BookingStatusPending, view.EffectiveStatus)
	assert.Equal(t, "owner", b.VenueOwnerID)
	assert.Equal(t, "18:00:00", *b.StartTime)
	assert.Equal(t, "23:00:00", *b.EndTime)
	assert.InDelta(t, 100.0, b.ReservationFee, 0.001)
	require.NotNil(t, b.EventStartAt)
	assert.Equal(t, time.Date(2026, 7, 10, 18, 0, 0, 0, time.UTC), *b.EventStartAt)
	assert.Empty(t, view.Warning)
}

func TestBookingService_Create_VersionHasDatabasePrecision(t *testing.T) {
	env := newBookingEnv(t)
	env.svc.now = func() time.Time { return testNow.Add(1234567 * time.Nanosecond) }

	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	env.users.EXPECT().GetByID(mock.Anything, "guest").Return(&domain.User{ID: "guest"}, nil)
	env.availability.EXPECT().Check(mock.Anything, mock.Anything).Return(available(), nil)

	var created *domain.Booking
	env.bookings.EXPECT().Create(mock.MatchedBy(func(ctx context.Context) bool {
		return domain.ActorFrom(ctx) == "guest"
	}), mock.Anything).
		Run(func(_ context.Context, b *domain.Booking) { created = b }).
		Return(nil)

	_, err := env.svc.Create(context.Background(), domain.CreateBookingInput{
		VenueID: "v1", UserID: "guest", EventName: "Party",
		EventDate: time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC), GuestCount: 20,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	want := testNow.Add(1234 * time.Microsecond)
	assert.Equal(t, want, created.UpdatedAt)
	assert.Equal(t, want, created.CreatedAt)
}

func TestBookingService_Create_UnverifiedAvailabilityCarriesWarning(t *testing.T) {
	env := newBookingEnv(t)

	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	env.users.EXPECT().GetByID(mock.Anything, "guest").Return(&domain.User{ID: "guest"}, nil)
	env.availability.EXPECT().Check(mock.Anything, mock.Anything).
		Return(domain.AvailabilityDecision{Available: true, Warning: coarseCheckWarning}, nil)
	env.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	view, err := env.svc.Create(context.Background(), domain.CreateBookingInput{
		VenueID: "v1", UserID: "guest", EventName: "Party",
		EventDate: time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC), GuestCount: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, coarseCheckWarning, view.Warning)
	assert.Nil(t, view.Booking.EventStartAt)
}

func TestBookingService_Create_Conflict(t *testing.T) {
	env := newBookingEnv(t)

	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	env.users.EXPECT().GetByID(mock.Anything, "guest").Return(&domain.User{ID: "guest"}, nil)
	env.availability.EXPECT().Check(mock.Anything, mock.Anything).
		Return(domain.AvailabilityDecision{Reason: domain.ConflictSameDayConfirmed}, nil)

	_, err := env.svc.Create(context.Background(), domain.CreateBookingInput{
		VenueID: "v1", UserID: "guest", EventName: "Party",
		EventDate: time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC), GuestCount: 20,
	})

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ConflictSameDayConfirmed, conflict.Reason)
	assert.ErrorIs(t, err, domain.ErrAvailabilityConflict)
}

func TestBookingService_Create_ValidationBeforeIO(t *testing.T) {
	future := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input domain.CreateBookingInput
		want  error
	}{
		{
			name:  "empty name",
			input: domain.CreateBookingInput{VenueID: "v1", UserID: "guest", EventName: " ", EventDate: future, GuestCount: 10},
			want:  domain.ErrValidation,
		},
		{
			name:  "no guests",
			input: domain.CreateBookingInput{VenueID: "v1", UserID: "guest", EventName: "x", EventDate: future},
			want:  domain.ErrValidation,
		},
		{
			name:  "past date",
			input: domain.CreateBookingInput{VenueID: "v1", UserID: "guest", EventName: "x", EventDate: testNow.AddDate(0, 0, -1), GuestCount: 10},
			want:  domain.ErrPastDate,
		},
		{
			name: "end before start",
			input: domain.CreateBookingInput{VenueID: "v1", UserID: "guest", EventName: "x", EventDate: future, GuestCount: 10,
				StartTime: strPtr("20:00"), EndTime: strPtr("19:00")},
			want: domain.ErrValidation,
		},
		{
			name: "bad clock",
			input: domain.CreateBookingInput{VenueID: "v1", UserID: "guest", EventName: "x", EventDate: future, GuestCount: 10,
				StartTime: strPtr("25:00"), EndTime: strPtr("26:00")},
			want: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newBookingEnv(t)

			_, err := env.svc.Create(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBookingService_Create_Capacity(t *testing.T) {
	for name, guests := range map[string]int{"above max": 101, "below min": 5} {
		t.Run(name, func(t *testing.T) {
			env := newBookingEnv(t)
			env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)

			_, err := env.svc.Create(context.Background(), domain.CreateBookingInput{
				VenueID: "v1", UserID: "guest", EventName: "x",
				EventDate: time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC), GuestCount: guests,
			})

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_Create_NotifiesOwner(t *testing.T) {
	env := newBookingEnv(t)
	env.runAnnouncements()
	venue := testVenue()
	owner := &domain.User{ID: "owner", Username: "olga"}

	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	env.users.EXPECT().GetByID(mock.Anything, "guest").Return(&domain.User{ID: "guest"}, nil)
	env.availability.EXPECT().Check(mock.Anything, mock.Anything).Return(available(), nil)
	env.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	env.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.Type == domain.EventBookingCreated && e.ActorID == "guest"
	})).Return(errors.New("broker down"))
	env.users.EXPECT().GetByID(mock.Anything, "owner").Return(owner, nil)
	env.notifier.EXPECT().NotifyBookingCreated(mock.Anything, owner, mock.Anything, venue).Return()

	_, err := env.svc.Create(context.Background(), domain.CreateBookingInput{
		VenueID: "v1", UserID: "guest", EventName: "Party",
		EventDate: time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC), GuestCount: 20,
	})

	require.NoError(t, err)
}

// --- Read ---

func TestBookingService_Get(t *testing.T) {
	env := newBookingEnv(t)
	b := pendingBooking()
	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil).Times(3)

	view, err := env.svc.Get(context.Background(), "b1", "guest")
	require.NoError(t, err)
	assert.Equal(t, "b1", view.Booking.ID)

	_, err = env.svc.Get(context.Background(), "b1", "owner")
	require.NoError(t, err)

	_, err = env.svc.Get(context.Background(), "b1", "stranger")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_ListByGuest_FiltersByEffectiveStatus(t *testing.T) {
	env := newBookingEnv(t)

	fresh := pendingBooking()
	stale := pendingBooking()
	stale.ID = "b2"
	stale.CreatedAt = testNow.Add(-73 * time.Hour)
	env.bookings.EXPECT().ListByUser(mock.Anything, "guest").Return([]*domain.Booking{fresh, stale}, nil).Twice()

	all, err := env.svc.ListByGuest(context.Background(), "guest", domain.BookingFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	expired, err := env.svc.ListByGuest(context.Background(), "guest", domain.BookingFilter{Status: domain.BookingStatusExpired})
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "b2", expired[0].Booking.ID)
	assert.Equal(t, domain.BookingStatusPending, expired[0].Booking.Status)
}

func TestBookingService_ListByVenue_OwnerOnly(t *testing.T) {
	env := newBookingEnv(t)
	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil).Twice()
	env.bookings.EXPECT().ListByVenue(mock.Anything, "v1").Return([]*domain.Booking{pendingBooking()}, nil).Once()

	views, err := env.svc.ListByVenue(context.Background(), "v1", "owner", domain.BookingFilter{})
	require.NoError(t, err)
	assert.Len(t, views, 1)

	_, err = env.svc.ListByVenue(context.Background(), "v1", "guest", domain.BookingFilter{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// --- Confirm ---

func TestBookingService_Confirm_Success(t *testing.T) {
	env := newBookingEnv(t)
	b := pendingBooking()

	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	env.availability.EXPECT().Check(mock.Anything, mock.MatchedBy(func(q domain.AvailabilityQuery) bool {
		return q.ExcludeBookingID == "b1" && q.ActorID == "owner"
	})).Return(available(), nil)
	env.bookings.EXPECT().Save(mock.MatchedBy(func(ctx context.Context) bool {
		return domain.ActorFrom(ctx) == "owner"
	}), mock.MatchedBy(func(s *domain.Booking) bool {
		return s.Status == domain.BookingStatusConfirmed
	}), b.UpdatedAt).Return(nil)

	view, err := env.svc.Confirm(context.Background(), "b1", "owner")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, view.EffectiveStatus)
	assert.Equal(t, domain.BookingStatusPending, b.Status, "loaded booking must not be mutated")
}

func TestBookingService_Confirm_Rejections(t *testing.T) {
	noTimes := pendingBooking()
	noTimes.StartTime, noTimes.EndTime = nil, nil

	overdue := pendingBooking()
	overdue.CreatedAt = testNow.Add(-80 * time.Hour)

	tests := []struct {
		name    string
		booking *domain.Booking
		actor   string
		want    error
	}{
		{name: "guest cannot confirm", booking: pendingBooking(), actor: "guest", want: domain.ErrForbidden},
		{name: "already confirmed", booking: confirmedBooking(), actor: "owner", want: domain.ErrBookingNotPending},
		{name: "sla elapsed", booking: overdue, actor: "owner", want: domain.ErrBookingExpired},
		{name: "times missing", booking: noTimes, actor: "owner", want: domain.ErrTimesRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newBookingEnv(t)
			env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(tt.booking, nil)

			_, err := env.svc.Confirm(context.Background(), "b1", tt.actor)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBookingService_Confirm_StaleWrite(t *testing.T) {
	env := newBookingEnv(t)

	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
	env.availability.EXPECT().Check(mock.Anything, mock.Anything).Return(available(), nil)
	env.bookings.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).
		Return(fmt.Errorf("save: %w", domain.ErrStaleBooking))

	_, err := env.svc.Confirm(context.Background(), "b1", "owner")

	assert.ErrorIs(t, err, domain.ErrStaleBooking)
}

func TestBookingService_Confirm_SlotTaken(t *testing.T) {
	env := newBookingEnv(t)

	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
	env.availability.EXPECT().Check(mock.Anything, mock.Anything).
		Return(domain.AvailabilityDecision{Reason: domain.ConflictTimeOverlap}, nil)

	_, err := env.svc.Confirm(context.Background(), "b1", "owner")

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ConflictTimeOverlap, conflict.Reason)
}

// --- Cancel / Complete ---

func TestBookingService_Cancel_ByGuestNotifiesOwner(t *testing.T) {
	env := newBookingEnv(t)
	env.runAnnouncements()

	b := confirmedBooking()
	b.NeedsOwnerApproval = true
	b.PendingChanges = domain.PendingChanges{domain.FieldGuestCount: 60}
	owner := &domain.User{ID: "owner"}
	venue := testVenue()

	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	env.bookings.EXPECT().Save(mock.Anything, mock.MatchedBy(func(s *domain.Booking) bool {
		return s.Status == domain.BookingStatusCancelled && s.PendingChanges == nil && !s.NeedsOwnerApproval
	}), b.UpdatedAt).Return(nil)
	env.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.Type == domain.EventBookingCancelled && e.Status == domain.BookingStatusCancelled
	})).Return(nil)
	env.users.EXPECT().GetByID(mock.Anything, "owner").Return(owner, nil)
	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	env.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, owner, mock.Anything, venue).Return()

	view, err := env.svc.Cancel(context.Background(), "b1", "guest")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, view.EffectiveStatus)
}

func TestBookingService_Cancel_Rejections(t *testing.T) {
	done := confirmedBooking()
	done.EventDate = testNow.AddDate(0, 0, -2)

	cancelled := pendingBooking()
	cancelled.Status = domain.BookingStatusCancelled

	for name, b := range map[string]*domain.Booking{"effectively completed": done, "already cancelled": cancelled} {
		t.Run(name, func(t *testing.T) {
			env := newBookingEnv(t)
			env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)

			_, err := env.svc.Cancel(context.Background(), "b1", "guest")

			assert.ErrorIs(t, err, domain.ErrBookingNotCancellable)
		})
	}

	t.Run("stranger", func(t *testing.T) {
		env := newBookingEnv(t)
		env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)

		_, err := env.svc.Cancel(context.Background(), "b1", "stranger")

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestBookingService_Complete(t *testing.T) {
	env := newBookingEnv(t)
	b := confirmedBooking()

	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	env.bookings.EXPECT().Save(mock.Anything, mock.MatchedBy(func(s *domain.Booking) bool {
		return s.Status == domain.BookingStatusCompleted
	}), b.UpdatedAt).Return(nil)

	view, err := env.svc.Complete(context.Background(), "b1", "owner")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCompleted, view.EffectiveStatus)
}

func TestBookingService_Complete_NotConfirmed(t *testing.T) {
	env := newBookingEnv(t)
	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)

	_, err := env.svc.Complete(context.Background(), "b1", "owner")

	assert.ErrorIs(t, err, domain.ErrBookingNotConfirmed)
}

// --- Expiry sweep ---

func TestBookingService_NotifyExpired(t *testing.T) {
	env := newBookingEnv(t)

	overdue := pendingBooking()
	overdue.ID = "overdue"
	overdue.CreatedAt = testNow.Add(-73 * time.Hour)

	alreadyNoticed := pendingBooking()
	alreadyNoticed.ID = "noticed"
	alreadyNoticed.EventDate = testNow.AddDate(0, 0, -3)

	stillPending := pendingBooking()
	stillPending.ID = "fresh"

	env.bookings.EXPECT().
		ListStalePending(mock.Anything, testNow.Add(-72*time.Hour), domain.DayOf(testNow)).
		Return([]*domain.Booking{overdue, alreadyNoticed, stillPending}, nil)
	env.ledger.EXPECT().MarkOnce(mock.Anything, "booking-expired:overdue").Return(true, nil)
	env.ledger.EXPECT().MarkOnce(mock.Anything, "booking-expired:noticed").Return(false, nil)

	noticed, err := env.svc.NotifyExpired(context.Background())

	require.NoError(t, err)
	require.Len(t, noticed, 1)
	assert.Equal(t, "overdue", noticed[0].ID)
	assert.Equal(t, domain.BookingStatusPending, noticed[0].Status, "stored status is never rewritten")
}

func TestBookingService_NotifyExpired_AnnouncesToGuest(t *testing.T) {
	env := newBookingEnv(t)
	env.runAnnouncements()

	overdue := pendingBooking()
	overdue.CreatedAt = testNow.Add(-73 * time.Hour)
	guest := &domain.User{ID: "guest"}
	venue := testVenue()

	env.bookings.EXPECT().ListStalePending(mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.Booking{overdue}, nil)
	env.ledger.EXPECT().MarkOnce(mock.Anything, "booking-expired:b1").Return(true, nil)
	env.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.Type == domain.EventBookingExpired && e.Status == domain.BookingStatusExpired
	})).Return(nil)
	env.users.EXPECT().GetByID(mock.Anything, "guest").Return(guest, nil)
	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	env.notifier.EXPECT().NotifyBookingExpired(mock.Anything, guest, mock.Anything, venue).Return()

	_, err := env.svc.NotifyExpired(context.Background())

	require.NoError(t, err)
}

func TestBookingService_NotifyExpired_LedgerErrorSkipsBooking(t *testing.T) {
	env := newBookingEnv(t)

	overdue := pendingBooking()
	overdue.CreatedAt = testNow.Add(-73 * time.Hour)

	env.bookings.EXPECT().ListStalePending(mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.Booking{overdue}, nil)
	env.ledger.EXPECT().MarkOnce(mock.Anything, mock.Anything).Return(false, errors.New("redis down"))

	noticed, err := env.svc.NotifyExpired(context.Background())

	require.NoError(t, err)
	assert.Empty(t, noticed)
}

func TestBookingService_NotifyExpired_RepoError(t *testing.T) {
	env := newBookingEnv(t)
	env.bookings.EXPECT().ListStalePending(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db error"))

	_, err := env.svc.NotifyExpired(context.Background())

	assert.Error(t, err)
}
