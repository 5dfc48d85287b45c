package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- ProposeChange ---

func TestProposeChange_PendingIsEditedInPlace(t *testing.T) {
	env := newBookingEnv(t)
	b := pendingBooking()

	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	env.availability.EXPECT().Check(mock.Anything, mock.MatchedBy(func(q domain.AvailabilityQuery) bool {
		return *q.StartTime == "19:00:00" && *q.EndTime == "23:30:00" && q.ExcludeBookingID == "b1"
	})).Return(available(), nil)

	var saved *domain.Booking
	env.bookings.EXPECT().Save(mock.Anything, mock.Anything, b.UpdatedAt).
		Run(func(_ context.Context, s *domain.Booking, _ time.Time) { saved = s }).
		Return(nil)

	view, outcome, err := env.svc.ProposeChange(context.Background(), "b1", "guest", domain.FieldChanges{
		StartTime: strPtr("19:00"),
		EndTime:   strPtr("23:30"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ChangeApplied, outcome)
	require.NotNil(t, saved)
	assert.Equal(t, "19:00:00", *saved.StartTime)
	assert.Equal(t, "23:30:00", *saved.EndTime)
	assert.Equal(t, time.Date(2026, 7, 10, 19, 0, 0, 0, time.UTC), *saved.EventStartAt)
	assert.Equal(t, time.Date(2026, 7, 10, 23, 30, 0, 0, time.UTC), *saved.EventEndAt)
	assert.False(t, saved.NeedsOwnerApproval)
	assert.Equal(t, "19:00:00", *view.Booking.StartTime)
}

func TestProposeChange_PendingNonScheduleFieldSkipsAvailability(t *testing.T) {
	env := newBookingEnv(t)
	b := pendingBooking()

	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	env.bookings.EXPECT().Save(mock.Anything, mock.MatchedBy(func(s *domain.Booking) bool {
		return s.EventName == "Reception" && s.GuestCount == 50
	}), b.UpdatedAt).Return(nil)

	_, outcome, err := env.svc.ProposeChange(context.Background(), "b1", "guest", domain.FieldChanges{
		EventName: strPtr("Reception"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ChangeApplied, outcome)
}

func TestProposeChange_PendingRescheduleKeepsAvailabilityWarning(t *testing.T) {
	env := newBookingEnv(t)
	b := pendingBooking()

	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	env.availability.EXPECT().Check(mock.Anything, mock.Anything).
		Return(domain.AvailabilityDecision{Available: true, Warning: coarseCheckWarning}, nil)
	env.bookings.EXPECT().Save(mock.Anything, mock.Anything, b.UpdatedAt).Return(nil)

	view, outcome, err := env.svc.ProposeChange(context.Background(), "b1", "guest", domain.FieldChanges{
		EventDate: datePtr(time.Date(2026, 7, 11, 0, 0, 0, 0, time.UTC)),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ChangeApplied, outcome)
	assert.Equal(t, coarseCheckWarning, view.Warning)
}

func TestProposeChange_WritesAsGuest(t *testing.T) {
	env := newBookingEnv(t)
	b := confirmedBooking()

	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	env.bookings.EXPECT().Save(mock.MatchedBy(func(ctx context.Context) bool {
		return domain.ActorFrom(ctx) == "guest"
	}), mock.Anything, b.UpdatedAt).Return(nil)

	_, _, err := env.svc.ProposeChange(context.Background(), "b1", "guest", domain.FieldChanges{
		GuestCount: intPtr(60),
	})

	require.NoError(t, err)
}

func TestProposeChange_ConfirmedCollectsProposal(t *testing.T) {
	env := newBookingEnv(t)
	b := confirmedBooking()

	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)

	var saved *domain.Booking
	env.bookings.EXPECT().Save(mock.Anything, mock.Anything, b.UpdatedAt).
		Run(func(_ context.Context, s *domain.Booking, _ time.Time) { saved = s }).
		Return(nil)

	view, outcome, err := env.svc.ProposeChange(context.Background(), "b1", "guest", domain.FieldChanges{
		GuestCount: intPtr(80),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ChangeProposed, outcome)
	require.NotNil(t, saved)
	assert.True(t, saved.NeedsOwnerApproval)
	assert.Equal(t, domain.PendingChanges{domain.FieldGuestCount: 80}, saved.PendingChanges)
	assert.Equal(t, 50, saved.GuestCount, "confirmed fields stay until approval")
	assert.Equal(t, domain.BookingStatusConfirmed, view.EffectiveStatus)
}

func TestProposeChange_MergesOutstandingProposal(t *testing.T) {
	env := newBookingEnv(t)
	b := confirmedBooking()
	b.NeedsOwnerApproval = true
	b.PendingChanges = domain.PendingChanges{domain.FieldEventName: "Gala"}

	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	env.bookings.EXPECT().Save(mock.Anything, mock.MatchedBy(func(s *domain.Booking) bool {
		return s.PendingChanges[domain.FieldEventName] == "Gala" && s.PendingChanges[domain.FieldGuestCount] == 70
	}), b.UpdatedAt).Return(nil)

	_, outcome, err := env.svc.ProposeChange(context.Background(), "b1", "guest", domain.FieldChanges{
		GuestCount: intPtr(70),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ChangeProposed, outcome)
}

func TestProposeChange_PolicyFallsBackToChangeRequest(t *testing.T) {
	env := newBookingEnv(t)
	b := confirmedBooking()

	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	env.bookings.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).
		Return(fmt.Errorf("save booking: %w", domain.ErrPermissionDenied))
	env.bookings.EXPECT().SubmitChangeRequest(mock.Anything, mock.MatchedBy(func(cr *domain.ChangeRequest) bool {
		return cr.BookingID == "b1" && cr.RequestedBy == "guest" && cr.Changes[domain.FieldGuestCount] == 80
	})).Return(nil)

	view, outcome, err := env.svc.ProposeChange(context.Background(), "b1", "guest", domain.FieldChanges{
		GuestCount: intPtr(80),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ChangeRequested, outcome)
	assert.True(t, view.Booking.NeedsOwnerApproval)
}

func TestProposeChange_FallsBackToAuditLog(t *testing.T) {
	env := newBookingEnv(t)
	b := confirmedBooking()

	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	env.bookings.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrPermissionDenied)
	env.bookings.EXPECT().SubmitChangeRequest(mock.Anything, mock.Anything).Return(errors.New("function missing"))
	env.bookings.EXPECT().AppendAudit(mock.Anything, mock.MatchedBy(func(e *domain.AuditEntry) bool {
		return e.BookingID == "b1" && e.ActorID == "guest" && e.Action == auditActionChangeProposed
	})).Return(nil)
	env.bookings.EXPECT().MarkNeedsApproval(mock.Anything, "b1").Return(domain.ErrPermissionDenied)

	_, outcome, err := env.svc.ProposeChange(context.Background(), "b1", "guest", domain.FieldChanges{
		EventType: strPtr("banquet"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ChangeAuditRecorded, outcome)
}

func TestProposeChange_EveryFallbackFails(t *testing.T) {
	env := newBookingEnv(t)

	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)
	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	env.bookings.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrPermissionDenied)
	env.bookings.EXPECT().SubmitChangeRequest(mock.Anything, mock.Anything).Return(domain.ErrPermissionDenied)
	env.bookings.EXPECT().AppendAudit(mock.Anything, mock.Anything).Return(errors.New("db error"))

	_, _, err := env.svc.ProposeChange(context.Background(), "b1", "guest", domain.FieldChanges{
		EventType: strPtr("banquet"),
	})

	assert.Error(t, err)
}

func TestProposeChange_OtherSaveErrorsDoNotFallBack(t *testing.T) {
	env := newBookingEnv(t)

	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)
	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	env.bookings.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrStaleBooking)

	_, _, err := env.svc.ProposeChange(context.Background(), "b1", "guest", domain.FieldChanges{
		GuestCount: intPtr(60),
	})

	assert.ErrorIs(t, err, domain.ErrStaleBooking)
}

func TestProposeChange_CapacityCheckedBeforeAnyWrite(t *testing.T) {
	for name, b := range map[string]*domain.Booking{"pending": pendingBooking(), "confirmed": confirmedBooking()} {
		t.Run(name, func(t *testing.T) {
			env := newBookingEnv(t)
			env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
			env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)

			_, _, err := env.svc.ProposeChange(context.Background(), "b1", "guest", domain.FieldChanges{
				GuestCount: intPtr(500),
			})

			assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
		})
	}
}

func TestProposeChange_Rejections(t *testing.T) {
	cancelled := pendingBooking()
	cancelled.Status = domain.BookingStatusCancelled

	t.Run("nothing to change", func(t *testing.T) {
		env := newBookingEnv(t)

		_, _, err := env.svc.ProposeChange(context.Background(), "b1", "guest", domain.FieldChanges{})

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("owner cannot propose", func(t *testing.T) {
		env := newBookingEnv(t)
		env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)

		_, _, err := env.svc.ProposeChange(context.Background(), "b1", "owner", domain.FieldChanges{GuestCount: intPtr(20)})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("cancelled booking", func(t *testing.T) {
		env := newBookingEnv(t)
		env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(cancelled, nil)

		_, _, err := env.svc.ProposeChange(context.Background(), "b1", "guest", domain.FieldChanges{GuestCount: intPtr(20)})

		assert.ErrorIs(t, err, domain.ErrBookingNotEditable)
	})

	t.Run("past date", func(t *testing.T) {
		env := newBookingEnv(t)
		env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
		env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)

		_, _, err := env.svc.ProposeChange(context.Background(), "b1", "guest", domain.FieldChanges{
			EventDate: datePtr(testNow.AddDate(0, 0, -1)),
		})

		assert.ErrorIs(t, err, domain.ErrPastDate)
	})

	t.Run("end before existing start", func(t *testing.T) {
		env := newBookingEnv(t)
		env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
		env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)

		_, _, err := env.svc.ProposeChange(context.Background(), "b1", "guest", domain.FieldChanges{
			EndTime: strPtr("17:00"),
		})

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("slot taken", func(t *testing.T) {
		env := newBookingEnv(t)
		env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pendingBooking(), nil)
		env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
		env.availability.EXPECT().Check(mock.Anything, mock.Anything).
			Return(domain.AvailabilityDecision{Reason: domain.ConflictSameDayConfirmed}, nil)

		_, _, err := env.svc.ProposeChange(context.Background(), "b1", "guest", domain.FieldChanges{
			EventDate: datePtr(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)),
		})

		assert.ErrorIs(t, err, domain.ErrAvailabilityConflict)
	})
}

// --- ApproveChange / RejectChange ---

func awaitingApproval(p domain.PendingChanges) *domain.Booking {
	b := confirmedBooking()
	b.NeedsOwnerApproval = true
	b.PendingChanges = p
	return b
}

func TestApproveChange_EmptyProposalOnlyClearsFlags(t *testing.T) {
	env := newBookingEnv(t)
	b := awaitingApproval(nil)

	var saved *domain.Booking
	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	env.bookings.EXPECT().Save(mock.Anything, mock.Anything, b.UpdatedAt).
		Run(func(_ context.Context, s *domain.Booking, _ time.Time) { saved = s }).
		Return(nil)

	_, err := env.svc.ApproveChange(context.Background(), "b1", "owner")

	require.NoError(t, err)
	want := *b
	want.ClearApproval()
	assert.Equal(t, want, *saved)
}

func TestApproveChange_AppliesOnlyProposedFields(t *testing.T) {
	env := newBookingEnv(t)
	b := awaitingApproval(domain.PendingChanges{domain.FieldGuestCount: 80})

	var saved *domain.Booking
	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	env.bookings.EXPECT().Save(mock.Anything, mock.Anything, b.UpdatedAt).
		Run(func(_ context.Context, s *domain.Booking, _ time.Time) { saved = s }).
		Return(nil)

	view, err := env.svc.ApproveChange(context.Background(), "b1", "owner")

	require.NoError(t, err)
	want := *b
	want.ClearApproval()
	want.GuestCount = 80
	assert.Equal(t, want, *saved)
	assert.Equal(t, 80, view.Booking.GuestCount)
}

func TestApproveChange_RescheduleIsRechecked(t *testing.T) {
	env := newBookingEnv(t)
	b := awaitingApproval(domain.PendingChanges{
		domain.FieldEventDate: "2026-08-01",
		domain.FieldStartTime: "12:00:00",
	})

	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	env.availability.EXPECT().Check(mock.Anything, mock.MatchedBy(func(q domain.AvailabilityQuery) bool {
		return q.Date.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)) &&
			*q.StartTime == "12:00:00" && *q.EndTime == "23:00:00" && q.ActorID == "owner"
	})).Return(available(), nil)
	env.bookings.EXPECT().Save(mock.Anything, mock.MatchedBy(func(s *domain.Booking) bool {
		return s.EventStartAt != nil &&
			s.EventStartAt.Equal(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)) &&
			!s.NeedsOwnerApproval && s.PendingChanges == nil
	}), b.UpdatedAt).Return(nil)

	_, err := env.svc.ApproveChange(context.Background(), "b1", "owner")

	require.NoError(t, err)
}

func TestApproveChange_ConflictLeavesBookingUntouched(t *testing.T) {
	env := newBookingEnv(t)
	b := awaitingApproval(domain.PendingChanges{domain.FieldEventDate: "2026-08-01"})
	before := *b

	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	env.availability.EXPECT().Check(mock.Anything, mock.Anything).
		Return(domain.AvailabilityDecision{Reason: domain.ConflictTimeOverlap}, nil)

	_, err := env.svc.ApproveChange(context.Background(), "b1", "owner")

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ConflictTimeOverlap, conflict.Reason)
	assert.Equal(t, before, *b)
}

func TestApproveChange_Rejections(t *testing.T) {
	t.Run("guest cannot approve", func(t *testing.T) {
		env := newBookingEnv(t)
		env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(awaitingApproval(nil), nil)

		_, err := env.svc.ApproveChange(context.Background(), "b1", "guest")

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("nothing awaiting approval", func(t *testing.T) {
		env := newBookingEnv(t)
		env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)

		_, err := env.svc.ApproveChange(context.Background(), "b1", "owner")

		assert.ErrorIs(t, err, domain.ErrNoPendingChanges)
	})

	t.Run("event already took place", func(t *testing.T) {
		env := newBookingEnv(t)
		b := awaitingApproval(domain.PendingChanges{domain.FieldGuestCount: 80})
		b.EventDate = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

		env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)

		_, err := env.svc.ApproveChange(context.Background(), "b1", "owner")

		assert.ErrorIs(t, err, domain.ErrBookingNotEditable)
	})
}

func TestApproveChange_NotifiesGuest(t *testing.T) {
	env := newBookingEnv(t)
	env.runAnnouncements()
	b := awaitingApproval(domain.PendingChanges{domain.FieldEventName: "Gala"})
	guest := &domain.User{ID: "guest"}
	venue := testVenue()

	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	env.bookings.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	env.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.Type == domain.EventChangeApproved && e.Changes[domain.FieldEventName] == "Gala"
	})).Return(nil)
	env.users.EXPECT().GetByID(mock.Anything, "guest").Return(guest, nil)
	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(venue, nil)
	env.notifier.EXPECT().NotifyChangeDecided(mock.Anything, guest, mock.Anything, venue, true).Return()

	view, err := env.svc.ApproveChange(context.Background(), "b1", "owner")

	require.NoError(t, err)
	assert.Equal(t, "Gala", view.Booking.EventName)
}

func TestRejectChange_DiscardsProposal(t *testing.T) {
	env := newBookingEnv(t)
	b := awaitingApproval(domain.PendingChanges{domain.FieldGuestCount: 90})

	var saved *domain.Booking
	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	env.bookings.EXPECT().Save(mock.Anything, mock.Anything, b.UpdatedAt).
		Run(func(_ context.Context, s *domain.Booking, _ time.Time) { saved = s }).
		Return(nil)

	_, err := env.svc.RejectChange(context.Background(), "b1", "owner")

	require.NoError(t, err)
	assert.Equal(t, 50, saved.GuestCount)
	assert.False(t, saved.NeedsOwnerApproval)
	assert.Nil(t, saved.PendingChanges)
}

func TestRejectChange_NothingPending(t *testing.T) {
	env := newBookingEnv(t)
	env.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(confirmedBooking(), nil)

	_, err := env.svc.RejectChange(context.Background(), "b1", "owner")

	assert.ErrorIs(t, err, domain.ErrNoPendingChanges)
}
