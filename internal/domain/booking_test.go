package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	today := DayOf(now)

	tests := []struct {
		name      string
		stored    BookingStatus
		eventDate time.Time
		createdAt time.Time
		want      BookingStatus
	}{
		{"pending event yesterday", BookingStatusPending, today.AddDate(0, 0, -1), now.Add(-time.Hour), BookingStatusExpired},
		{"pending event three days ago", BookingStatusPending, today.AddDate(0, 0, -3), now.Add(-time.Minute), BookingStatusExpired},
		{"pending past sla future date", BookingStatusPending, today.AddDate(0, 0, 10), now.Add(-73 * time.Hour), BookingStatusExpired},
		{"pending exactly at sla", BookingStatusPending, today.AddDate(0, 0, 10), now.Add(-72 * time.Hour), BookingStatusPending},
		{"pending today created an hour ago", BookingStatusPending, today, now.Add(-time.Hour), BookingStatusPending},
		{"confirmed future", BookingStatusConfirmed, today.AddDate(0, 0, 1), now.Add(-100 * time.Hour), BookingStatusConfirmed},
		{"confirmed today", BookingStatusConfirmed, today, now.Add(-100 * time.Hour), BookingStatusConfirmed},
		{"confirmed past", BookingStatusConfirmed, today.AddDate(0, 0, -1), now.Add(-100 * time.Hour), BookingStatusCompleted},
		{"cancelled passes through", BookingStatusCancelled, today.AddDate(0, 0, -5), now.Add(-500 * time.Hour), BookingStatusCancelled},
		{"completed passes through", BookingStatusCompleted, today.AddDate(0, 0, 5), now, BookingStatusCompleted},
		{"expired passes through", BookingStatusExpired, today.AddDate(0, 0, 5), now, BookingStatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveStatus(tt.stored, tt.eventDate, tt.createdAt, now, DefaultApprovalSLA)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEffectiveStatus_DoesNotMutateBooking(t *testing.T) {
	now := time.Now()
	b := &Booking{
		Status:    BookingStatusConfirmed,
		EventDate: DayOf(now).AddDate(0, 0, -2),
		CreatedAt: now.Add(-200 * time.Hour),
	}

	view := b.View(now, DefaultApprovalSLA)

	assert.Equal(t, BookingStatusCompleted, view.EffectiveStatus)
	assert.Equal(t, BookingStatusConfirmed, b.Status)
	assert.Equal(t, BookingStatusConfirmed, view.Booking.Status)
}

func TestEffectiveStatus_BookedTodayStillPendingLater(t *testing.T) {
	created := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	b := &Booking{Status: BookingStatusPending, EventDate: DayOf(created), CreatedAt: created}

	assert.Equal(t, BookingStatusPending, b.Effective(created.Add(time.Hour), DefaultApprovalSLA))
}

func TestEffectiveStatus_ZeroSLAFallsBackToDefault(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	got := EffectiveStatus(BookingStatusPending, DayOf(now).AddDate(0, 1, 0), now.Add(-71*time.Hour), now, 0)
	assert.Equal(t, BookingStatusPending, got)
}

func TestIsPastDate_UsesCalendarDayOfNow(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	// 2026-03-10 02:00 in UTC+5 is still 2026-03-09 in UTC.
	now := time.Date(2026, 3, 10, 2, 0, 0, 0, loc)
	eventDate := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsPastDate(eventDate, now))
	assert.False(t, IsPastDate(eventDate, now.UTC()))
}

func TestBooking_IsParticipant(t *testing.T) {
	b := &Booking{UserID: "guest", VenueOwnerID: "owner"}

	assert.True(t, b.IsParticipant("guest"))
	assert.True(t, b.IsParticipant("owner"))
	assert.False(t, b.IsParticipant("someone"))
	assert.False(t, b.IsParticipant(""))
}
