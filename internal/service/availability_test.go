package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type availabilityEnv struct {
	repo    *mocks.MockAvailabilityRepo
	venues  *mocks.MockVenueRepo
	metrics *mocks.MockMetrics
	svc     *AvailabilityService
}

func newAvailabilityEnv(t *testing.T, failClosed bool) *availabilityEnv {
	t.Helper()
	env := &availabilityEnv{
		repo:    mocks.NewMockAvailabilityRepo(t),
		venues:  mocks.NewMockVenueRepo(t),
		metrics: mocks.NewMockMetrics(t),
	}
	env.svc = NewAvailabilityService(env.repo, env.venues, env.metrics,
		BookingSettings{AvailabilityFailClosed: failClosed}, newTestLogger(t))
	env.svc.now = func() time.Time { return testNow }

	env.metrics.EXPECT().ObserveAvailability(mock.Anything, mock.Anything).Return().Maybe()
	return env
}

func slotQuery(actor string) domain.AvailabilityQuery {
	return domain.AvailabilityQuery{
		VenueID:   "v1",
		Date:      time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		StartTime: strPtr("18:00:00"),
		EndTime:   strPtr("23:00:00"),
		ActorID:   actor,
	}
}

func TestAvailability_PastDateShortCircuits(t *testing.T) {
	env := newAvailabilityEnv(t, false)
	q := slotQuery("guest")
	q.Date = testNow.AddDate(0, 0, -1)

	d, err := env.svc.Check(context.Background(), q)

	require.NoError(t, err)
	assert.False(t, d.Available)
	assert.Equal(t, domain.ConflictPastDate, d.Reason)
}

func TestAvailability_TodayIsNotPast(t *testing.T) {
	env := newAvailabilityEnv(t, false)
	q := slotQuery("owner")
	q.Date = domain.DayOf(testNow)

	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	env.repo.EXPECT().CheckOverlap(mock.Anything, q).Return(false, nil)

	d, err := env.svc.Check(context.Background(), q)

	require.NoError(t, err)
	assert.True(t, d.Available)
}

func TestAvailability_SameDayConfirmedStopsBeforeOverlap(t *testing.T) {
	env := newAvailabilityEnv(t, false)
	q := slotQuery("guest")
	q.ExcludeBookingID = "b1"

	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	env.repo.EXPECT().HasConfirmedOnDate(mock.Anything, "v1", q.Date, "b1").Return(true, nil)

	d, err := env.svc.Check(context.Background(), q)

	require.NoError(t, err)
	assert.Equal(t, domain.ConflictSameDayConfirmed, d.Reason)
	assert.Error(t, d.Err())
}

func TestAvailability_OwnerSkipsCoarseCheck(t *testing.T) {
	env := newAvailabilityEnv(t, false)
	q := slotQuery("owner")

	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	env.repo.EXPECT().CheckOverlap(mock.Anything, q).Return(true, nil)

	d, err := env.svc.Check(context.Background(), q)

	require.NoError(t, err)
	assert.Equal(t, domain.ConflictTimeOverlap, d.Reason)
}

func TestAvailability_Free(t *testing.T) {
	env := newAvailabilityEnv(t, false)
	q := slotQuery("guest")

	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	env.repo.EXPECT().HasConfirmedOnDate(mock.Anything, "v1", q.Date, "").Return(false, nil)
	env.repo.EXPECT().CheckOverlap(mock.Anything, q).Return(false, nil)

	d, err := env.svc.Check(context.Background(), q)

	require.NoError(t, err)
	assert.Equal(t, domain.AvailabilityDecision{Available: true}, d)
}

func TestAvailability_OverlapFailure(t *testing.T) {
	tests := []struct {
		name        string
		failClosed  bool
		coarseErr   error
		wantErr     error
		wantWarning string
	}{
		{
			name:        "coarse denied, fail open",
			coarseErr:   domain.ErrPermissionDenied,
			wantWarning: coarseCheckWarning,
		},
		{
			name: "coarse ran, fail open",
		},
		{
			name:       "fail closed",
			failClosed: true,
			wantErr:    domain.ErrAvailabilityUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newAvailabilityEnv(t, tt.failClosed)
			q := slotQuery("guest")

			env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
			env.repo.EXPECT().HasConfirmedOnDate(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(false, tt.coarseErr)
			env.repo.EXPECT().CheckOverlap(mock.Anything, q).Return(false, errors.New("function check_booking_overlap does not exist"))

			d, err := env.svc.Check(context.Background(), q)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, d.Available)
			assert.Equal(t, tt.wantWarning, d.Warning)
		})
	}
}

func TestAvailability_CoarseFailureIsSurfaced(t *testing.T) {
	env := newAvailabilityEnv(t, false)

	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	env.repo.EXPECT().HasConfirmedOnDate(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(false, errors.New("connection reset"))

	_, err := env.svc.Check(context.Background(), slotQuery("guest"))

	assert.Error(t, err)
}

func TestAvailability_UnknownVenue(t *testing.T) {
	env := newAvailabilityEnv(t, false)
	env.venues.EXPECT().GetByID(mock.Anything, "v1").Return(nil, domain.ErrVenueNotFound)

	_, err := env.svc.Check(context.Background(), slotQuery("guest"))

	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}

func TestAvailability_RecordsDecision(t *testing.T) {
	repo := mocks.NewMockAvailabilityRepo(t)
	venues := mocks.NewMockVenueRepo(t)
	metrics := mocks.NewMockMetrics(t)
	svc := NewAvailabilityService(repo, venues, metrics, BookingSettings{}, newTestLogger(t))
	svc.now = func() time.Time { return testNow }

	q := slotQuery("guest")
	q.Date = testNow.AddDate(0, 0, -2)
	metrics.EXPECT().ObserveAvailability(domain.AvailabilityDecision{Reason: domain.ConflictPastDate}, nil).Return().Once()

	_, err := svc.Check(context.Background(), q)

	require.NoError(t, err)
}
