package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"09:30", "09:30:00", false},
		{"18:05:10", "18:05:10", false},
		{" 7:15 ", "07:15:00", false},
		{"24:00", "", true},
		{"noon", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeClock(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateTimeRange(t *testing.T) {
	s := func(v string) *string { return &v }

	assert.NoError(t, ValidateTimeRange(nil, nil))
	assert.NoError(t, ValidateTimeRange(s("10:00:00"), s("12:00:00")))
	assert.ErrorIs(t, ValidateTimeRange(s("10:00:00"), nil), ErrValidation)
	assert.ErrorIs(t, ValidateTimeRange(s("12:00:00"), s("12:00:00")), ErrValidation)
	assert.ErrorIs(t, ValidateTimeRange(s("13:00:00"), s("12:00:00")), ErrValidation)
}

func TestBooking_DeriveSchedule(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	start, end := "18:00:00", "23:30:00"
	b := &Booking{
		EventDate: time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
		StartTime: &start,
		EndTime:   &end,
	}

	require.NoError(t, b.DeriveSchedule(loc))
	require.NotNil(t, b.EventStartAt)
	require.NotNil(t, b.EventEndAt)
	assert.Equal(t, time.Date(2026, 7, 4, 15, 0, 0, 0, time.UTC), b.EventStartAt.UTC())
	assert.Equal(t, time.Date(2026, 7, 4, 20, 30, 0, 0, time.UTC), b.EventEndAt.UTC())

	b.EndTime = nil
	require.NoError(t, b.DeriveSchedule(loc))
	assert.Nil(t, b.EventStartAt)
	assert.Nil(t, b.EventEndAt)
}
