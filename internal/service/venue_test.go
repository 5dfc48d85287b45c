package service

import (
	"context"
	"testing"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validVenueInput() domain.CreateVenueInput {
	return domain.CreateVenueInput{
		OwnerID:               "owner",
		Name:                  " Riverside Loft ",
		Address:               "1 Quay Street",
		City:                  "Lisbon",
		CapacityMin:           10,
		CapacityMax:           120,
		Rate:                  1500,
		Currency:              "eur",
		ReservationFeePercent: 20,
	}
}

func TestVenueService_Create_Success(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	users := mocks.NewMockUserRepo(t)
	svc := NewVenueService(repo, nil, users)

	users.EXPECT().GetByID(mock.Anything, "owner").Return(&domain.User{ID: "owner"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	venue, err := svc.Create(context.Background(), validVenueInput())

	require.NoError(t, err)
	assert.NotEmpty(t, venue.ID)
	assert.Equal(t, "Riverside Loft", venue.Name)
	assert.Equal(t, "EUR", venue.Currency)
	assert.InDelta(t, 300.0, venue.ReservationFee(), 0.001)
}

func TestVenueService_Create_Validation(t *testing.T) {
	lat := 38.7

	tests := []struct {
		name   string
		mutate func(in *domain.CreateVenueInput)
	}{
		{"empty name", func(in *domain.CreateVenueInput) { in.Name = "  " }},
		{"empty address", func(in *domain.CreateVenueInput) { in.Address = "" }},
		{"zero min capacity", func(in *domain.CreateVenueInput) { in.CapacityMin = 0 }},
		{"max below min", func(in *domain.CreateVenueInput) { in.CapacityMax = 5 }},
		{"free venue", func(in *domain.CreateVenueInput) { in.Rate = 0 }},
		{"bad currency", func(in *domain.CreateVenueInput) { in.Currency = "euro" }},
		{"fee above 100", func(in *domain.CreateVenueInput) { in.ReservationFeePercent = 150 }},
		{"latitude alone", func(in *domain.CreateVenueInput) { in.Latitude = &lat }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewVenueService(nil, nil, nil)
			in := validVenueInput()
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), in)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestVenueService_Create_UnknownOwner(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	svc := NewVenueService(nil, nil, users)

	users.EXPECT().GetByID(mock.Anything, "owner").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), validVenueInput())

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestVenueService_GetDetails(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	bookings := mocks.NewMockBookingRepo(t)
	svc := NewVenueService(repo, bookings, nil)

	counts := map[domain.BookingStatus]int{domain.BookingStatusConfirmed: 2, domain.BookingStatusPending: 1}
	repo.EXPECT().GetByID(mock.Anything, "v1").Return(testVenue(), nil)
	bookings.EXPECT().CountByStatus(mock.Anything, "v1").Return(counts, nil)

	details, err := svc.GetDetails(context.Background(), "v1")

	require.NoError(t, err)
	assert.Equal(t, "v1", details.Venue.ID)
	assert.Equal(t, counts, details.Bookings)
}

func TestVenueService_List(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(repo, nil, nil)

	f := domain.VenueFilter{City: "Lisbon", MinGuests: 50}
	repo.EXPECT().List(mock.Anything, f).Return([]*domain.Venue{testVenue()}, nil)

	venues, err := svc.List(context.Background(), f)
	require.NoError(t, err)
	assert.Len(t, venues, 1)

	_, err = svc.List(context.Background(), domain.VenueFilter{MinGuests: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
