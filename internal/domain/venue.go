package domain

import "time"

type Venue struct {
	ID                    string    `json:"id"`
	OwnerID               string    `json:"owner_id"`
	Name                  string    `json:"name"`
	Description           string    `json:"description"`
	Address               string    `json:"address"`
	City                  string    `json:"city"`
	Latitude              *float64  `json:"latitude"`
	Longitude             *float64  `json:"longitude"`
	CapacityMin           int       `json:"capacity_min"`
	CapacityMax           int       `json:"capacity_max"`
	Rate                  float64   `json:"rate"`
	Currency              string    `json:"currency"`
	ReservationFeePercent float64   `json:"reservation_fee_percent"`
	ImageURL              string    `json:"image_url"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// ReservationFee is the upfront share of rate, rounded to cents.
func (v *Venue) ReservationFee() float64 {
	fee := v.Rate * v.ReservationFeePercent / 100
	return float64(int64(fee*100+0.5)) / 100
}

type CreateVenueInput struct {
	OwnerID               string
	Name                  string
	Description           string
	Address               string
	City                  string
	Latitude              *float64
	Longitude             *float64
	CapacityMin           int
	CapacityMax           int
	Rate                  float64
	Currency              string
	ReservationFeePercent float64
	ImageURL              string
}

type VenueFilter struct {
	City      string
	MinGuests int
}

type VenueDetails struct {
	Venue    Venue                 `json:"venue"`
	Bookings map[BookingStatus]int `json:"bookings"`
}
