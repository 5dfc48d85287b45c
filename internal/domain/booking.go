package domain

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusExpired   BookingStatus = "expired"
)

// DefaultApprovalSLA is how long a pending booking waits for the owner before it reads as expired.
const DefaultApprovalSLA = 72 * time.Hour

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted,
		BookingStatusCancelled, BookingStatusExpired:
		return true
	}
	return false
}

type Booking struct {
	ID                 string         `json:"id"`
	VenueID            string         `json:"venue_id"`
	VenueOwnerID       string         `json:"venue_owner_id"`
	UserID             string         `json:"user_id"`
	EventName          string         `json:"event_name"`
	EventType          string         `json:"event_type"`
	EventDate          time.Time      `json:"event_date"`
	GuestCount         int            `json:"guest_count"`
	StartTime          *string        `json:"start_time"`
	EndTime            *string        `json:"end_time"`
	EventStartAt       *time.Time     `json:"event_start_at"`
	EventEndAt         *time.Time     `json:"event_end_at"`
	VenueRate          float64        `json:"venue_rate"`
	ReservationFee     float64        `json:"reservation_fee"`
	Currency           string         `json:"currency"`
	Status             BookingStatus  `json:"status"`
	NeedsOwnerApproval bool           `json:"needs_owner_approval"`
	PendingChanges     PendingChanges `json:"pending_changes"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// BookingView is a booking as participants see it.
type BookingView struct {
	Booking         Booking       `json:"booking"`
	EffectiveStatus BookingStatus `json:"effective_status"`
	Warning         string        `json:"warning,omitempty"`
}

func (b *Booking) IsParticipant(userID string) bool {
	return userID != "" && (b.UserID == userID || b.VenueOwnerID == userID)
}

// Effective derives the displayed status for b at now.
func (b *Booking) Effective(now time.Time, sla time.Duration) BookingStatus {
	return EffectiveStatus(b.Status, b.EventDate, b.CreatedAt, now, sla)
}

func (b *Booking) View(now time.Time, sla time.Duration) BookingView {
	return BookingView{Booking: *b, EffectiveStatus: b.Effective(now, sla)}
}

// EffectiveStatus combines the stored status with date and SLA rules.
// It never has side effects; completion and expiry are not persisted.
func EffectiveStatus(stored BookingStatus, eventDate, createdAt, now time.Time, sla time.Duration) BookingStatus {
	if sla <= 0 {
		sla = DefaultApprovalSLA
	}

	switch stored {
	case BookingStatusPending:
		if IsPastDate(eventDate, now) || now.Sub(createdAt) > sla {
			return BookingStatusExpired
		}
		return BookingStatusPending
	case BookingStatusConfirmed:
		if IsPastDate(eventDate, now) {
			return BookingStatusCompleted
		}
		return BookingStatusConfirmed
	default:
		return stored
	}
}

// CreateBookingInput is what a guest submits when requesting a venue.
type CreateBookingInput struct {
	VenueID    string
	UserID     string
	EventName  string
	EventType  string
	EventDate  time.Time
	GuestCount int
	StartTime  *string
	EndTime    *string
}

type BookingFilter struct {
	Status BookingStatus
}

func (f BookingFilter) Match(effective BookingStatus) bool {
	return f.Status == "" || f.Status == effective
}
