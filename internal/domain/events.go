package domain

import "time"

type BookingEventType string

const (
	EventBookingCreated   BookingEventType = "booking.created"
	EventBookingConfirmed BookingEventType = "booking.confirmed"
	EventBookingCancelled BookingEventType = "booking.cancelled"
	EventBookingCompleted BookingEventType = "booking.completed"
	EventBookingUpdated   BookingEventType = "booking.updated"
	EventBookingExpired   BookingEventType = "booking.expired"
	EventChangeProposed   BookingEventType = "booking.change_proposed"
	EventChangeApproved   BookingEventType = "booking.change_approved"
	EventChangeRejected   BookingEventType = "booking.change_rejected"
)

// BookingEvent is published on the lifecycle stream after every transition.
type BookingEvent struct {
	Type       BookingEventType `json:"type"`
	BookingID  string           `json:"booking_id"`
	VenueID    string           `json:"venue_id"`
	ActorID    string           `json:"actor_id,omitempty"`
	Status     BookingStatus    `json:"status"`
	Changes    PendingChanges   `json:"changes,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

func NewBookingEvent(t BookingEventType, b *Booking, actorID string, at time.Time) BookingEvent {
	return BookingEvent{
		Type:       t,
		BookingID:  b.ID,
		VenueID:    b.VenueID,
		ActorID:    actorID,
		Status:     b.Status,
		OccurredAt: at.UTC(),
	}
}
