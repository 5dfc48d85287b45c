package ports

import (
	"context"

	"github.com/stpnv0/VenueBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, owner *domain.User, b *domain.Booking, venue *domain.Venue)
	NotifyBookingConfirmed(ctx context.Context, guest *domain.User, b *domain.Booking, venue *domain.Venue)
	NotifyBookingCancelled(ctx context.Context, recipient *domain.User, b *domain.Booking, venue *domain.Venue)
	NotifyBookingExpired(ctx context.Context, guest *domain.User, b *domain.Booking, venue *domain.Venue)
	NotifyChangeProposed(ctx context.Context, owner *domain.User, b *domain.Booking, venue *domain.Venue)
	NotifyChangeDecided(ctx context.Context, guest *domain.User, b *domain.Booking, venue *domain.Venue, approved bool)
}

type MessageNotifier interface {
	NotifyNewMessage(ctx context.Context, recipient, sender *domain.User, m *domain.Message)
}

type EventPublisher interface {
	Publish(ctx context.Context, e domain.BookingEvent) error
}

// NoticeLedger remembers one-off notices so that repeated sweeps do not resend them.
type NoticeLedger interface {
	MarkOnce(ctx context.Context, key string) (bool, error)
}

type Metrics interface {
	ObserveTransition(transition string, err error)
	ObserveAvailability(d domain.AvailabilityDecision, err error)
}
