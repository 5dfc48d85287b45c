package ports

import (
	"context"
	"time"

	"github.com/stpnv0/VenueBooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListByVenue(ctx context.Context, venueID string) ([]*domain.Booking, error)
	ListStalePending(ctx context.Context, createdBefore, today time.Time) ([]*domain.Booking, error)
	Save(ctx context.Context, b *domain.Booking, version time.Time) error
	SubmitChangeRequest(ctx context.Context, cr *domain.ChangeRequest) error
	AppendAudit(ctx context.Context, e *domain.AuditEntry) error
	MarkNeedsApproval(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, venueID string) (map[domain.BookingStatus]int, error)
}

type AvailabilityRepo interface {
	HasConfirmedOnDate(ctx context.Context, venueID string, date time.Time, excludeID string) (bool, error)
	CheckOverlap(ctx context.Context, q domain.AvailabilityQuery) (bool, error)
}

type AvailabilityChecker interface {
	Check(ctx context.Context, q domain.AvailabilityQuery) (domain.AvailabilityDecision, error)
}

// BookingObserver receives every booking the service has just written.
type BookingObserver interface {
	Observe(b *domain.Booking)
}
