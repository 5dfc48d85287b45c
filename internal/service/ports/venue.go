package ports

import (
	"context"

	"github.com/stpnv0/VenueBooker/internal/domain"
)

type VenueRepo interface {
	Create(ctx context.Context, v *domain.Venue) error
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context, f domain.VenueFilter) ([]*domain.Venue, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Venue, error)
}
