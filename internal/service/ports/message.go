package ports

import (
	"context"

	"github.com/stpnv0/VenueBooker/internal/domain"
)

type MessageRepo interface {
	Create(ctx context.Context, m *domain.Message) error
	Conversation(ctx context.Context, userID, peerID string, limit int) ([]*domain.Message, error)
	MarkRead(ctx context.Context, userID, peerID string) (int64, error)
	UnreadCounts(ctx context.Context, userID string) (domain.UnreadCounts, error)
}

// UnreadStore keeps per-user unread counters shared by every instance.
type UnreadStore interface {
	Increment(ctx context.Context, userID, peerID string) (domain.UnreadCounts, bool, error)
	Reset(ctx context.Context, userID, peerID string) (domain.UnreadCounts, bool, error)
	Counts(ctx context.Context, userID string) (domain.UnreadCounts, bool, error)
	Seed(ctx context.Context, userID string, counts domain.UnreadCounts) error
}
