package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type MessageRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMessageRepo(db *dbpg.DB) *MessageRepository {
	return &MessageRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) error {
	query := `INSERT INTO messages (id, sender_id, recipient_id, venue_id, booking_id, body, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		m.ID, m.SenderID, m.RecipientID, m.VenueID, m.BookingID, m.Body, m.CreatedAt,
	)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert message: %w", policyErr(err))
	}

	return nil
}

// Conversation returns the latest messages exchanged by two users, oldest first.
func (r *MessageRepository) Conversation(ctx context.Context, userID, peerID string, limit int) ([]*domain.Message, error) {
	query := `SELECT id, sender_id, recipient_id, venue_id, booking_id, body, read_at, created_at
			  FROM (
			      SELECT * FROM messages
			      WHERE (sender_id = $1 AND recipient_id = $2)
			         OR (sender_id = $2 AND recipient_id = $1)
			      ORDER BY created_at DESC
			      LIMIT $3
			  ) m
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID, peerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list conversation: %w", err)
	}
	defer rows.Close()

	var res []*domain.Message
	for rows.Next() {
		var m domain.Message
		if err = rows.Scan(
			&m.ID, &m.SenderID, &m.RecipientID, &m.VenueID, &m.BookingID,
			&m.Body, &m.ReadAt, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		res = append(res, &m)
	}

	return res, rows.Err()
}

// MarkRead stamps every unread message from peer to user and returns how many were updated.
func (r *MessageRepository) MarkRead(ctx context.Context, userID, peerID string) (int64, error) {
	query := `UPDATE messages SET read_at = now()
			  WHERE recipient_id = $1 AND sender_id = $2 AND read_at IS NULL`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, userID, peerID)
	if err != nil {
		return 0, fmt.Errorf("mark read: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("mark read rows affected: %w", err)
	}

	return n, nil
}

// UnreadCounts recomputes unread counters from the table; used to seed the cache.
func (r *MessageRepository) UnreadCounts(ctx context.Context, userID string) (domain.UnreadCounts, error) {
	query := `SELECT sender_id, COUNT(*) FROM messages
			  WHERE recipient_id = $1 AND read_at IS NULL
			  GROUP BY sender_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unread counts: %w", err)
	}
	defer rows.Close()

	res := make(domain.UnreadCounts)
	for rows.Next() {
		var (
			peer string
			n    int64
		)
		if err = rows.Scan(&peer, &n); err != nil {
			return nil, fmt.Errorf("scan unread: %w", err)
		}
		res[peer] = n
	}

	return res, rows.Err()
}
