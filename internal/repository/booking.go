package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `b.id, b.venue_id, v.owner_id, b.user_id, b.event_name, b.event_type,
	b.event_date, b.guest_count, b.start_time::text, b.end_time::text,
	b.event_start_at, b.event_end_at, b.venue_rate, b.reservation_fee, b.currency,
	b.status, b.needs_owner_approval, b.pending_changes, b.created_at, b.updated_at`

const bookingFrom = `FROM bookings b JOIN venues v ON v.id = b.venue_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.VenueID, &b.VenueOwnerID, &b.UserID, &b.EventName, &b.EventType,
		&b.EventDate, &b.GuestCount, &b.StartTime, &b.EndTime,
		&b.EventStartAt, &b.EventEndAt, &b.VenueRate, &b.ReservationFee, &b.Currency,
		&b.Status, &b.NeedsOwnerApproval, &b.PendingChanges, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, venue_id, user_id, event_name, event_type, event_date,
	                                guest_count, start_time, end_time, event_start_at, event_end_at,
	                                venue_rate, reservation_fee, currency, status,
	                                needs_owner_approval, pending_changes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8::time, $9::time, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	err := asActor(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(
			ctx, query,
			b.ID, b.VenueID, b.UserID, b.EventName, b.EventType, b.EventDate,
			b.GuestCount, b.StartTime, b.EndTime, b.EventStartAt, b.EventEndAt,
			b.VenueRate, b.ReservationFee, b.Currency, b.Status,
			b.NeedsOwnerApproval, b.PendingChanges, b.CreatedAt, b.UpdatedAt,
		)
		return err
	})
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrVenueNotFound
		}
		return fmt.Errorf("insert booking: %w", policyErr(err))
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` ` + bookingFrom + ` WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` ` + bookingFrom + `
              WHERE b.user_id = $1
              ORDER BY b.event_date DESC, b.created_at DESC`

	return r.list(ctx, "list bookings by user", query, userID)
}

func (r *BookingRepository) ListByVenue(ctx context.Context, venueID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` ` + bookingFrom + `
              WHERE b.venue_id = $1
              ORDER BY b.event_date ASC, b.start_time ASC NULLS LAST`

	return r.list(ctx, "list bookings by venue", query, venueID)
}

// ListStalePending returns stored-pending bookings created before createdBefore or dated before today.
func (r *BookingRepository) ListStalePending(ctx context.Context, createdBefore, today time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` ` + bookingFrom + `
              WHERE b.status = $1
                AND (b.created_at < $2 OR b.event_date < $3::date)
              ORDER BY b.created_at ASC`

	return r.list(ctx, "list stale pending", query,
		domain.BookingStatusPending, createdBefore, today.Format(domain.DateLayout),
	)
}

func (r *BookingRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// Save writes every mutable column of b if the row still carries version as updated_at.
// On success b.UpdatedAt holds the new version.
func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking, version time.Time) error {
	query := `UPDATE bookings
			  SET event_name = $3, event_type = $4, event_date = $5, guest_count = $6,
			      start_time = $7::time, end_time = $8::time,
			      event_start_at = $9, event_end_at = $10,
			      status = $11, needs_owner_approval = $12, pending_changes = $13,
			      updated_at = GREATEST(now(), $2::timestamptz + interval '1 microsecond')
			  WHERE id = $1 AND updated_at = $2::timestamptz
			  RETURNING updated_at`

	var updatedAt time.Time
	err := asActor(ctx, r.db, func(tx *sql.Tx) error {
		return tx.QueryRowContext(
			ctx, query,
			b.ID, version,
			b.EventName, b.EventType, b.EventDate, b.GuestCount,
			b.StartTime, b.EndTime, b.EventStartAt, b.EventEndAt,
			b.Status, b.NeedsOwnerApproval, b.PendingChanges,
		).Scan(&updatedAt)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return r.missOrStale(ctx, b.ID)
	case err != nil:
		return fmt.Errorf("save booking: %w", policyErr(err))
	}

	b.UpdatedAt = updatedAt
	return nil
}

func (r *BookingRepository) missOrStale(ctx context.Context, id string) error {
	var exists bool
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, id)
	if err != nil {
		return fmt.Errorf("check booking: %w", err)
	}
	if err = row.Scan(&exists); err != nil {
		return fmt.Errorf("check booking: %w", err)
	}
	if !exists {
		return domain.ErrBookingNotFound
	}
	// The update policy filters rows without an error, so a visible row that did not
	// match is either stale or outside the actor's rows; both are reported as stale.
	return domain.ErrStaleBooking
}

// SubmitChangeRequest records a proposal through the submit_booking_change procedure,
// which runs with owner rights and also flags the booking.
func (r *BookingRepository) SubmitChangeRequest(ctx context.Context, cr *domain.ChangeRequest) error {
	query := `SELECT submit_booking_change($1, $2, $3, $4)`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, cr.ID, cr.BookingID, cr.RequestedBy, cr.Changes)
	if err != nil {
		return fmt.Errorf("submit change request: %w", policyErr(err))
	}

	return nil
}

func (r *BookingRepository) AppendAudit(ctx context.Context, e *domain.AuditEntry) error {
	query := `INSERT INTO booking_audit_log (id, booking_id, actor_id, action, payload, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, e.ID, e.BookingID, e.ActorID, e.Action, e.Payload, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("append audit: %w", err)
	}

	return nil
}

func (r *BookingRepository) MarkNeedsApproval(ctx context.Context, id string) error {
	query := `UPDATE bookings SET needs_owner_approval = true, updated_at = now() WHERE id = $1`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id); err != nil {
		return fmt.Errorf("mark needs approval: %w", policyErr(err))
	}

	return nil
}

// HasConfirmedOnDate is the coarse same-day check used when the caller cannot see slot times.
func (r *BookingRepository) HasConfirmedOnDate(ctx context.Context, venueID string, date time.Time, excludeID string) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM bookings
				WHERE venue_id = $1
				  AND event_date = $2::date
				  AND status = $3
				  AND ($4::uuid IS NULL OR id <> $4::uuid))`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		venueID, date.Format(domain.DateLayout), domain.BookingStatusConfirmed, nullableID(excludeID),
	)
	if err != nil {
		return false, fmt.Errorf("same day check: %w", policyErr(err))
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("same day check: %w", policyErr(err))
	}

	return exists, nil
}

// CheckOverlap asks check_booking_overlap whether the slot intersects a confirmed booking.
func (r *BookingRepository) CheckOverlap(ctx context.Context, q domain.AvailabilityQuery) (bool, error) {
	query := `SELECT check_booking_overlap($1, $2::date, $3::time, $4::time, $5::uuid)`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		q.VenueID, q.Date.Format(domain.DateLayout), q.StartTime, q.EndTime, nullableID(q.ExcludeBookingID),
	)
	if err != nil {
		return false, fmt.Errorf("overlap check: %w", err)
	}

	var overlaps bool
	if err = row.Scan(&overlaps); err != nil {
		return false, fmt.Errorf("overlap check: %w", err)
	}

	return overlaps, nil
}

func (r *BookingRepository) CountByStatus(ctx context.Context, venueID string) (map[domain.BookingStatus]int, error) {
	query := `SELECT status, COUNT(*) FROM bookings WHERE venue_id = $1 AND status = ANY($2) GROUP BY status`

	statuses := []domain.BookingStatus{
		domain.BookingStatusPending, domain.BookingStatusConfirmed, domain.BookingStatusCompleted,
		domain.BookingStatusCancelled, domain.BookingStatusExpired,
	}
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, venueID, pq.Array(statuses))
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	defer rows.Close()

	res := make(map[domain.BookingStatus]int)
	for rows.Next() {
		var (
			status domain.BookingStatus
			n      int
		)
		if err = rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		res[status] = n
	}

	return res, rows.Err()
}
