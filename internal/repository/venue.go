package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const venueColumns = `id, owner_id, name, description, address, city, latitude, longitude,
	capacity_min, capacity_max, rate, currency, reservation_fee_percent, image_url,
	created_at, updated_at`

type VenueRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVenueRepo(db *dbpg.DB) *VenueRepository {
	return &VenueRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanVenue(row rowScanner) (*domain.Venue, error) {
	var v domain.Venue
	err := row.Scan(
		&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.Address, &v.City, &v.Latitude, &v.Longitude,
		&v.CapacityMin, &v.CapacityMax, &v.Rate, &v.Currency, &v.ReservationFeePercent, &v.ImageURL,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	query := `INSERT INTO venues (` + venueColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	now := time.Now().UTC()
	v.CreatedAt, v.UpdatedAt = now, now

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.OwnerID, v.Name, v.Description, v.Address, v.City, v.Latitude, v.Longitude,
		v.CapacityMin, v.CapacityMax, v.Rate, v.Currency, v.ReservationFeePercent, v.ImageURL,
		v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert venue: %w", policyErr(err))
	}

	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	v, err := scanVenue(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("scan venue: %w", err)
	}

	return v, nil
}

func (r *VenueRepository) List(ctx context.Context, f domain.VenueFilter) ([]*domain.Venue, error) {
	query := `SELECT ` + venueColumns + `
			  FROM venues
			  WHERE ($1 = '' OR lower(city) = lower($1))
			    AND capacity_max >= $2
			  ORDER BY name ASC`

	return r.list(ctx, "list venues", query, f.City, f.MinGuests)
}

func (r *VenueRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE owner_id = $1 ORDER BY created_at DESC`

	return r.list(ctx, "list venues by owner", query, ownerID)
}

func (r *VenueRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.Venue, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var res []*domain.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		res = append(res, v)
	}

	return res, rows.Err()
}
