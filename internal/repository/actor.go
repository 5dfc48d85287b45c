package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const setActorQuery = `SELECT set_config('app.user_id', $1, true)`

// asActor runs fn in a transaction whose app.user_id setting holds the actor from ctx,
// which the row policies on bookings read. Without an actor the write runs as the system.
func asActor(ctx context.Context, db *dbpg.DB, fn func(tx *sql.Tx) error) error {
	return db.WithTx(ctx, func(tx *sql.Tx) error {
		if actor := domain.ActorFrom(ctx); actor != "" {
			if _, err := tx.ExecContext(ctx, setActorQuery, actor); err != nil {
				return fmt.Errorf("set actor: %w", err)
			}
		}
		return fn(tx)
	})
}
