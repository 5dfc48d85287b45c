package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingExpirer interface {
	NotifyExpired(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler sweeps for pending requests that ran past the approval window.
// The first sweep runs on start so a restart does not delay notices by a full interval.
type Scheduler struct {
	expirer  bookingExpirer
	interval time.Duration
	logger   logger.Logger
}

func New(expirer bookingExpirer, interval time.Duration, logger logger.Logger) *Scheduler {
	return &Scheduler{
		expirer:  expirer,
		interval: interval,
		logger:   logger,
	}
}

// Start blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("expiry sweep started",
		logger.Duration("interval", s.interval),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.sweep(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info("expiry sweep stopped")
			return
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	started := time.Now()
	expired, err := s.expirer.NotifyExpired(ctx)
	if err != nil {
		s.logger.Error("expiry sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}
	if len(expired) == 0 {
		return
	}

	ids := make([]string, 0, len(expired))
	for _, b := range expired {
		ids = append(ids, b.ID)
	}
	s.logger.Info("expiry sweep announced bookings",
		logger.Int("count", len(expired)),
		logger.Any("booking_ids", ids),
		logger.Duration("took", time.Since(started)),
	)
}
