package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/logger"
)

// Channel is the NOTIFY channel filled by the bookings trigger.
const Channel = "booking_changes"

type notification struct {
	Op string `json:"op"`
	ID string `json:"id"`
}

type changeSink interface {
	Notify(op, id string)
	Resync()
}

// Listener forwards Postgres change notifications to the reconciler.
type Listener struct {
	dsn    string
	sink   changeSink
	logger logger.Logger
}

func NewListener(dsn string, sink changeSink, log logger.Logger) *Listener {
	return &Listener{dsn: dsn, sink: sink, logger: log}
}

func (l *Listener) Run(ctx context.Context) error {
	report := func(ev pq.ListenerEventType, err error) {
		if err != nil {
			l.logger.Warn("booking change feed problem",
				logger.Int("event", int(ev)),
				logger.String("error", err.Error()),
			)
		}
	}

	pl := pq.NewListener(l.dsn, time.Second, time.Minute, report)
	defer pl.Close()

	if err := pl.Listen(Channel); err != nil {
		return fmt.Errorf("listen %s: %w", Channel, err)
	}
	l.logger.Info("booking change feed started", logger.String("channel", Channel))

	ping := time.NewTicker(90 * time.Second)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("booking change feed stopped")
			return nil
		case n := <-pl.Notify:
			// nil means the connection was re-established and notifications may have been lost
			if n == nil {
				l.sink.Resync()
				continue
			}
			l.handle(n.Extra)
		case <-ping.C:
			if err := pl.Ping(); err != nil {
				l.logger.Warn("booking change feed ping failed", logger.String("error", err.Error()))
			}
		}
	}
}

func (l *Listener) handle(payload string) {
	var n notification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		l.logger.Warn("malformed booking change notification",
			logger.String("payload", payload),
			logger.String("error", err.Error()),
		)
		return
	}
	l.sink.Notify(n.Op, n.ID)
}
