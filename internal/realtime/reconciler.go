package realtime

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingFetcher interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

type failureCounter interface {
	RefetchFailed()
}

type Settings struct {
	Debounce    time.Duration
	ApprovalSLA time.Duration
	Location    *time.Location
}

// Reconciler turns row change notifications into a consistent per-booking view.
// Bursts of notifications for one id are collapsed, and a fetch that was
// overtaken by a newer notification is thrown away.
type Reconciler struct {
	repo     bookingFetcher
	store    *Store
	hub      *Hub
	failures failureCounter
	logger   logger.Logger
	settings Settings

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	gen    map[string]uint64
	timers map[string]*time.Timer
	// wg counts armed timers and running fetches.
	wg sync.WaitGroup

	now func() time.Time
}

func NewReconciler(
	repo bookingFetcher,
	store *Store,
	hub *Hub,
	failures failureCounter,
	settings Settings,
	log logger.Logger,
) *Reconciler {
	if settings.Debounce <= 0 {
		settings.Debounce = 250 * time.Millisecond
	}
	if settings.ApprovalSLA <= 0 {
		settings.ApprovalSLA = domain.DefaultApprovalSLA
	}
	if settings.Location == nil {
		settings.Location = time.UTC
	}

	ctx, cancel := context.WithCancel(context.Background())
	loc := settings.Location
	return &Reconciler{
		repo:     repo,
		store:    store,
		hub:      hub,
		failures: failures,
		logger:   log,
		settings: settings,
		ctx:      ctx,
		cancel:   cancel,
		gen:      make(map[string]uint64),
		timers:   make(map[string]*time.Timer),
		now:      func() time.Time { return time.Now().In(loc) },
	}
}

// Observe records a booking this instance has just written, before the change
// notification for it arrives.
func (r *Reconciler) Observe(b *domain.Booking) {
	if r.store.Put(b, false) {
		r.publish(b)
	}
}

// Notify schedules a re-fetch of id after the debounce window. Deletes apply at once.
func (r *Reconciler) Notify(op, id string) {
	if id == "" {
		return
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.gen[id]++
	if op == "DELETE" {
		r.stopTimerLocked(id)
		r.mu.Unlock()
		r.remove(id)
		return
	}

	if t, ok := r.timers[id]; ok && t.Stop() {
		// still pending: push it back, it keeps its wg slot
		t.Reset(r.settings.Debounce)
		r.mu.Unlock()
		return
	}

	r.wg.Add(1)
	var t *time.Timer
	// t is assigned under r.mu, which refetch takes before reading it.
	t = time.AfterFunc(r.settings.Debounce, func() { r.refetch(id, &t) })
	r.timers[id] = t
	r.mu.Unlock()
}

// Resync re-fetches every tracked booking, used after the change feed reconnects.
// Bookings that have reached a final status by now are dropped instead.
func (r *Reconciler) Resync() {
	now := r.now()
	for _, id := range r.store.IDs() {
		b, ok := r.store.Get(id)
		if ok && isFinal(b.Effective(now, r.settings.ApprovalSLA)) {
			r.evict(id)
			continue
		}
		r.Notify("UPDATE", id)
	}
}

// stopTimerLocked cancels the pending timer of id and releases its wg slot
// if the callback had not started yet.
func (r *Reconciler) stopTimerLocked(id string) {
	t, ok := r.timers[id]
	if !ok {
		return
	}
	if t.Stop() {
		r.wg.Done()
	}
	delete(r.timers, id)
}

func (r *Reconciler) refetch(id string, t **time.Timer) {
	defer r.wg.Done()

	r.mu.Lock()
	if r.timers[id] == *t {
		delete(r.timers, id)
	}
	gen := r.gen[id]
	r.mu.Unlock()

	b, err := r.repo.GetByID(r.ctx, id)

	r.mu.Lock()
	superseded := r.gen[id] != gen
	r.mu.Unlock()
	if superseded || r.ctx.Err() != nil {
		return
	}

	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		r.remove(id)
	case err != nil:
		r.failures.RefetchFailed()
		r.logger.Warn("booking re-sync failed",
			logger.String("booking_id", id),
			logger.String("error", err.Error()),
		)
	default:
		if r.store.Put(b, true) {
			r.publish(b)
		}
	}
}

func (r *Reconciler) remove(id string) {
	last, ok := r.store.Delete(id)
	if !ok {
		return
	}
	r.hub.Publish(last, Update{Op: OpDelete, BookingID: id})
}

// publish fans the current view of b out. A booking in a final status cannot
// change again, so it is not kept once its participants have seen it.
func (r *Reconciler) publish(b *domain.Booking) {
	view := b.View(r.now(), r.settings.ApprovalSLA)
	r.hub.Publish(b, Update{Op: OpUpsert, BookingID: b.ID, View: &view})
	if isFinal(view.EffectiveStatus) {
		r.evict(b.ID)
	}
}

func (r *Reconciler) evict(id string) {
	r.store.Delete(id)

	r.mu.Lock()
	if _, pending := r.timers[id]; !pending {
		delete(r.gen, id)
	}
	r.mu.Unlock()
}

func isFinal(s domain.BookingStatus) bool {
	switch s {
	case domain.BookingStatusCompleted, domain.BookingStatusCancelled, domain.BookingStatusExpired:
		return true
	default:
		return false
	}
}

// Close stops pending timers and waits for in-flight fetches.
func (r *Reconciler) Close() {
	r.mu.Lock()
	r.closed = true
	for id := range r.timers {
		r.stopTimerLocked(id)
	}
	r.mu.Unlock()

	r.cancel()
	r.wg.Wait()
}
