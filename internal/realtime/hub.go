package realtime

import (
	"sync"
	"sync/atomic"

	"github.com/stpnv0/VenueBooker/internal/domain"
)

type Op string

const (
	OpUpsert Op = "upsert"
	OpDelete Op = "delete"
	// OpResync tells a subscriber that it missed updates and should reload its bookings.
	OpResync Op = "resync"
)

// Update is what subscribers receive after a booking has been reconciled.
type Update struct {
	Op        Op                  `json:"op"`
	BookingID string              `json:"booking_id,omitempty"`
	View      *domain.BookingView `json:"view,omitempty"`
}

type dropCounter interface {
	UpdateDropped()
}

type subscriber struct {
	userID string
	ch     chan Update
	// lagging is set once an update was dropped and cleared when the resync hint is queued.
	lagging atomic.Bool
}

// Hub fans updates out to the subscribers that take part in the booking.
type Hub struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]*subscriber
	buffer int
	drops  dropCounter
}

func NewHub(buffer int, drops dropCounter) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{subs: make(map[int]*subscriber), buffer: buffer, drops: drops}
}

// Subscribe registers userID. The returned function unsubscribes and closes the channel.
func (h *Hub) Subscribe(userID string) (<-chan Update, func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	ch := make(chan Update, h.buffer)
	h.subs[id] = &subscriber{userID: userID, ch: ch}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Publish delivers u to every participant of b and returns how many got it.
// A full subscriber loses the update instead of blocking the publisher, and gets
// an OpResync hint ahead of the first update that fits again.
func (h *Hub) Publish(b *domain.Booking, u Update) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	sent := 0
	for _, s := range h.subs {
		if !b.IsParticipant(s.userID) {
			continue
		}
		if s.lagging.Load() {
			select {
			case s.ch <- Update{Op: OpResync}:
				s.lagging.Store(false)
			default:
				h.drops.UpdateDropped()
				continue
			}
		}
		select {
		case s.ch <- u:
			sent++
		default:
			s.lagging.Store(true)
			h.drops.UpdateDropped()
		}
	}
	return sent
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
