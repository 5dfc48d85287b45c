package realtime

import (
	"sync"

	"github.com/stpnv0/VenueBooker/internal/domain"
)

type entry struct {
	booking domain.Booking
	fetched bool
}

// Store holds the latest known version of every booking seen by this instance.
// A newer updated_at always wins; on equal versions a row read from the
// database replaces a locally written copy but not the other way round.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func NewStore() *Store {
	return &Store{entries: make(map[string]entry)}
}

// Put offers b to the store and reports whether it became the current version.
func (s *Store) Put(b *domain.Booking, fetched bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.entries[b.ID]
	if ok {
		switch {
		case b.UpdatedAt.Before(cur.booking.UpdatedAt):
			return false
		case b.UpdatedAt.Equal(cur.booking.UpdatedAt) && (cur.fetched || !fetched):
			return false
		}
	}

	s.entries[b.ID] = entry{booking: *b, fetched: fetched}
	return true
}

// Delete removes id and returns the last known version, if any.
func (s *Store) Delete(id string) (*domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	delete(s.entries, id)
	b := cur.booking
	return &b, true
}

func (s *Store) Get(id string) (*domain.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cur, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	b := cur.booking
	return &b, true
}

func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	return ids
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
