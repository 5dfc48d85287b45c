package realtime

import (
	"testing"
	"time"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(id string, updated time.Time, name string) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		UserID:       "guest",
		VenueOwnerID: "owner",
		EventName:    name,
		EventDate:    time.Now().UTC().AddDate(0, 0, 30),
		Status:       domain.BookingStatusPending,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    updated,
	}
}

func TestStore_NewerVersionWins(t *testing.T) {
	s := NewStore()
	t0 := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	assert.True(t, s.Put(booking("b1", t0, "v1"), true))
	assert.True(t, s.Put(booking("b1", t0.Add(time.Second), "v2"), false))
	assert.False(t, s.Put(booking("b1", t0, "stale"), true))

	got, ok := s.Get("b1")
	require.True(t, ok)
	assert.Equal(t, "v2", got.EventName)
}

func TestStore_EqualVersionPrefersFetched(t *testing.T) {
	s := NewStore()
	t0 := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	assert.True(t, s.Put(booking("b1", t0, "local"), false))
	assert.True(t, s.Put(booking("b1", t0, "server"), true))
	assert.False(t, s.Put(booking("b1", t0, "local again"), false))
	assert.False(t, s.Put(booking("b1", t0, "server again"), true))

	got, _ := s.Get("b1")
	assert.Equal(t, "server", got.EventName)
}

func TestStore_ArrivalOrderDoesNotMatter(t *testing.T) {
	t0 := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	versions := []*domain.Booking{
		booking("b1", t0, "a"),
		booking("b1", t0.Add(2*time.Second), "c"),
		booking("b1", t0.Add(time.Second), "b"),
	}

	forward := NewStore()
	for _, b := range versions {
		forward.Put(b, true)
	}
	backward := NewStore()
	for i := len(versions) - 1; i >= 0; i-- {
		backward.Put(versions[i], true)
	}

	f, _ := forward.Get("b1")
	b, _ := backward.Get("b1")
	assert.Equal(t, "c", f.EventName)
	assert.Equal(t, f.EventName, b.EventName)
}

func TestStore_Delete(t *testing.T) {
	s := NewStore()
	s.Put(booking("b1", time.Now(), "x"), true)

	last, ok := s.Delete("b1")
	require.True(t, ok)
	assert.Equal(t, "b1", last.ID)
	assert.Equal(t, 0, s.Len())

	_, ok = s.Delete("b1")
	assert.False(t, ok)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Put(booking("b1", time.Now(), "x"), true)

	got, _ := s.Get("b1")
	got.EventName = "mutated"

	again, _ := s.Get("b1")
	assert.Equal(t, "x", again.EventName)
}
