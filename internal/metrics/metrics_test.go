package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestObserveTransition(t *testing.T) {
	m := New()

	m.ObserveTransition("confirm", nil)
	m.ObserveTransition("confirm", nil)
	m.ObserveTransition("confirm", fmt.Errorf("save: %w", domain.ErrStaleBooking))
	m.ObserveTransition("propose", domain.ErrPermissionDenied)
	m.ObserveTransition("cancel", errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.transitions.WithLabelValues("confirm", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("confirm", "stale")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("propose", "denied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("cancel", "error")))
}

func TestObserveAvailability(t *testing.T) {
	m := New()

	m.ObserveAvailability(domain.AvailabilityDecision{Available: true}, nil)
	m.ObserveAvailability(domain.AvailabilityDecision{Available: true, Warning: "unverified"}, nil)
	m.ObserveAvailability(domain.AvailabilityDecision{Reason: domain.ConflictTimeOverlap}, nil)
	m.ObserveAvailability(domain.AvailabilityDecision{}, errors.New("down"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.availability.WithLabelValues("available")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.availability.WithLabelValues("available_unverified")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.availability.WithLabelValues("time_overlap")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.availability.WithLabelValues("error")))
}

func TestRefetchFailed(t *testing.T) {
	m := New()
	m.RefetchFailed()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.refetchFailure))
}

func TestUpdateDropped(t *testing.T) {
	m := New()
	m.UpdateDropped()
	m.UpdateDropped()
	assert.Equal(t, 2.0, testutil.ToFloat64(m.droppedUpdates))
}
