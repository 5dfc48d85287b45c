package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stpnv0/VenueBooker/internal/domain"
)

type Metrics struct {
	reg *prometheus.Registry

	transitions    *prometheus.CounterVec
	availability   *prometheus.CounterVec
	refetchFailure prometheus.Counter
	droppedUpdates prometheus.Counter
	panics         prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		reg: reg,
		transitions: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "booking_transitions_total",
			Help: "Booking writes by transition and result.",
		}, []string{"transition", "result"}),
		availability: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "availability_decisions_total",
			Help: "Availability check outcomes.",
		}, []string{"outcome"}),
		refetchFailure: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "realtime_refetch_failures_total",
			Help: "Booking rows that could not be re-fetched after a change notification.",
		}),
		droppedUpdates: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "realtime_updates_dropped_total",
			Help: "Booking updates not delivered because a subscriber buffer was full.",
		}),
		panics: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "http_panics_recovered_total",
			Help: "HTTP requests recovered from a panic.",
		}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

func (m *Metrics) ObserveTransition(transition string, err error) {
	m.transitions.WithLabelValues(transition, resultOf(err)).Inc()
}

func (m *Metrics) ObserveAvailability(d domain.AvailabilityDecision, err error) {
	m.availability.WithLabelValues(availabilityOutcome(d, err)).Inc()
}

func (m *Metrics) RefetchFailed() {
	m.refetchFailure.Inc()
}

func (m *Metrics) UpdateDropped() {
	m.droppedUpdates.Inc()
}

func (m *Metrics) PanicRecovered() {
	m.panics.Inc()
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrStaleBooking):
		return "stale"
	case errors.Is(err, domain.ErrPermissionDenied):
		return "denied"
	default:
		return "error"
	}
}

func availabilityOutcome(d domain.AvailabilityDecision, err error) string {
	switch {
	case err != nil:
		return "error"
	case !d.Available:
		return string(d.Reason)
	case d.Warning != "":
		return "available_unverified"
	default:
		return "available"
	}
}

// Nop satisfies the same interfaces when metrics are disabled.
type Nop struct{}

func (Nop) ObserveTransition(string, error)                        {}
func (Nop) ObserveAvailability(domain.AvailabilityDecision, error) {}
func (Nop) RefetchFailed()                                         {}
func (Nop) UpdateDropped()                                         {}
func (Nop) PanicRecovered()                                        {}
