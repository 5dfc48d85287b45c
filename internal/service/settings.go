package service

import (
	"time"

	"github.com/stpnv0/VenueBooker/internal/domain"
)

type BookingSettings struct {
	ApprovalSLA            time.Duration
	Location               *time.Location
	AvailabilityFailClosed bool
}

func (s BookingSettings) withDefaults() BookingSettings {
	if s.ApprovalSLA <= 0 {
		s.ApprovalSLA = domain.DefaultApprovalSLA
	}
	if s.Location == nil {
		s.Location = time.UTC
	}
	return s
}

// clock returns wall-clock time in the configured location so that "today" matches the venue calendar.
func (s BookingSettings) clock() func() time.Time {
	loc := s.Location
	return func() time.Time {
		return time.Now().In(loc)
	}
}
