package domain

import "time"

type ConflictReason string

const (
	ConflictPastDate         ConflictReason = "past_date"
	ConflictSameDayConfirmed ConflictReason = "same_day_confirmed"
	ConflictTimeOverlap      ConflictReason = "time_overlap"
)

func (r ConflictReason) Message() string {
	switch r {
	case ConflictPastDate:
		return "the selected date is in the past"
	case ConflictSameDayConfirmed:
		return "the venue already has a confirmed booking on this date"
	case ConflictTimeOverlap:
		return "the selected time overlaps an existing booking"
	}
	return string(r)
}

// AvailabilityQuery describes a candidate slot at a venue.
type AvailabilityQuery struct {
	VenueID          string
	Date             time.Time
	StartTime        *string
	EndTime          *string
	ExcludeBookingID string
	ActorID          string
}

type AvailabilityDecision struct {
	Available bool           `json:"available"`
	Reason    ConflictReason `json:"reason,omitempty"`
	Warning   string         `json:"warning,omitempty"`
}

func (d AvailabilityDecision) Err() error {
	if d.Available {
		return nil
	}
	return &ConflictError{Reason: d.Reason}
}
