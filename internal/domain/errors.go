package domain

import (
	"errors"
	"fmt"
)

var (
	ErrVenueNotFound   = errors.New("venue not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrBookingNotPending     = errors.New("booking is not in pending status")
	ErrBookingNotConfirmed   = errors.New("booking is not confirmed")
	ErrBookingExpired        = errors.New("booking has expired")
	ErrBookingNotEditable    = errors.New("booking can no longer be changed")
	ErrBookingNotCancellable = errors.New("booking can no longer be cancelled")
	ErrNoPendingChanges      = errors.New("booking has no changes awaiting approval")
	ErrStaleBooking          = errors.New("booking was modified concurrently, reload and retry")
	ErrAvailabilityConflict  = errors.New("venue is not available")
	ErrAvailabilityUnknown   = errors.New("venue availability could not be verified")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation       = errors.New("validation error")
	ErrTimesRequired    = fmt.Errorf("%w: start_time and end_time are required to confirm", ErrValidation)
	ErrCapacityExceeded = fmt.Errorf("%w: guest_count exceeds venue capacity", ErrValidation)
	ErrPastDate         = fmt.Errorf("%w: event_date is in the past", ErrValidation)
)

var (
	ErrForbidden        = errors.New("action not allowed for this user")
	ErrPermissionDenied = errors.New("permission denied by access policy")
)

// ConflictError reports why a date/time slot was refused.
type ConflictError struct {
	Reason ConflictReason
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAvailabilityConflict, e.Reason.Message())
}

func (e *ConflictError) Unwrap() error {
	return ErrAvailabilityConflict
}
