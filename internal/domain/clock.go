package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04:05"
)

// DayOf returns the calendar date of t as midnight UTC.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsPastDate reports whether date falls strictly before the calendar day of now.
func IsPastDate(date, now time.Time) bool {
	return DayOf(date).Before(DayOf(now))
}

// NormalizeClock accepts HH:MM or HH:MM:SS and returns HH:MM:SS.
func NormalizeClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	layout := ClockLayout
	if strings.Count(s, ":") == 1 {
		layout = "15:04"
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return "", fmt.Errorf("%w: invalid time %q, expected HH:MM", ErrValidation, s)
	}

	return t.Format(ClockLayout), nil
}

// ClockOffset converts a normalized HH:MM:SS value into a duration since midnight.
func ClockOffset(clock string) (time.Duration, error) {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid time %q", ErrValidation, clock)
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

// CombineDateTime places clock on date in loc.
func CombineDateTime(date time.Time, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	offset, err := ClockOffset(clock)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).Add(offset), nil
}

// ValidateTimeRange checks that both ends are set together and end is after start.
func ValidateTimeRange(start, end *string) error {
	if start == nil && end == nil {
		return nil
	}
	if start == nil || end == nil {
		return fmt.Errorf("%w: start_time and end_time must be set together", ErrValidation)
	}

	from, err := ClockOffset(*start)
	if err != nil {
		return err
	}
	to, err := ClockOffset(*end)
	if err != nil {
		return err
	}
	if to <= from {
		return fmt.Errorf("%w: end_time must be after start_time", ErrValidation)
	}

	return nil
}

// DeriveSchedule recomputes EventStartAt and EventEndAt from the date and clock fields.
func (b *Booking) DeriveSchedule(loc *time.Location) error {
	b.EventStartAt, b.EventEndAt = nil, nil
	if b.StartTime == nil || b.EndTime == nil {
		return nil
	}

	start, err := CombineDateTime(b.EventDate, *b.StartTime, loc)
	if err != nil {
		return err
	}
	end, err := CombineDateTime(b.EventDate, *b.EndTime, loc)
	if err != nil {
		return err
	}

	b.EventStartAt, b.EventEndAt = &start, &end
	return nil
}
