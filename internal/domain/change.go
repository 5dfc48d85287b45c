package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Fields a guest may change; on a confirmed booking they need owner approval.
const (
	FieldEventName  = "event_name"
	FieldEventType  = "event_type"
	FieldEventDate  = "event_date"
	FieldGuestCount = "guest_count"
	FieldStartTime  = "start_time"
	FieldEndTime    = "end_time"
)

var ProtectedFields = []string{
	FieldEventName, FieldEventType, FieldEventDate,
	FieldGuestCount, FieldStartTime, FieldEndTime,
}

// PendingChanges maps a protected field to its proposed value as stored in JSONB.
type PendingChanges map[string]any

func (p PendingChanges) Value() (driver.Value, error) {
	if len(p) == 0 {
		return nil, nil
	}
	return json.Marshal(map[string]any(p))
}

func (p *PendingChanges) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*p = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("pending changes: unsupported type %T", src)
	}

	if len(raw) == 0 || string(raw) == "null" {
		*p = nil
		return nil
	}

	m := make(map[string]any)
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("pending changes: %w", err)
	}
	if len(m) == 0 {
		*p = nil
		return nil
	}
	*p = m
	return nil
}

// Merge returns a copy of p overlaid with next.
func (p PendingChanges) Merge(next PendingChanges) PendingChanges {
	out := make(PendingChanges, len(p)+len(next))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range next {
		out[k] = v
	}
	return out
}

func (p PendingChanges) TouchesSchedule() bool {
	for _, k := range []string{FieldEventDate, FieldStartTime, FieldEndTime} {
		if _, ok := p[k]; ok {
			return true
		}
	}
	return false
}

// Fields decodes p back into typed changes. Unknown keys are rejected.
func (p PendingChanges) Fields() (FieldChanges, error) {
	var c FieldChanges
	for k, v := range p {
		switch k {
		case FieldEventName, FieldEventType, FieldStartTime, FieldEndTime:
			s, ok := v.(string)
			if !ok {
				return c, fmt.Errorf("%w: %s must be a string", ErrValidation, k)
			}
			switch k {
			case FieldEventName:
				c.EventName = &s
			case FieldEventType:
				c.EventType = &s
			case FieldStartTime:
				c.StartTime = &s
			case FieldEndTime:
				c.EndTime = &s
			}
		case FieldEventDate:
			s, ok := v.(string)
			if !ok {
				return c, fmt.Errorf("%w: event_date must be a string", ErrValidation)
			}
			d, err := time.Parse(DateLayout, s)
			if err != nil {
				return c, fmt.Errorf("%w: invalid event_date %q", ErrValidation, s)
			}
			c.EventDate = &d
		case FieldGuestCount:
			n, err := toInt(v)
			if err != nil {
				return c, err
			}
			c.GuestCount = &n
		default:
			return c, fmt.Errorf("%w: field %q cannot be changed", ErrValidation, k)
		}
	}
	return c, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: guest_count must be a whole number", ErrValidation)
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: guest_count must be a whole number", ErrValidation)
		}
		return int(i), nil
	}
	return 0, fmt.Errorf("%w: guest_count must be a number", ErrValidation)
}

// FieldChanges is a typed edit of the protected fields; nil means untouched.
type FieldChanges struct {
	EventName  *string
	EventType  *string
	EventDate  *time.Time
	GuestCount *int
	StartTime  *string
	EndTime    *string
}

func (c FieldChanges) IsEmpty() bool {
	return c.EventName == nil && c.EventType == nil && c.EventDate == nil &&
		c.GuestCount == nil && c.StartTime == nil && c.EndTime == nil
}

func (c FieldChanges) Pending() PendingChanges {
	p := make(PendingChanges)
	if c.EventName != nil {
		p[FieldEventName] = *c.EventName
	}
	if c.EventType != nil {
		p[FieldEventType] = *c.EventType
	}
	if c.EventDate != nil {
		p[FieldEventDate] = c.EventDate.Format(DateLayout)
	}
	if c.GuestCount != nil {
		p[FieldGuestCount] = *c.GuestCount
	}
	if c.StartTime != nil {
		p[FieldStartTime] = *c.StartTime
	}
	if c.EndTime != nil {
		p[FieldEndTime] = *c.EndTime
	}
	return p
}

// Normalize rewrites clock values to HH:MM:SS.
func (c *FieldChanges) Normalize() error {
	for _, clock := range []**string{&c.StartTime, &c.EndTime} {
		if *clock == nil {
			continue
		}
		v, err := NormalizeClock(**clock)
		if err != nil {
			return err
		}
		*clock = &v
	}
	if c.EventDate != nil {
		d := DayOf(*c.EventDate)
		c.EventDate = &d
	}
	return nil
}

// Apply copies every set field onto b. Callers re-derive the schedule afterwards.
func (b *Booking) Apply(c FieldChanges) {
	if c.EventName != nil {
		b.EventName = *c.EventName
	}
	if c.EventType != nil {
		b.EventType = *c.EventType
	}
	if c.EventDate != nil {
		b.EventDate = *c.EventDate
	}
	if c.GuestCount != nil {
		b.GuestCount = *c.GuestCount
	}
	if c.StartTime != nil {
		v := *c.StartTime
		b.StartTime = &v
	}
	if c.EndTime != nil {
		v := *c.EndTime
		b.EndTime = &v
	}
}

// ClearApproval drops any proposal and the approval flag together.
func (b *Booking) ClearApproval() {
	b.PendingChanges = nil
	b.NeedsOwnerApproval = false
}

// ChangeRequest is the fallback record of a proposal when the booking row itself cannot be written.
type ChangeRequest struct {
	ID          string         `json:"id"`
	BookingID   string         `json:"booking_id"`
	RequestedBy string         `json:"requested_by"`
	Changes     PendingChanges `json:"changes"`
	CreatedAt   time.Time      `json:"created_at"`
}

type AuditEntry struct {
	ID        string         `json:"id"`
	BookingID string         `json:"booking_id"`
	ActorID   string         `json:"actor_id"`
	Action    string         `json:"action"`
	Payload   PendingChanges `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}

// ChangeOutcome tells the caller how a proposal was recorded.
type ChangeOutcome string

const (
	ChangeApplied       ChangeOutcome = "applied"
	ChangeProposed      ChangeOutcome = "proposed"
	ChangeRequested     ChangeOutcome = "requested"
	ChangeAuditRecorded ChangeOutcome = "audit_recorded"
)
