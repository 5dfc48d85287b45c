package dto

import (
	"time"

	"github.com/stpnv0/VenueBooker/internal/domain"
)

type VenueResponse struct {
	ID                    string   `json:"id"`
	OwnerID               string   `json:"owner_id"`
	Name                  string   `json:"name"`
	Description           string   `json:"description"`
	Address               string   `json:"address"`
	City                  string   `json:"city"`
	Latitude              *float64 `json:"latitude,omitempty"`
	Longitude             *float64 `json:"longitude,omitempty"`
	CapacityMin           int      `json:"capacity_min"`
	CapacityMax           int      `json:"capacity_max"`
	Rate                  float64  `json:"rate"`
	Currency              string   `json:"currency"`
	ReservationFeePercent float64  `json:"reservation_fee_percent"`
	ReservationFee        float64  `json:"reservation_fee"`
	ImageURL              string   `json:"image_url,omitempty"`
	CreatedAt             string   `json:"created_at"`
}

type VenueDetailsResponse struct {
	Venue    VenueResponse  `json:"venue"`
	Bookings map[string]int `json:"bookings"`
}

type BookingResponse struct {
	ID                 string                `json:"id"`
	VenueID            string                `json:"venue_id"`
	VenueOwnerID       string                `json:"venue_owner_id"`
	UserID             string                `json:"user_id"`
	EventName          string                `json:"event_name"`
	EventType          string                `json:"event_type"`
	EventDate          string                `json:"event_date"`
	GuestCount         int                   `json:"guest_count"`
	StartTime          *string               `json:"start_time,omitempty"`
	EndTime            *string               `json:"end_time,omitempty"`
	EventStartAt       *string               `json:"event_start_at,omitempty"`
	EventEndAt         *string               `json:"event_end_at,omitempty"`
	VenueRate          float64               `json:"venue_rate"`
	ReservationFee     float64               `json:"reservation_fee"`
	Currency           string                `json:"currency"`
	Status             string                `json:"status"`
	EffectiveStatus    string                `json:"effective_status"`
	NeedsOwnerApproval bool                  `json:"needs_owner_approval"`
	PendingChanges     domain.PendingChanges `json:"pending_changes,omitempty"`
	Warning            string                `json:"warning,omitempty"`
	CreatedAt          string                `json:"created_at"`
	UpdatedAt          string                `json:"updated_at"`
}

type ChangeResponse struct {
	Booking BookingResponse `json:"booking"`
	Outcome string          `json:"outcome"`
}

type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
	Message   string `json:"message,omitempty"`
	Warning   string `json:"warning,omitempty"`
}

type MessageResponse struct {
	ID          string  `json:"id"`
	SenderID    string  `json:"sender_id"`
	RecipientID string  `json:"recipient_id"`
	VenueID     *string `json:"venue_id,omitempty"`
	BookingID   *string `json:"booking_id,omitempty"`
	Body        string  `json:"body"`
	ReadAt      *string `json:"read_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type UnreadResponse struct {
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Reason    string `json:"reason,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func ToVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:                    v.ID,
		OwnerID:               v.OwnerID,
		Name:                  v.Name,
		Description:           v.Description,
		Address:               v.Address,
		City:                  v.City,
		Latitude:              v.Latitude,
		Longitude:             v.Longitude,
		CapacityMin:           v.CapacityMin,
		CapacityMax:           v.CapacityMax,
		Rate:                  v.Rate,
		Currency:              v.Currency,
		ReservationFeePercent: v.ReservationFeePercent,
		ReservationFee:        v.ReservationFee(),
		ImageURL:              v.ImageURL,
		CreatedAt:             v.CreatedAt.Format(time.RFC3339),
	}
}

func ToVenueDetailsResponse(d *domain.VenueDetails) VenueDetailsResponse {
	counts := make(map[string]int, len(d.Bookings))
	for status, n := range d.Bookings {
		counts[string(status)] = n
	}

	return VenueDetailsResponse{
		Venue:    ToVenueResponse(&d.Venue),
		Bookings: counts,
	}
}

func ToBookingResponse(v *domain.BookingView) BookingResponse {
	b := v.Booking
	return BookingResponse{
		ID:                 b.ID,
		VenueID:            b.VenueID,
		VenueOwnerID:       b.VenueOwnerID,
		UserID:             b.UserID,
		EventName:          b.EventName,
		EventType:          b.EventType,
		EventDate:          b.EventDate.Format(domain.DateLayout),
		GuestCount:         b.GuestCount,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		EventStartAt:       formatTime(b.EventStartAt),
		EventEndAt:         formatTime(b.EventEndAt),
		VenueRate:          b.VenueRate,
		ReservationFee:     b.ReservationFee,
		Currency:           b.Currency,
		Status:             string(b.Status),
		EffectiveStatus:    string(v.EffectiveStatus),
		NeedsOwnerApproval: b.NeedsOwnerApproval,
		PendingChanges:     b.PendingChanges,
		Warning:            v.Warning,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func ToBookingResponses(views []*domain.BookingView) []BookingResponse {
	resp := make([]BookingResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, ToBookingResponse(v))
	}
	return resp
}

func ToAvailabilityResponse(d domain.AvailabilityDecision) AvailabilityResponse {
	resp := AvailabilityResponse{
		Available: d.Available,
		Reason:    string(d.Reason),
		Warning:   d.Warning,
	}
	if !d.Available {
		resp.Message = d.Reason.Message()
	}
	return resp
}

func ToMessageResponse(m *domain.Message) MessageResponse {
	return MessageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		VenueID:     m.VenueID,
		BookingID:   m.BookingID,
		Body:        m.Body,
		ReadAt:      formatTime(m.ReadAt),
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}

func ToUnreadResponse(c domain.UnreadCounts) UnreadResponse {
	counts := make(map[string]int64, len(c))
	for peer, n := range c {
		counts[peer] = n
	}
	return UnreadResponse{Counts: counts, Total: c.Total()}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		DisplayName:    u.DisplayName,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
