package dto

type CreateVenueRequest struct {
	OwnerID               string   `json:"owner_id" binding:"required,uuid"`
	Name                  string   `json:"name" binding:"required"`
	Description           string   `json:"description"`
	Address               string   `json:"address" binding:"required"`
	City                  string   `json:"city"`
	Latitude              *float64 `json:"latitude"`
	Longitude             *float64 `json:"longitude"`
	CapacityMin           int      `json:"capacity_min" binding:"required,gt=0"`
	CapacityMax           int      `json:"capacity_max" binding:"required,gt=0"`
	Rate                  float64  `json:"rate" binding:"required,gt=0"`
	Currency              string   `json:"currency" binding:"required,len=3"`
	ReservationFeePercent float64  `json:"reservation_fee_percent" binding:"min=0,max=100"`
	ImageURL              string   `json:"image_url" binding:"omitempty,url"`
}

type CreateBookingRequest struct {
	VenueID    string  `json:"venue_id" binding:"required,uuid"`
	UserID     string  `json:"user_id" binding:"required,uuid"`
	EventName  string  `json:"event_name" binding:"required"`
	EventType  string  `json:"event_type"`
	EventDate  string  `json:"event_date" binding:"required"`
	GuestCount int     `json:"guest_count" binding:"required,gt=0"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
}

// ChangeBookingRequest carries only the fields the guest wants to change.
type ChangeBookingRequest struct {
	UserID     string  `json:"user_id" binding:"required,uuid"`
	EventName  *string `json:"event_name"`
	EventType  *string `json:"event_type"`
	EventDate  *string `json:"event_date"`
	GuestCount *int    `json:"guest_count"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
}

type ActorRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type AvailabilityRequest struct {
	UserID           string  `json:"user_id" binding:"required,uuid"`
	Date             string  `json:"date" binding:"required"`
	StartTime        *string `json:"start_time"`
	EndTime          *string `json:"end_time"`
	ExcludeBookingID string  `json:"exclude_booking_id" binding:"omitempty,uuid"`
}

type SendMessageRequest struct {
	SenderID    string  `json:"sender_id" binding:"required,uuid"`
	RecipientID string  `json:"recipient_id" binding:"required,uuid"`
	VenueID     *string `json:"venue_id" binding:"omitempty,uuid"`
	BookingID   *string `json:"booking_id" binding:"omitempty,uuid"`
	Body        string  `json:"body" binding:"required"`
}

type MarkReadRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	PeerID string `json:"peer_id" binding:"required,uuid"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	DisplayName    string `json:"display_name"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
