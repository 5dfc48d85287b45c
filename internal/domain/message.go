package domain

import "time"

type Message struct {
	ID          string     `json:"id"`
	SenderID    string     `json:"sender_id"`
	RecipientID string     `json:"recipient_id"`
	VenueID     *string    `json:"venue_id"`
	BookingID   *string    `json:"booking_id"`
	Body        string     `json:"body"`
	ReadAt      *time.Time `json:"read_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

type SendMessageInput struct {
	SenderID    string
	RecipientID string
	VenueID     *string
	BookingID   *string
	Body        string
}

// UnreadCounts maps a peer user id to the number of unread messages from them.
type UnreadCounts map[string]int64

func (u UnreadCounts) Total() int64 {
	var n int64
	for _, c := range u {
		n += c
	}
	return n
}
